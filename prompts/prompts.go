// Package prompts builds the multi-image instruction text for the image
// model: the scene photo goes in as Image 1 and each selected product's
// reference photo as Image 2, 3, 4..., with the prompt telling the model to
// place those exact products into the scene.
package prompts

import (
	"fmt"
	"strings"

	"github.com/Rambadrinathan/vatika-studio/catalog"
	"github.com/Rambadrinathan/vatika-studio/recommend"
)

var plantPlacement = map[catalog.PlanterSize]string{
	catalog.SizeBig:    "on the floor as a statement piece",
	catalog.SizeMedium: "on the floor or a low stand",
	catalog.SizeSmall:  "on a shelf, table, or grouped near larger planters",
}

var livingRoomPlacement = map[catalog.PlanterSize]string{
	catalog.SizeBig:    "in a corner or beside the sofa as a statement piece",
	catalog.SizeMedium: "beside a window, on a side table, or near a bookshelf",
	catalog.SizeSmall:  "on a shelf, coffee table, or windowsill",
}

var plantSuggestions = map[string]string{
	"Areca Palm":    "a tall areca palm",
	"Snake Plant":   "a healthy snake plant with upright leaves",
	"Golden Pothos": "trailing golden pothos with cascading vines",
	"Boston Fern":   "a lush Boston fern",
	"Peace Lily":    "a peace lily with white flowers",
	"Rubber Plant":  "a rubber plant with dark glossy leaves",
	"Money Plant":   "a money plant",
	"Jade Plant":    "a jade plant",
	"Spider Plant":  "a spider plant with arching leaves",
	"Croton":        "a colorful croton",
	"Tulsi":         "a tulsi plant",
	"Bougainvillea": "bougainvillea with pink flowers",
	"Petunia Mix":   "colorful flowering petunias, marigolds, and trailing ivy",
}

type spaceConfig struct {
	sceneDesc        string
	floorTreatment   string
	lighting         string
	preserveElements string
	railingNote      string
}

var spaceConfigs = map[catalog.SpaceType]spaceConfig{
	catalog.SpaceBalcony: {
		sceneDesc:        "a balcony or verandah",
		floorTreatment:   "Add artificial green turf grass mat on the floor if the floor is bare tiles or concrete.",
		lighting:         "Add warm string lights along the ceiling or railing if appropriate.",
		preserveElements: "Keep the walls, railing, skyline, and architectural elements exactly as they are.",
		railingNote:      "IMPORTANT: The railing hook planters are the highlight — they should be clearly visible, hooked over the railing with colorful flowers cascading down. This is the signature look of the design.",
	},
	catalog.SpaceLivingRoom: {
		sceneDesc:        "an indoor living room or interior space",
		lighting:         "Ensure warm, cozy ambient lighting. Add subtle accent lighting near the planters if appropriate.",
		preserveElements: "Keep the walls, furniture, windows, and architectural elements exactly as they are.",
	},
	catalog.SpaceTerrace: {
		sceneDesc:        "an open terrace, rooftop, or garden area",
		floorTreatment:   "Add artificial green turf grass mat covering the floor if the floor is bare tiles or concrete.",
		lighting:         "Add warm string lights or hanging lanterns along the edges if appropriate.",
		preserveElements: "Keep the walls, skyline, pergola, and architectural elements exactly as they are.",
	},
}

// BuildScenePrompt renders the placement instructions for the selected items.
// Image 1 is the scene photo; item i maps to Image i+2.
func BuildScenePrompt(items []recommend.SelectedItem, spaceType catalog.SpaceType) string {
	cfg, ok := spaceConfigs[spaceType]
	if !ok {
		cfg = spaceConfigs[catalog.SpaceBalcony]
	}
	placementMap := plantPlacement
	if spaceType == catalog.SpaceLivingRoom {
		placementMap = livingRoomPlacement
	}

	placements := make([]string, 0, len(items))
	for i, item := range items {
		imgNum := i + 2
		plantDesc := plantSuggestions[item.Plant.Name]
		if plantDesc == "" {
			plantDesc = strings.ToLower(item.Plant.Name)
		}

		if item.Planter.ID == catalog.CrossTierPlanterID {
			placements = append(placements, fmt.Sprintf(
				"- Image %d (%s): Hook %d of these along the entire balcony railing, evenly spaced. Fill each with %s. They must be hooked over the top of the railing exactly like in the reference image.",
				imgNum, item.Planter.Name, item.Quantity, plantDesc))
			continue
		}

		location := placementMap[item.Planter.Size]
		if location == "" {
			location = "on the floor"
		}
		qtyText := "Place 1"
		if item.Quantity > 1 {
			qtyText = fmt.Sprintf("Place %d of these", item.Quantity)
		}
		placements = append(placements, fmt.Sprintf(
			"- Image %d (%s): %s %s. Fill with %s.",
			imgNum, item.Planter.Name, qtyText, location, plantDesc))
	}

	sections := []string{
		"MOST IMPORTANT RULE — CAMERA & FRAMING: You MUST generate a WIDE-ANGLE full-room shot that shows the ENTIRE space from wall to wall, floor to ceiling. Match the EXACT same camera position, distance, angle, and field of view as Image 1. Do NOT zoom in. Do NOT crop tighter. Do NOT reframe. The output image must show the complete space with ALL planters visible in their positions across the full width of the scene. This is non-negotiable.",
		fmt.Sprintf("Image 1 is a photograph of %s. Transform this space into a premium biophilic garden using ONLY the exact planter designs shown in the reference images.", cfg.sceneDesc),
		cfg.floorTreatment,
		fmt.Sprintf("Place the planters as follows:\n%s", strings.Join(placements, "\n")),
		cfg.railingNote,
		fmt.Sprintf("Remove all existing mismatched pots, clutter, and random containers. %s", cfg.preserveElements),
		cfg.lighting,
		"Warm golden hour afternoon sunlight. Professional interior design magazine photography. Photorealistic. The planters must look exactly like the reference images — same shape, same material, same finish, same proportions.",
	}

	nonEmpty := sections[:0]
	for _, sec := range sections {
		if sec != "" {
			nonEmpty = append(nonEmpty, sec)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

// BuildIterationPrompt appends user feedback to the base scene prompt.
func BuildIterationPrompt(items []recommend.SelectedItem, feedback string, spaceType catalog.SpaceType) string {
	return fmt.Sprintf("%s\n\nAdditional changes: %s", BuildScenePrompt(items, spaceType), feedback)
}
