package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Rambadrinathan/vatika-studio/catalog"
	"github.com/Rambadrinathan/vatika-studio/recommend"
)

func item(t *testing.T, planterID, plantID string, qty int) recommend.SelectedItem {
	t.Helper()
	p, ok := catalog.PlanterByID(planterID)
	if !ok {
		t.Fatalf("unknown planter %s", planterID)
	}
	pl, ok := catalog.PlantByID(plantID)
	if !ok {
		t.Fatalf("unknown plant %s", plantID)
	}
	return recommend.SelectedItem{Planter: p, Plant: pl, Quantity: qty}
}

func TestScenePromptNumbersImagesFromTwo(t *testing.T) {
	items := []recommend.SelectedItem{
		item(t, "chevron", "areca-palm", 1),
		item(t, "fox-bowl", "snake-plant", 2),
	}
	got := BuildScenePrompt(items, catalog.SpaceTerrace)

	if !strings.Contains(got, "Image 1 is a photograph of an open terrace") {
		t.Error("scene photo must be introduced as Image 1")
	}
	if !strings.Contains(got, "- Image 2 (Chevron): Place 1 on the floor as a statement piece. Fill with a tall areca palm.") {
		t.Errorf("missing or malformed first placement line:\n%s", got)
	}
	if !strings.Contains(got, "- Image 3 (Fox Bowl): Place 2 of these on the floor or a low stand. Fill with a healthy snake plant with upright leaves.") {
		t.Errorf("missing or malformed second placement line:\n%s", got)
	}
}

func TestScenePromptRailingHook(t *testing.T) {
	items := []recommend.SelectedItem{
		item(t, "balcony-hanger", "petunia-mix", 4),
		item(t, "tokyo-tall", "snake-plant", 2),
	}
	got := BuildScenePrompt(items, catalog.SpaceBalcony)

	if !strings.Contains(got, "Hook 4 of these along the entire balcony railing") {
		t.Error("railing hanger should use the hook phrasing with its quantity")
	}
	if !strings.Contains(got, "colorful flowering petunias, marigolds, and trailing ivy") {
		t.Error("flowering mix description missing")
	}
	if !strings.Contains(got, "The railing hook planters are the highlight") {
		t.Error("balcony prompt should carry the railing note")
	}
	if !strings.Contains(got, "green turf grass mat") {
		t.Error("balcony prompt should carry the floor treatment")
	}
}

func TestScenePromptLivingRoomVariant(t *testing.T) {
	items := []recommend.SelectedItem{
		item(t, "willow", "areca-palm", 1),
		item(t, "ug-golden-opulence", "fern-boston", 1),
	}
	got := BuildScenePrompt(items, catalog.SpaceLivingRoom)

	if !strings.Contains(got, "in a corner or beside the sofa as a statement piece") {
		t.Error("living room bigs should use the indoor placement text")
	}
	if !strings.Contains(got, "beside a window, on a side table, or near a bookshelf") {
		t.Error("living room mediums should use the indoor placement text")
	}
	if strings.Contains(got, "turf grass mat") {
		t.Error("living room has no floor treatment section")
	}
	if strings.Contains(got, "railing") && strings.Contains(got, "highlight") {
		t.Error("living room prompt must not carry the railing note")
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("empty sections should be dropped, not joined")
	}
}

func TestScenePromptUnknownPlantFallsBack(t *testing.T) {
	it := item(t, "chevron", "tulsi", 1)
	it.Plant.Name = "Dragon Tree"
	got := BuildScenePrompt([]recommend.SelectedItem{it}, catalog.SpaceTerrace)
	if !strings.Contains(got, "Fill with dragon tree.") {
		t.Errorf("unlisted plants should fall back to their lowercased name:\n%s", got)
	}
}

func TestIterationPromptAppendsFeedback(t *testing.T) {
	items := []recommend.SelectedItem{item(t, "chevron", "areca-palm", 1)}
	feedback := "make the lighting warmer and add one more planter near the door"

	base := BuildScenePrompt(items, catalog.SpaceTerrace)
	got := BuildIterationPrompt(items, feedback, catalog.SpaceTerrace)

	want := fmt.Sprintf("%s\n\nAdditional changes: %s", base, feedback)
	if got != want {
		t.Error("iteration prompt should be the scene prompt plus the feedback suffix")
	}
}

func TestScenePromptCoversRecommendedSelection(t *testing.T) {
	rec := recommend.Recommend(50000, catalog.SpaceTerrace)
	got := BuildScenePrompt(rec.Items, catalog.SpaceTerrace)
	for i, it := range rec.Items {
		marker := fmt.Sprintf("- Image %d (%s):", i+2, it.Planter.Name)
		if !strings.Contains(got, marker) {
			t.Errorf("selection item %d (%s) missing from prompt", i, it.Planter.ID)
		}
	}
}
