// Package catalog holds the static product registry: KarmYog proprietary
// planters (LoRA-trained, rendered with trigger words) and Ugaoo marketplace
// planters (rendered from reference images), companion plants, budget tiers
// and delivery pricing. All tables are loaded once at init and never mutated.
package catalog

// PlanterSource identifies which catalog partition a planter belongs to.
type PlanterSource string

const (
	// SourceKarmYog is the proprietary partition. The image model renders
	// these with the highest fidelity.
	SourceKarmYog PlanterSource = "karmyog"
	// SourceUgaoo is the marketplace partition, rendered via generic
	// reference-image matching.
	SourceUgaoo PlanterSource = "ugaoo"
)

type PlanterSize string

const (
	SizeSmall  PlanterSize = "small"
	SizeMedium PlanterSize = "medium"
	SizeBig    PlanterSize = "big"
)

// SpaceType is the kind of space a user is redecorating.
type SpaceType string

const (
	SpaceBalcony    SpaceType = "balcony"
	SpaceLivingRoom SpaceType = "living-room"
	SpaceTerrace    SpaceType = "terrace"
)

// ValidSpaceType reports whether s is one of the supported space types.
func ValidSpaceType(s SpaceType) bool {
	switch s {
	case SpaceBalcony, SpaceLivingRoom, SpaceTerrace:
		return true
	}
	return false
}

// Planter is a catalog container product. Prices are whole rupees (MRP).
type Planter struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Image      string        `json:"image"`
	Price      int           `json:"price"`
	Size       PlanterSize   `json:"size"`
	PromptDesc string        `json:"prompt_desc"`
	Source     PlanterSource `json:"source"`
	Category   string        `json:"category,omitempty"`
	Material   string        `json:"material,omitempty"`
	Color      string        `json:"color,omitempty"`
}

// Plant is a companion species with a fixed price.
type Plant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var karmyogPlanters = []Planter{
	{ID: "chevron", Name: "Chevron", Image: "/planters/chevron.png", Price: 7500, Size: SizeBig, PromptDesc: "a large egg-shaped matte grey fiberglass floor planter", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "grey"},
	{ID: "willow", Name: "Willow", Image: "/planters/willow.png", Price: 7500, Size: SizeBig, PromptDesc: "a tall smooth rounded matte floor planter", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "grey"},
	{ID: "allegra", Name: "Allegra", Image: "/planters/allegra.png", Price: 7500, Size: SizeBig, PromptDesc: "a tall marble-finish floor planter with copper veining", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "marble"},
	{ID: "amalfi", Name: "Amalfi", Image: "/planters/amalfi.png", Price: 7500, Size: SizeBig, PromptDesc: "a dark grey urn-shaped floor planter", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "dark grey"},
	{ID: "quebec-rect", Name: "Quebec Rectangle", Image: "/planters/quebec-rectangle.png", Price: 7500, Size: SizeBig, PromptDesc: "a grey rectangular concrete-look planter box", Source: SourceKarmYog, Category: "Concrete", Material: "concrete-look", Color: "grey"},
	{ID: "quebec-sq", Name: "Quebec Square", Image: "/planters/quebec-square.png", Price: 7500, Size: SizeBig, PromptDesc: "a grey cube-shaped concrete-look planter", Source: SourceKarmYog, Category: "Concrete", Material: "concrete-look", Color: "grey"},
	{ID: "go-hooked", Name: "GoHooked Rectangular", Image: "/planters/go-hooked-recta.png", Price: 7500, Size: SizeBig, PromptDesc: "a dark rectangular planter box with flowering plants", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "dark"},
	{ID: "pine-skirting", Name: "Pine Skirting Module", Image: "/planters/pine-skirting.jpeg", Price: 7500, Size: SizeBig, PromptDesc: "a wooden wall-base skirting panel with integrated planter boxes and warm hanging lantern lights", Source: SourceKarmYog, Category: "Wood", Material: "pine wood", Color: "natural wood"},
	{ID: "tokyo-tall", Name: "Tokyo Tall", Image: "/planters/tokyo-tall.png", Price: 4000, Size: SizeMedium, PromptDesc: "a tall ribbed cylindrical grey planter", Source: SourceKarmYog, Category: "Lightweight", Material: "lightweight composite", Color: "grey"},
	{ID: "azziano", Name: "Azziano", Image: "/planters/azziano.png", Price: 4000, Size: SizeMedium, PromptDesc: "a textured dark green round planter with swirl pattern", Source: SourceKarmYog, Category: "Ceramic", Material: "ceramic", Color: "dark green"},
	{ID: "fox-bowl", Name: "Fox Bowl", Image: "/planters/fox-bowl.png", Price: 4000, Size: SizeMedium, PromptDesc: "a dark grey low wide bowl planter", Source: SourceKarmYog, Category: "Fiberglass", Material: "fiberglass", Color: "dark grey"},
	{ID: "ribbed-set", Name: "Ribbed Planter", Image: "/planters/ribbed-set.png", Price: 4000, Size: SizeMedium, PromptDesc: "a ribbed cylindrical tan/brown planter with vertical grooves", Source: SourceKarmYog, Category: "Ceramic", Material: "ceramic", Color: "tan"},
	{ID: "wrought-iron", Name: "Wrought Iron Stand", Image: "/planters/wrought-iron-stand.jpeg", Price: 4000, Size: SizeMedium, PromptDesc: "a black wrought iron plant stand with a small wooden shelter roof", Source: SourceKarmYog, Category: "Metal", Material: "wrought iron", Color: "black"},
	{ID: "b2-fabric", Name: "B2 Fabric Box", Image: "/planters/b2-fabric.jpg", Price: 1500, Size: SizeSmall, PromptDesc: "a modular wooden planter box with green fabric grass mat top", Source: SourceKarmYog, Category: "Wood", Material: "wood + fabric", Color: "green"},
	{ID: "balcony-hanger", Name: "Balcony Hanger", Image: "/planters/balcony-hanger.jpeg", Price: 1500, Size: SizeSmall, PromptDesc: "a small metal hook planter clipped onto the railing", Source: SourceKarmYog, Category: "Metal", Material: "metal", Color: "black"},
}

var ugaooPlanters = []Planter{
	// 3D printed pots
	{ID: "ug-crown", Name: "Crown Planter", Image: "/planters/ugaoo/Crown Planter_649_3D Printed.jpg", Price: 649, Size: SizeSmall, PromptDesc: "a small 3D printed crown-shaped pot with geometric ridges", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "terracotta"},
	{ID: "ug-erika", Name: "Erika Planter", Image: "/planters/ugaoo/Erika Planter_849_3D Printed.jpg", Price: 849, Size: SizeSmall, PromptDesc: "a small 3D printed planter with layered wave texture", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "beige"},
	{ID: "ug-faceted-3d", Name: "Faceted Prism Pot", Image: "/planters/ugaoo/Faceted prism Pot_1499_3D Printed.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a geometric faceted prism-shaped 3D printed pot with diamond pattern", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "beige"},
	{ID: "ug-imperia", Name: "Imperia Planter", Image: "/planters/ugaoo/Imperia Planter_1199_3D Printed.jpg", Price: 1199, Size: SizeSmall, PromptDesc: "a 3D printed planter with interlocking geometric surface pattern", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "white"},
	{ID: "ug-interlace-3d", Name: "Interlace Charm Pot", Image: "/planters/ugaoo/Interlace Charm Pot_1499_3D Printed.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a 3D printed pot with interlaced woven-look surface texture", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "white"},
	{ID: "ug-oblique-3d", Name: "Oblique Elegance Pot", Image: "/planters/ugaoo/Oblique Elegance Pot_1499_3D Printed.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a 3D printed pot with diagonal oblique ridge pattern", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "grey"},
	{ID: "ug-ridged-3d", Name: "Ridged Waves Pot", Image: "/planters/ugaoo/Ridged Waves Pot_1499_3D Printed.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a 3D printed pot with horizontal ridged wave texture", Source: SourceUgaoo, Category: "3D Printed", Material: "3D printed PLA", Color: "beige"},

	// Basket planters
	{ID: "ug-belly-dance", Name: "Belly Dance Cotton", Image: "/planters/ugaoo/Belly Dance Cotton Planter_1499_Cotton.jpg", Price: 1499, Size: SizeMedium, PromptDesc: "a woven cotton basket planter with belly dance pattern and tassels", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "natural"},
	{ID: "ug-ex-cotton", Name: "Ex Cotton Planter", Image: "/planters/ugaoo/Ex Cotton Planter_999_Cotton.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a simple woven cotton basket planter", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "natural"},
	{ID: "ug-rays-cotton", Name: "Rays Cotton Planter", Image: "/planters/ugaoo/Rays Cotton Planter_1299_Cotton.jpg", Price: 1299, Size: SizeMedium, PromptDesc: "a woven cotton basket planter with radiating ray pattern", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "natural"},
	{ID: "ug-seagrass", Name: "Seagrass Planter", Image: "/planters/ugaoo/Seagrass Planter_1299_Seagrass.jpg", Price: 1299, Size: SizeMedium, PromptDesc: "a natural seagrass woven basket planter", Source: SourceUgaoo, Category: "Basket", Material: "seagrass", Color: "natural"},
	{ID: "ug-skyie", Name: "Skyie Cotton Planter", Image: "/planters/ugaoo/Skyie Cotton Planter_1299_Cotton.jpg", Price: 1299, Size: SizeMedium, PromptDesc: "a woven cotton basket planter with sky blue accent pattern", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "blue + natural"},
	{ID: "ug-square-cane", Name: "Square Cane Planter", Image: "/planters/ugaoo/Square Cane Planter_999_Cane.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a square-shaped woven cane basket planter", Source: SourceUgaoo, Category: "Basket", Material: "cane", Color: "natural"},
	{ID: "ug-tassel", Name: "Tassel Cotton Planter", Image: "/planters/ugaoo/Tassel Cotton Planter_1499_Cotton.jpg", Price: 1499, Size: SizeMedium, PromptDesc: "a cotton basket planter with decorative tassels", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "natural"},
	{ID: "ug-trinket", Name: "Trinket Cotton Planter", Image: "/planters/ugaoo/Trinket Cotton Planter_999_Cotton.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a small woven cotton trinket basket planter", Source: SourceUgaoo, Category: "Basket", Material: "cotton", Color: "natural"},

	// Ceramic planters
	{ID: "ug-aurelius-prism", Name: "Aurelius Prism Ceramic", Image: "/planters/ugaoo/Aurelius Prism Ceramic Pot_999_Glossy.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a glossy ceramic pot with geometric prism facets and metallic gold rim", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "beige + gold"},
	{ID: "ug-aurelius-round", Name: "Aurelius Round Ceramic", Image: "/planters/ugaoo/Aurelius Round Ceramic Pot_999_Glossy.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a glossy round ceramic pot with vertical ribbed texture and gold rim", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "beige + gold"},
	{ID: "ug-fleeting-bliss", Name: "Fleeting Bliss Ceramic", Image: "/planters/ugaoo/Fleeting Bliss Ceramic Planter_5349_Glossy.jpg", Price: 5349, Size: SizeBig, PromptDesc: "a large premium glossy ceramic planter with artistic flowing pattern", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "white + blue"},
	{ID: "ug-sunflower", Name: "Sunflower Ceramic", Image: "/planters/ugaoo/Flower Sunflower Ceramic Planter_3999_Glossy.jpg", Price: 3999, Size: SizeMedium, PromptDesc: "a glossy ceramic planter with embossed sunflower design", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "yellow + green"},
	{ID: "ug-fluted", Name: "Fluted Ceramic Pot", Image: "/planters/ugaoo/Fluted ceramic pot 5 inch_999_Glossy.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a small glossy fluted ceramic pot with vertical grooves", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "white"},
	{ID: "ug-grail", Name: "Grail Ceramic Pot", Image: "/planters/ugaoo/Grail Ceramic Pot_799_Glossy.jpg", Price: 799, Size: SizeSmall, PromptDesc: "a small glossy ceramic grail-shaped pot", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "white"},
	{ID: "ug-peacock", Name: "Peacock Ceramic Pot", Image: "/planters/ugaoo/Peacock ceramic pot 5 inch_799_Glossy.jpg", Price: 799, Size: SizeSmall, PromptDesc: "a small ceramic pot with peacock feather design", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "blue + green"},
	{ID: "ug-phoenix", Name: "Phoenix Ceramic", Image: "/planters/ugaoo/Phoenix ceramic Planter_2699_Glossy.jpg", Price: 2699, Size: SizeMedium, PromptDesc: "a medium glossy ceramic planter with phoenix motif", Source: SourceUgaoo, Category: "Ceramic", Material: "ceramic", Color: "multi"},

	// Hanging planters
	{ID: "ug-cosmic-hang", Name: "Cosmic Stone Hanging", Image: "/planters/ugaoo/Ceramic Hanging Pot Cosmic Stone_1449_Ceramic.jpg", Price: 1449, Size: SizeSmall, PromptDesc: "a ceramic hanging pot with cosmic stone speckled finish", Source: SourceUgaoo, Category: "Hanging", Material: "ceramic", Color: "grey speckle"},
	{ID: "ug-petrichor", Name: "Petrichor Smite Hanging", Image: "/planters/ugaoo/Hanging Ceramic Planters Petrichor Smite_1999_Ceramic.jpg", Price: 1999, Size: SizeMedium, PromptDesc: "a ceramic hanging planter with rustic petrichor-style glaze finish", Source: SourceUgaoo, Category: "Hanging", Material: "ceramic", Color: "brown"},
	{ID: "ug-macrame-1", Name: "Macrame Single Hanger", Image: "/planters/ugaoo/Macrame Single Layer Hanger_599_Macrame.jpg", Price: 599, Size: SizeSmall, PromptDesc: "a single-layer macrame rope plant hanger", Source: SourceUgaoo, Category: "Hanging", Material: "macrame rope", Color: "white"},
	{ID: "ug-macrame-3", Name: "Macrame Three Layer Hanger", Image: "/planters/ugaoo/Macrame Three Layer Hanger_699_Macrame.jpg", Price: 699, Size: SizeMedium, PromptDesc: "a three-tier macrame rope plant hanger with multiple pot holders", Source: SourceUgaoo, Category: "Hanging", Material: "macrame rope", Color: "white"},
	{ID: "ug-macrame-2", Name: "Macrame Two Layer Hanger", Image: "/planters/ugaoo/Macrame Two Layer Hanger_599_Macrame.jpg", Price: 599, Size: SizeSmall, PromptDesc: "a two-tier macrame rope plant hanger", Source: SourceUgaoo, Category: "Hanging", Material: "macrame rope", Color: "white"},

	// Metal planters
	{ID: "ug-aurelian", Name: "Aurelian Cylindrical", Image: "/planters/ugaoo/Aurelian Cylindrical Planter_2999_Metal.jpg", Price: 2999, Size: SizeMedium, PromptDesc: "a cylindrical metal planter with brushed antique brass finish", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "brass"},
	{ID: "ug-elegance", Name: "Elegance Planter", Image: "/planters/ugaoo/Elegance Planter_3249_Metal.jpg", Price: 3249, Size: SizeMedium, PromptDesc: "a tall elegant metal planter with sleek tapered shape", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "black"},
	{ID: "ug-golden-opulence", Name: "Golden Opulence", Image: "/planters/ugaoo/Golden Opulence Planter_2499_Gold.jpg", Price: 2499, Size: SizeMedium, PromptDesc: "a polished gold metal planter with goblet shape", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "gold"},
	{ID: "ug-gunmetal", Name: "Gunmetal Goblet", Image: "/planters/ugaoo/Gunmetal Goblet Planter_4499_Gunmetal.jpg", Price: 4499, Size: SizeBig, PromptDesc: "a large gunmetal grey goblet-shaped metal planter", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "gunmetal"},
	{ID: "ug-pastel-ridge", Name: "Pastel Ridge Heritage", Image: "/planters/ugaoo/Pastel Ridge Heritage Planter_4499_Pastel.jpg", Price: 4499, Size: SizeBig, PromptDesc: "a large heritage-style metal planter with ridged surface in pastel finish", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "pastel green"},
	{ID: "ug-ridgecraft", Name: "RidgeCraft Cylindrical", Image: "/planters/ugaoo/RidgeCraft Cylindrical Planter_3249_Metal.jpg", Price: 3249, Size: SizeMedium, PromptDesc: "a cylindrical metal planter with ridged craft texture", Source: SourceUgaoo, Category: "Metal", Material: "metal", Color: "black"},

	// Plastic / lightweight pots
	{ID: "ug-barca-round", Name: "Barca Round", Image: "/planters/ugaoo/Barca Round Planter_799_Plastic.jpg", Price: 799, Size: SizeSmall, PromptDesc: "a round plastic planter with stone-finish texture", Source: SourceUgaoo, Category: "Plastic", Material: "plastic stone-finish", Color: "grey stone"},
	{ID: "ug-barca-square", Name: "Barca Square", Image: "/planters/ugaoo/Barca Square Planter_999_Plastic.jpg", Price: 999, Size: SizeSmall, PromptDesc: "a square plastic planter with stone-finish texture", Source: SourceUgaoo, Category: "Plastic", Material: "plastic stone-finish", Color: "grey stone"},
	{ID: "ug-milano", Name: "Milano Short", Image: "/planters/ugaoo/Milano Short Planter_1499_Lightweight.jpg", Price: 1499, Size: SizeMedium, PromptDesc: "a short wide lightweight composite planter with ribbed texture", Source: SourceUgaoo, Category: "Lightweight", Material: "lightweight composite", Color: "grey"},
	{ID: "ug-paris", Name: "Paris Planter", Image: "/planters/ugaoo/Paris Planter_3499_Plastic.jpg", Price: 3499, Size: SizeBig, PromptDesc: "a large Paris-style premium plastic planter", Source: SourceUgaoo, Category: "Plastic", Material: "premium plastic", Color: "grey"},
	{ID: "ug-pebble", Name: "Pebble Shaped", Image: "/planters/ugaoo/Pebble Shaped Planter_799_Pebble.jpg", Price: 799, Size: SizeSmall, PromptDesc: "a rounded pebble-shaped planter with smooth organic form", Source: SourceUgaoo, Category: "Plastic", Material: "plastic", Color: "grey"},
	{ID: "ug-tokyo-high", Name: "Tokyo High", Image: "/planters/ugaoo/Tokyo High Planter_4999_Lightweight.jpg", Price: 4999, Size: SizeBig, PromptDesc: "a tall high ribbed cylindrical lightweight planter", Source: SourceUgaoo, Category: "Lightweight", Material: "lightweight composite", Color: "grey"},
	{ID: "ug-tokyo-round", Name: "Tokyo Round", Image: "/planters/ugaoo/Tokyo Round Planter_1799_Lightweight.jpg", Price: 1799, Size: SizeMedium, PromptDesc: "a round ribbed lightweight composite planter", Source: SourceUgaoo, Category: "Lightweight", Material: "lightweight composite", Color: "grey"},
	{ID: "ug-tulsi", Name: "Tulsi Pot", Image: "/planters/ugaoo/Tulsi Pot for Home_3999_Plastic.jpg", Price: 3999, Size: SizeMedium, PromptDesc: "a traditional tulsi pot for home with pedestal base", Source: SourceUgaoo, Category: "Plastic", Material: "premium plastic", Color: "stone"},

	// Wooden planters
	{ID: "ug-faceted-wood", Name: "Faceted Prism Wooden", Image: "/planters/ugaoo/Faceted prism Wooden Pot_1499_Wooden.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a geometric faceted prism-shaped wooden pot", Source: SourceUgaoo, Category: "Wooden", Material: "wood", Color: "natural wood"},
	{ID: "ug-interlace-wood", Name: "Interlace Charm Wooden", Image: "/planters/ugaoo/Interlace Charm Wooden Pot_1499_Wooden.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a wooden pot with interlaced woven-look surface", Source: SourceUgaoo, Category: "Wooden", Material: "wood", Color: "natural wood"},
	{ID: "ug-oblique-wood", Name: "Oblique Elegance Wooden", Image: "/planters/ugaoo/Oblique Elegance Wooden Pot_1499_Wooden.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a wooden pot with diagonal oblique ridge pattern", Source: SourceUgaoo, Category: "Wooden", Material: "wood", Color: "natural wood"},
	{ID: "ug-ridged-wood", Name: "Ridged Waves Wooden", Image: "/planters/ugaoo/Ridged Waves Wooden Pot_1499_Wooden.jpg", Price: 1499, Size: SizeSmall, PromptDesc: "a wooden pot with horizontal ridged wave texture", Source: SourceUgaoo, Category: "Wooden", Material: "wood", Color: "natural wood"},
}

// Planters is the unified catalog, KarmYog first then Ugaoo, in display order.
var Planters = append(append([]Planter{}, karmyogPlanters...), ugaooPlanters...)

// Plants is the companion species registry.
var Plants = []Plant{
	{ID: "areca-palm", Name: "Areca Palm", Price: 800},
	{ID: "bougainvillea", Name: "Bougainvillea", Price: 600},
	{ID: "snake-plant", Name: "Snake Plant", Price: 400},
	{ID: "golden-pothos", Name: "Golden Pothos", Price: 250},
	{ID: "fern-boston", Name: "Boston Fern", Price: 300},
	{ID: "peace-lily", Name: "Peace Lily", Price: 350},
	{ID: "rubber-plant", Name: "Rubber Plant", Price: 600},
	{ID: "money-plant", Name: "Money Plant", Price: 200},
	{ID: "jade-plant", Name: "Jade Plant", Price: 350},
	{ID: "spider-plant", Name: "Spider Plant", Price: 250},
	{ID: "tulsi", Name: "Tulsi", Price: 150},
	{ID: "croton", Name: "Croton", Price: 400},
	{ID: "petunia-mix", Name: "Petunia Mix", Price: 200},
}

var (
	planterByID map[string]Planter
	plantByID   map[string]Plant
)

func init() {
	planterByID = make(map[string]Planter, len(Planters))
	for _, p := range Planters {
		planterByID[p.ID] = p
	}
	plantByID = make(map[string]Plant, len(Plants))
	for _, p := range Plants {
		plantByID[p.ID] = p
	}
}

// PlanterByID looks up a planter by its catalog id.
func PlanterByID(id string) (Planter, bool) {
	p, ok := planterByID[id]
	return p, ok
}

// PlantByID looks up a plant by its catalog id.
func PlantByID(id string) (Plant, bool) {
	p, ok := plantByID[id]
	return p, ok
}

// PlantersBySource returns the partition of the catalog from one source.
func PlantersBySource(src PlanterSource) []Planter {
	var out []Planter
	for _, p := range Planters {
		if p.Source == src {
			out = append(out, p)
		}
	}
	return out
}

// PlantersByCategory returns planters of a given category.
func PlantersByCategory(cat string) []Planter {
	var out []Planter
	for _, p := range Planters {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct planter categories in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range Planters {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// IsLoRATrained reports whether the planter is rendered via a trained trigger
// word rather than a reference image.
func IsLoRATrained(p Planter) bool {
	return p.Source == SourceKarmYog
}
