package catalog

// BudgetTier partitions the catalog into three disjoint bands so every budget
// feels like browsing a different curated catalog rather than more of the same.
type BudgetTier string

const (
	TierStarter BudgetTier = "starter"
	TierClassic BudgetTier = "classic"
	TierPremium BudgetTier = "premium"
)

// CrossTierPlanterID is the one planter usable in every tier. It is excluded
// from generic tier listings and handled by the balcony railing phase instead.
const CrossTierPlanterID = "balcony-hanger"

// TierForBudget classifies a budget in whole rupees. Out-of-range inputs
// saturate to starter or premium.
func TierForBudget(budget int) BudgetTier {
	if budget <= 30000 {
		return TierStarter
	}
	if budget <= 60000 {
		return TierClassic
	}
	return TierPremium
}

// planterTier assigns every catalog planter to exactly one budget tier.
// The balcony hanger's entry is nominal; TierOf reports it as cross-tier.
var planterTier = map[string]BudgetTier{
	// KarmYog starter (affordable basics)
	"tokyo-tall": TierStarter,
	"azziano":    TierStarter,
	"b2-fabric":  TierStarter,
	// KarmYog classic (curated mid-range)
	"chevron":    TierClassic,
	"fox-bowl":   TierClassic,
	"ribbed-set": TierClassic,
	// KarmYog premium (statement pieces)
	"wrought-iron":  TierPremium,
	"allegra":       TierPremium,
	"willow":        TierPremium,
	"amalfi":        TierPremium,
	"quebec-rect":   TierPremium,
	"quebec-sq":     TierPremium,
	"go-hooked":     TierPremium,
	"pine-skirting": TierPremium,
	// Railing hanger (handled separately, all tiers)
	"balcony-hanger": TierStarter,
	// Ugaoo starter (cheerful, woven, accessible)
	"ug-crown":          TierStarter,
	"ug-erika":          TierStarter,
	"ug-barca-round":    TierStarter,
	"ug-barca-square":   TierStarter,
	"ug-pebble":         TierStarter,
	"ug-macrame-1":      TierStarter,
	"ug-macrame-2":      TierStarter,
	"ug-macrame-3":      TierStarter,
	"ug-cosmic-hang":    TierStarter,
	"ug-aurelius-prism": TierStarter,
	"ug-aurelius-round": TierStarter,
	"ug-grail":          TierStarter,
	"ug-peacock":        TierStarter,
	"ug-fluted":         TierStarter,
	"ug-ex-cotton":      TierStarter,
	"ug-square-cane":    TierStarter,
	"ug-trinket":        TierStarter,
	"ug-tokyo-round":    TierStarter,
	"ug-milano":         TierStarter,
	"ug-belly-dance":    TierStarter,
	"ug-rays-cotton":    TierStarter,
	"ug-seagrass":       TierStarter,
	"ug-skyie":          TierStarter,
	// Ugaoo classic (designer, mid-range)
	"ug-sunflower":      TierClassic,
	"ug-elegance":       TierClassic,
	"ug-ridgecraft":     TierClassic,
	"ug-aurelian":       TierClassic,
	"ug-phoenix":        TierClassic,
	"ug-petrichor":      TierClassic,
	"ug-tassel":         TierClassic,
	"ug-paris":          TierClassic,
	"ug-faceted-3d":     TierClassic,
	"ug-interlace-3d":   TierClassic,
	"ug-oblique-3d":     TierClassic,
	"ug-ridged-3d":      TierClassic,
	"ug-faceted-wood":   TierClassic,
	"ug-interlace-wood": TierClassic,
	"ug-oblique-wood":   TierClassic,
	"ug-ridged-wood":    TierClassic,
	"ug-imperia":        TierClassic,
	// Ugaoo premium (luxury statement pieces)
	"ug-fleeting-bliss":  TierPremium,
	"ug-gunmetal":        TierPremium,
	"ug-pastel-ridge":    TierPremium,
	"ug-tokyo-high":      TierPremium,
	"ug-golden-opulence": TierPremium,
	"ug-tulsi":           TierPremium,
}

// TierOf returns the budget tier a planter belongs to. The second result is
// false for the cross-tier railing hanger, which belongs to every tier.
func TierOf(planterID string) (BudgetTier, bool) {
	if planterID == CrossTierPlanterID {
		return "", false
	}
	tier, ok := planterTier[planterID]
	return tier, ok
}

// PlantersForTier returns the tier's planters in catalog order, excluding the
// cross-tier railing hanger.
func PlantersForTier(tier BudgetTier) []Planter {
	var out []Planter
	for _, p := range Planters {
		if p.ID == CrossTierPlanterID {
			continue
		}
		if planterTier[p.ID] == tier {
			out = append(out, p)
		}
	}
	return out
}
