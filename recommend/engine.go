// Package recommend turns a budget and a space type into a concrete, priced
// list of catalog items. The engine is a pure function of its inputs and the
// static catalog: no I/O, no shared state, deterministic output.
package recommend

import (
	"sort"

	"github.com/Rambadrinathan/vatika-studio/catalog"
)

// SelectedItem pairs a planter with its companion plant and a quantity.
// Quantity is capped at 2 for everything except the railing hanger.
type SelectedItem struct {
	Planter  catalog.Planter `json:"planter"`
	Plant    catalog.Plant   `json:"plant"`
	Quantity int             `json:"quantity"`
}

// Recommendation is the engine's output. GrandTotal is recomputed from the
// final selections rather than tracked incrementally, so it can never drift.
type Recommendation struct {
	Items               []SelectedItem `json:"items"`
	GrandTotal          int            `json:"grand_total"`
	HasMarketplaceItems bool           `json:"has_marketplace_items"`
}

// selection threads the running state through the phases: the items picked so
// far and the budget still unspent. Remaining may go negative only in the
// mandatory railing phase.
type selection struct {
	items     []SelectedItem
	remaining int
}

func (s *selection) has(planterID string) bool {
	for _, it := range s.items {
		if it.Planter.ID == planterID {
			return true
		}
	}
	return false
}

func (s *selection) add(p catalog.Planter, plant catalog.Plant, qty int) {
	s.items = append(s.items, SelectedItem{Planter: p, Plant: plant, Quantity: qty})
	s.remaining -= (p.Price + plant.Price) * qty
}

// Recommend produces a curated selection for the budget and space type.
// Calling it twice with identical arguments yields an identical result. There
// are no error conditions: when the budget affords little, the result simply
// has fewer items.
func Recommend(budget int, space catalog.SpaceType) Recommendation {
	cyc := newPlantCycler()
	tier := catalog.TierForBudget(budget)
	tierPlanters := catalog.PlantersForTier(tier)
	// Stable so planters with equal prices keep their catalog order.
	sort.SliceStable(tierPlanters, func(i, j int) bool {
		return tierPlanters[i].Price > tierPlanters[j].Price
	})

	s := selection{remaining: budget}
	if space == catalog.SpaceBalcony {
		pickRailingHangers(&s, budget)
	}
	pickAnchors(&s, tierPlanters, maxBigsFor(budget), cyc)
	pickMediums(&s, tierPlanters, maxMediumTypesFor(budget), cyc)
	if tier != catalog.TierPremium {
		pickSmallAccent(&s, tierPlanters, cyc)
	}
	upgradeToPairs(&s)
	fillRemaining(&s, tierPlanters, cyc)

	grandTotal := 0
	hasMarketplace := false
	for _, it := range s.items {
		grandTotal += (it.Planter.Price + it.Plant.Price) * it.Quantity
		if it.Planter.Source == catalog.SourceUgaoo {
			hasMarketplace = true
		}
	}

	return Recommendation{
		Items:               s.items,
		GrandTotal:          grandTotal,
		HasMarketplaceItems: hasMarketplace,
	}
}

// maxBigsFor allows a second anchor piece only once the budget crosses 50k.
func maxBigsFor(budget int) int {
	if budget >= 50000 {
		return 2
	}
	return 1
}

func maxMediumTypesFor(budget int) int {
	switch {
	case budget <= 30000:
		return 2
	case budget <= 50000:
		return 3
	case budget <= 75000:
		return 4
	default:
		return 5
	}
}

// railingQtyFor scales the railing hanger count with the budget.
func railingQtyFor(budget int) int {
	switch {
	case budget <= 25000:
		return 3
	case budget <= 50000:
		return 4
	case budget <= 75000:
		return 5
	default:
		return 6
	}
}

// pickRailingHangers runs for balconies only: railing hangers with a flowering
// mix, always included. The cost is deducted unconditionally, so a tiny budget
// overshoots here rather than leave the railing bare.
func pickRailingHangers(s *selection, budget int) {
	hanger, _ := catalog.PlanterByID(catalog.CrossTierPlanterID)
	petunia, _ := catalog.PlantByID("petunia-mix")
	s.add(hanger, petunia, railingQtyFor(budget))
}

// pickAnchors selects up to maxBigs statement pieces, most expensive first.
// A candidate is rejected when it would eat more than half the remaining
// budget, and a second piece from an already-used source is skipped while an
// affordable alternate-source piece exists.
func pickAnchors(s *selection, tierPlanters []catalog.Planter, maxBigs int, cyc *plantCycler) {
	var bigs []catalog.Planter
	for _, p := range tierPlanters {
		if p.Size == catalog.SizeBig {
			bigs = append(bigs, p)
		}
	}

	// The diversity probe prices a candidate's companion at the head of the
	// big rotation, matching how the first anchor is actually planted.
	probePlant, _ := catalog.PlantByID(plantCycles[catalog.SizeBig][0])

	bigCount := 0
	bigSources := make(map[catalog.PlanterSource]bool)
	for _, pick := range bigs {
		if bigCount >= maxBigs {
			break
		}
		if bigCount > 0 && bigSources[pick.Source] {
			otherAvail := false
			for _, p := range bigs {
				if !bigSources[p.Source] && !s.has(p.ID) && p.Price+probePlant.Price <= s.remaining/2 {
					otherAvail = true
					break
				}
			}
			if otherAvail {
				continue
			}
		}
		plant := cyc.next(catalog.SizeBig)
		unit := pick.Price + plant.Price
		if unit > s.remaining/2 {
			continue
		}
		s.add(pick, plant, 1)
		bigSources[pick.Source] = true
		bigCount++
	}
}

// pickMediums walks an interleaved KarmYog/Ugaoo sequence (proprietary first
// in each pair, each sub-list keeping its price order) and accepts planters
// that fit until maxTypes acceptances.
func pickMediums(s *selection, tierPlanters []catalog.Planter, maxTypes int, cyc *plantCycler) {
	var ky, ug []catalog.Planter
	for _, p := range tierPlanters {
		if p.Size != catalog.SizeMedium {
			continue
		}
		if p.Source == catalog.SourceKarmYog {
			ky = append(ky, p)
		} else {
			ug = append(ug, p)
		}
	}

	var mediums []catalog.Planter
	for i := 0; i < len(ky) || i < len(ug); i++ {
		if i < len(ky) {
			mediums = append(mediums, ky[i])
		}
		if i < len(ug) {
			mediums = append(mediums, ug[i])
		}
	}

	count := 0
	for _, pick := range mediums {
		if count >= maxTypes {
			break
		}
		if s.has(pick.ID) {
			continue
		}
		plant := cyc.next(catalog.SizeMedium)
		unit := pick.Price + plant.Price
		if unit > s.remaining {
			continue
		}
		s.add(pick, plant, 1)
		count++
	}
}

// pickSmallAccent adds at most one small piece for the non-premium tiers.
func pickSmallAccent(s *selection, tierPlanters []catalog.Planter, cyc *plantCycler) {
	if s.remaining <= 500 {
		return
	}
	for _, pick := range tierPlanters {
		if pick.Size != catalog.SizeSmall || s.has(pick.ID) {
			continue
		}
		plant := cyc.next(catalog.SizeSmall)
		unit := pick.Price + plant.Price
		if unit > s.remaining {
			continue
		}
		s.add(pick, plant, 1)
		break
	}
}

// upgradeToPairs doubles single items to elegant pairs while the budget lasts,
// in selection order. The railing hanger keeps its own quantity rule.
func upgradeToPairs(s *selection) {
	for i := range s.items {
		it := &s.items[i]
		if it.Planter.ID == catalog.CrossTierPlanterID || it.Quantity >= 2 {
			continue
		}
		unit := it.Planter.Price + it.Plant.Price
		if unit <= s.remaining {
			it.Quantity = 2
			s.remaining -= unit
		}
	}
}

// fillRemaining greedily adds unused tier planters as single pieces while a
// meaningful amount of budget is left.
func fillRemaining(s *selection, tierPlanters []catalog.Planter, cyc *plantCycler) {
	if s.remaining <= 3000 {
		return
	}
	for _, pick := range tierPlanters {
		if s.has(pick.ID) {
			continue
		}
		plant := cyc.next(pick.Size)
		unit := pick.Price + plant.Price
		if unit > s.remaining {
			continue
		}
		s.add(pick, plant, 1)
		if s.remaining < 3000 {
			break
		}
	}
}
