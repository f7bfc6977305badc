package controllers

import (
	"net/http"

	"github.com/Rambadrinathan/vatika-studio/catalog"
)

// GetPlanters lists the catalog, optionally filtered by tier, source or
// category query parameters. Tier filtering excludes the cross-tier railing
// hanger, same as the recommendation engine sees it.
func GetPlanters(w http.ResponseWriter, r *http.Request) {
	planters := catalog.Planters

	if tier := r.URL.Query().Get("tier"); tier != "" {
		switch catalog.BudgetTier(tier) {
		case catalog.TierStarter, catalog.TierClassic, catalog.TierPremium:
			planters = catalog.PlantersForTier(catalog.BudgetTier(tier))
		default:
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid tier"})
			return
		}
	}

	if src := r.URL.Query().Get("source"); src != "" {
		filtered := planters[:0:0]
		for _, p := range planters {
			if p.Source == catalog.PlanterSource(src) {
				filtered = append(filtered, p)
			}
		}
		planters = filtered
	}

	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := planters[:0:0]
		for _, p := range planters {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		planters = filtered
	}

	if planters == nil {
		planters = []catalog.Planter{}
	}
	writeJSON(w, http.StatusOK, planters)
}

func GetPlants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Plants)
}

func GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}
