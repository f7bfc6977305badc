package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Rambadrinathan/vatika-studio/catalog"
	"github.com/Rambadrinathan/vatika-studio/recommend"
)

type RecommendationItem struct {
	PlanterID string          `json:"planter_id"`
	PlantID   string          `json:"plant_id"`
	Quantity  int             `json:"quantity"`
	Planter   catalog.Planter `json:"planter"`
	Plant     catalog.Plant   `json:"plant"`
}

type RecommendationResponse struct {
	Budget              int                  `json:"budget"`
	SpaceType           catalog.SpaceType    `json:"space_type"`
	Tier                catalog.BudgetTier   `json:"tier"`
	Items               []RecommendationItem `json:"items"`
	GrandTotal          int                  `json:"grand_total"`
	HasMarketplaceItems bool                 `json:"has_marketplace_items"`
}

func toRecommendationResponse(budget int, space catalog.SpaceType, rec recommend.Recommendation) RecommendationResponse {
	items := make([]RecommendationItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, RecommendationItem{
			PlanterID: it.Planter.ID,
			PlantID:   it.Plant.ID,
			Quantity:  it.Quantity,
			Planter:   it.Planter,
			Plant:     it.Plant,
		})
	}
	return RecommendationResponse{
		Budget:              budget,
		SpaceType:           space,
		Tier:                catalog.TierForBudget(budget),
		Items:               items,
		GrandTotal:          rec.GrandTotal,
		HasMarketplaceItems: rec.HasMarketplaceItems,
	}
}

// GetRecommendation answers GET /recommend?budget=50000&space=balcony.
func GetRecommendation(w http.ResponseWriter, r *http.Request) {
	budget, err := strconv.Atoi(r.URL.Query().Get("budget"))
	if err != nil || budget <= 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid budget"})
		return
	}

	space := catalog.SpaceType(r.URL.Query().Get("space"))
	if space == "" {
		space = catalog.SpaceBalcony
	}
	if !catalog.ValidSpaceType(space) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid space type"})
		return
	}

	rec := recommend.Recommend(budget, space)
	writeJSON(w, http.StatusOK, toRecommendationResponse(budget, space, rec))
}

// GetDeliveryTiers returns the published delivery pricing table.
func GetDeliveryTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.DeliveryTiers)
}

type DeliveryQuoteResponse struct {
	Days            int                  `json:"days"`
	Tier            catalog.DeliveryTier `json:"tier"`
	Multiplier      float64              `json:"multiplier"`
	Total           int                  `json:"total,omitempty"`
	DiscountedTotal int                  `json:"discounted_total,omitempty"`
}

// GetDeliveryQuote answers GET /delivery/quote?days=20&total=48000 with the
// stepped tier for display plus the smooth interpolated multiplier applied to
// the total. Out-of-range day values clamp to the published table.
func GetDeliveryQuote(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid days"})
		return
	}

	multiplier := catalog.MultiplierForDays(float64(days))
	resp := DeliveryQuoteResponse{
		Days:       days,
		Tier:       catalog.TierForDays(days),
		Multiplier: multiplier,
	}

	if totalStr := r.URL.Query().Get("total"); totalStr != "" {
		total, err := strconv.Atoi(totalStr)
		if err != nil || total < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid total"})
			return
		}
		resp.Total = total
		resp.DiscountedTotal = int(math.Round(float64(total) * multiplier))
	}

	writeJSON(w, http.StatusOK, resp)
}
