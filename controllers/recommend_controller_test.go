package controllers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rambadrinathan/vatika-studio/catalog"
)

func doGet(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestGetRecommendation(t *testing.T) {
	rr := doGet(t, GetRecommendation, "/recommendations?budget=50000&space=terrace")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp RecommendationResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Budget != 50000 || resp.SpaceType != catalog.SpaceTerrace {
		t.Errorf("echoed budget/space = %d/%s", resp.Budget, resp.SpaceType)
	}
	if resp.Tier != catalog.TierClassic {
		t.Errorf("tier = %s, want classic", resp.Tier)
	}
	if len(resp.Items) == 0 {
		t.Fatal("expected items at a 50000 budget")
	}
	if resp.GrandTotal <= 0 || resp.GrandTotal > 50000 {
		t.Errorf("grand total = %d, want within budget", resp.GrandTotal)
	}
	for _, it := range resp.Items {
		if it.PlanterID != it.Planter.ID || it.PlantID != it.Plant.ID {
			t.Errorf("item ids do not match embedded products: %s/%s", it.PlanterID, it.PlantID)
		}
	}
}

func TestGetRecommendationDefaultsToBalcony(t *testing.T) {
	rr := doGet(t, GetRecommendation, "/recommendations?budget=20000")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp RecommendationResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SpaceType != catalog.SpaceBalcony {
		t.Errorf("space defaulted to %s, want balcony", resp.SpaceType)
	}
	if len(resp.Items) == 0 || resp.Items[0].PlanterID != catalog.CrossTierPlanterID {
		t.Error("balcony default should lead with the railing hanger")
	}
}

func TestGetRecommendationRejectsBadInput(t *testing.T) {
	cases := []string{
		"/recommendations",
		"/recommendations?budget=abc",
		"/recommendations?budget=0",
		"/recommendations?budget=-100",
		"/recommendations?budget=50000&space=garage",
	}
	for _, target := range cases {
		if rr := doGet(t, GetRecommendation, target); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rr.Code)
		}
	}
}

func TestGetDeliveryTiers(t *testing.T) {
	rr := doGet(t, GetDeliveryTiers, "/delivery/tiers")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var tiers []catalog.DeliveryTier
	if err := json.NewDecoder(rr.Body).Decode(&tiers); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(tiers) != len(catalog.DeliveryTiers) {
		t.Errorf("got %d tiers, want %d", len(tiers), len(catalog.DeliveryTiers))
	}
}

func TestGetDeliveryQuote(t *testing.T) {
	rr := doGet(t, GetDeliveryQuote, "/delivery/quote?days=11&total=10000")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp DeliveryQuoteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Days != 11 {
		t.Errorf("days = %d, want 11", resp.Days)
	}
	// Halfway between the 7-day and 15-day anchors.
	if math.Abs(resp.Multiplier-0.825) > 1e-9 {
		t.Errorf("multiplier = %v, want 0.825", resp.Multiplier)
	}
	if resp.Tier.Days != 7 {
		t.Errorf("stepped tier days = %d, want 7", resp.Tier.Days)
	}
	if resp.DiscountedTotal != 8250 {
		t.Errorf("discounted total = %d, want 8250", resp.DiscountedTotal)
	}
}

func TestGetDeliveryQuoteWithoutTotal(t *testing.T) {
	rr := doGet(t, GetDeliveryQuote, "/delivery/quote?days=45")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp DeliveryQuoteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Multiplier != 0.50 {
		t.Errorf("multiplier = %v, want 0.50", resp.Multiplier)
	}
	if resp.Total != 0 || resp.DiscountedTotal != 0 {
		t.Error("totals should be omitted when no total is supplied")
	}
}

func TestGetDeliveryQuoteRejectsBadInput(t *testing.T) {
	cases := []string{
		"/delivery/quote",
		"/delivery/quote?days=abc",
		"/delivery/quote?days=11&total=abc",
		"/delivery/quote?days=11&total=-5",
	}
	for _, target := range cases {
		if rr := doGet(t, GetDeliveryQuote, target); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rr.Code)
		}
	}
}
