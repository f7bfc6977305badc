package recommend

import (
	"reflect"
	"testing"

	"github.com/Rambadrinathan/vatika-studio/catalog"
)

func recomputeTotal(rec Recommendation) int {
	total := 0
	for _, it := range rec.Items {
		total += (it.Planter.Price + it.Plant.Price) * it.Quantity
	}
	return total
}

func TestRecommendIsIdempotent(t *testing.T) {
	cases := []struct {
		budget int
		space  catalog.SpaceType
	}{
		{20000, catalog.SpaceBalcony},
		{47000, catalog.SpaceTerrace},
		{100000, catalog.SpaceLivingRoom},
	}
	for _, tc := range cases {
		first := Recommend(tc.budget, tc.space)
		second := Recommend(tc.budget, tc.space)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Recommend(%d, %s) not deterministic", tc.budget, tc.space)
		}
	}
}

func TestGrandTotalMatchesItems(t *testing.T) {
	for budget := 5000; budget <= 150000; budget += 9500 {
		for _, space := range []catalog.SpaceType{catalog.SpaceBalcony, catalog.SpaceLivingRoom, catalog.SpaceTerrace} {
			rec := Recommend(budget, space)
			if got := recomputeTotal(rec); got != rec.GrandTotal {
				t.Errorf("budget=%d space=%s: grand total %d != item sum %d",
					budget, space, rec.GrandTotal, got)
			}
		}
	}
}

func TestGrandTotalNeverExceedsBudget(t *testing.T) {
	// The railing phase is mandatory for balconies, so balcony budgets start
	// above the worst-case hanger cost; other spaces are checked from zero up.
	for _, space := range []catalog.SpaceType{catalog.SpaceLivingRoom, catalog.SpaceTerrace} {
		for budget := 1000; budget <= 150000; budget += 1377 {
			rec := Recommend(budget, space)
			if rec.GrandTotal > budget {
				t.Errorf("budget=%d space=%s: grand total %d exceeds budget", budget, space, rec.GrandTotal)
			}
		}
	}
	for budget := 15000; budget <= 150000; budget += 1377 {
		rec := Recommend(budget, catalog.SpaceBalcony)
		if rec.GrandTotal > budget {
			t.Errorf("budget=%d balcony: grand total %d exceeds budget", budget, rec.GrandTotal)
		}
	}
}

func TestQuantityCaps(t *testing.T) {
	for budget := 10000; budget <= 150000; budget += 7000 {
		for _, space := range []catalog.SpaceType{catalog.SpaceBalcony, catalog.SpaceLivingRoom, catalog.SpaceTerrace} {
			rec := Recommend(budget, space)
			for _, it := range rec.Items {
				if it.Planter.ID == catalog.CrossTierPlanterID {
					if it.Quantity < 3 || it.Quantity > 6 {
						t.Errorf("budget=%d: railing hanger quantity %d out of range", budget, it.Quantity)
					}
					continue
				}
				if it.Quantity < 1 || it.Quantity > 2 {
					t.Errorf("budget=%d space=%s: %s has quantity %d, cap is 2",
						budget, space, it.Planter.ID, it.Quantity)
				}
			}
		}
	}
}

func TestRailingHangerQuantityBreakpoints(t *testing.T) {
	tests := []struct {
		budget int
		want   int
	}{
		{10000, 3},
		{25000, 3},
		{26000, 4},
		{50000, 4},
		{50001, 5},
		{75000, 5},
		{75001, 6},
		{200000, 6},
	}
	for _, tt := range tests {
		rec := Recommend(tt.budget, catalog.SpaceBalcony)
		if len(rec.Items) == 0 || rec.Items[0].Planter.ID != catalog.CrossTierPlanterID {
			t.Fatalf("budget=%d: railing hanger not first item", tt.budget)
		}
		if got := rec.Items[0].Quantity; got != tt.want {
			t.Errorf("budget=%d: railing hanger quantity = %d, want %d", tt.budget, got, tt.want)
		}
		if rec.Items[0].Plant.ID != "petunia-mix" {
			t.Errorf("budget=%d: railing hanger should carry the flowering mix, got %s",
				tt.budget, rec.Items[0].Plant.ID)
		}
	}
}

func TestBalconyStarterScenario(t *testing.T) {
	rec := Recommend(20000, catalog.SpaceBalcony)

	if len(rec.Items) == 0 {
		t.Fatal("expected items for a 20000 balcony budget")
	}
	hanger := rec.Items[0]
	if hanger.Planter.ID != catalog.CrossTierPlanterID || hanger.Quantity != 3 {
		t.Fatalf("expected railing hanger x3 first, got %s x%d", hanger.Planter.ID, hanger.Quantity)
	}

	// 3 hangers with flowering mix, a Tokyo Tall pair, a Tokyo Round pair and
	// one fabric box accent fit this budget.
	if rec.GrandTotal != 19948 {
		t.Errorf("grand total = %d, want 19948", rec.GrandTotal)
	}
	if rec.GrandTotal > 20000 {
		t.Errorf("grand total %d exceeds budget", rec.GrandTotal)
	}

	// Starter tier only: nothing from classic or premium may leak in.
	for _, it := range rec.Items[1:] {
		if tier, ok := catalog.TierOf(it.Planter.ID); !ok || tier != catalog.TierStarter {
			t.Errorf("non-starter planter %s in starter recommendation", it.Planter.ID)
		}
	}
}

func TestLivingRoomPremiumScenario(t *testing.T) {
	rec := Recommend(100000, catalog.SpaceLivingRoom)

	for _, it := range rec.Items {
		if it.Planter.ID == catalog.CrossTierPlanterID {
			t.Fatal("railing hanger selected for a living room")
		}
	}
	if len(rec.Items) < 2 {
		t.Fatalf("expected at least the two anchor pieces, got %d items", len(rec.Items))
	}

	// The anchor phase runs first, so the anchors lead the item list. At this
	// budget two are allowed and the second must come from the other source.
	first, second := rec.Items[0], rec.Items[1]
	if first.Planter.Size != catalog.SizeBig || second.Planter.Size != catalog.SizeBig {
		t.Fatalf("expected big anchors first, got %s/%s", first.Planter.Size, second.Planter.Size)
	}
	if first.Planter.Source == second.Planter.Source {
		t.Errorf("anchor pieces share source %s, want diverse sources", first.Planter.Source)
	}
	if first.Plant.ID == second.Plant.ID {
		t.Errorf("anchor pieces share companion plant %s", first.Plant.ID)
	}
}

func TestTerraceClassicInterleaving(t *testing.T) {
	rec := Recommend(50000, catalog.SpaceTerrace)

	var bigCount int
	var mediumSources []catalog.PlanterSource
	for _, it := range rec.Items {
		switch it.Planter.Size {
		case catalog.SizeBig:
			bigCount++
		case catalog.SizeMedium:
			mediumSources = append(mediumSources, it.Planter.Source)
		}
	}

	if bigCount != 2 {
		t.Errorf("expected maxBigs=2 at a 50000 budget, got %d anchors", bigCount)
	}
	// maxMediumTypes is 3 here; picks alternate proprietary/marketplace.
	if len(mediumSources) != 3 {
		t.Fatalf("expected 3 medium picks, got %d", len(mediumSources))
	}
	want := []catalog.PlanterSource{catalog.SourceKarmYog, catalog.SourceUgaoo, catalog.SourceKarmYog}
	if !reflect.DeepEqual(mediumSources, want) {
		t.Errorf("medium sources = %v, want %v", mediumSources, want)
	}
	if !rec.HasMarketplaceItems {
		t.Error("expected marketplace items to be flagged")
	}
}

func TestTinyBudgetDegradesGracefully(t *testing.T) {
	rec := Recommend(500, catalog.SpaceLivingRoom)
	if len(rec.Items) != 0 || rec.GrandTotal != 0 {
		t.Errorf("expected empty recommendation, got %d items totalling %d",
			len(rec.Items), rec.GrandTotal)
	}

	// A balcony always gets its railing hangers, even when the budget cannot
	// cover them.
	rec = Recommend(500, catalog.SpaceBalcony)
	if len(rec.Items) != 1 || rec.Items[0].Planter.ID != catalog.CrossTierPlanterID {
		t.Fatalf("expected only the railing hanger, got %d items", len(rec.Items))
	}
}

func TestNoDuplicatePlanters(t *testing.T) {
	for budget := 10000; budget <= 150000; budget += 13000 {
		for _, space := range []catalog.SpaceType{catalog.SpaceBalcony, catalog.SpaceLivingRoom, catalog.SpaceTerrace} {
			rec := Recommend(budget, space)
			seen := make(map[string]bool)
			for _, it := range rec.Items {
				if seen[it.Planter.ID] {
					t.Errorf("budget=%d space=%s: planter %s selected twice", budget, space, it.Planter.ID)
				}
				seen[it.Planter.ID] = true
			}
		}
	}
}

func TestSelectionsStayInTier(t *testing.T) {
	for budget := 10000; budget <= 150000; budget += 11000 {
		tier := catalog.TierForBudget(budget)
		rec := Recommend(budget, catalog.SpaceTerrace)
		for _, it := range rec.Items {
			got, ok := catalog.TierOf(it.Planter.ID)
			if !ok {
				t.Errorf("budget=%d: cross-tier planter %s outside balcony flow", budget, it.Planter.ID)
				continue
			}
			if got != tier {
				t.Errorf("budget=%d (%s): selected %s from tier %s", budget, tier, it.Planter.ID, got)
			}
		}
	}
}
