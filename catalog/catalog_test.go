package catalog

import "testing"

func TestEveryPlanterHasExactlyOneTier(t *testing.T) {
	for _, p := range Planters {
		if p.ID == CrossTierPlanterID {
			continue
		}
		tier, ok := TierOf(p.ID)
		if !ok {
			t.Errorf("planter %s has no tier assignment", p.ID)
			continue
		}
		switch tier {
		case TierStarter, TierClassic, TierPremium:
		default:
			t.Errorf("planter %s has invalid tier %q", p.ID, tier)
		}
	}
}

func TestNoStaleTierAssignments(t *testing.T) {
	for id := range planterTier {
		if _, ok := PlanterByID(id); !ok {
			t.Errorf("tier table references unknown planter %s", id)
		}
	}
}

func TestTierSetsAreDisjoint(t *testing.T) {
	seen := make(map[string]BudgetTier)
	for _, tier := range []BudgetTier{TierStarter, TierClassic, TierPremium} {
		for _, p := range PlantersForTier(tier) {
			if prev, ok := seen[p.ID]; ok {
				t.Errorf("planter %s appears in both %s and %s", p.ID, prev, tier)
			}
			seen[p.ID] = tier
		}
	}
}

func TestCrossTierPlanterExcludedFromListings(t *testing.T) {
	for _, tier := range []BudgetTier{TierStarter, TierClassic, TierPremium} {
		for _, p := range PlantersForTier(tier) {
			if p.ID == CrossTierPlanterID {
				t.Errorf("railing hanger leaked into %s tier listing", tier)
			}
		}
	}
	if _, ok := TierOf(CrossTierPlanterID); ok {
		t.Error("railing hanger should report as cross-tier, not a single tier")
	}
}

func TestTierForBudgetThresholds(t *testing.T) {
	tests := []struct {
		budget int
		want   BudgetTier
	}{
		{-5000, TierStarter},
		{0, TierStarter},
		{30000, TierStarter},
		{30001, TierClassic},
		{60000, TierClassic},
		{60001, TierPremium},
		{250000, TierPremium},
	}
	for _, tt := range tests {
		if got := TierForBudget(tt.budget); got != tt.want {
			t.Errorf("TierForBudget(%d) = %s, want %s", tt.budget, got, tt.want)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	ids := make(map[string]bool)
	for _, p := range Planters {
		if ids[p.ID] {
			t.Errorf("duplicate planter id %s", p.ID)
		}
		ids[p.ID] = true
		if p.Price <= 0 {
			t.Errorf("planter %s has non-positive price %d", p.ID, p.Price)
		}
		switch p.Size {
		case SizeSmall, SizeMedium, SizeBig:
		default:
			t.Errorf("planter %s has invalid size %q", p.ID, p.Size)
		}
		switch p.Source {
		case SourceKarmYog, SourceUgaoo:
		default:
			t.Errorf("planter %s has invalid source %q", p.ID, p.Source)
		}
	}

	plantIDs := make(map[string]bool)
	for _, p := range Plants {
		if plantIDs[p.ID] {
			t.Errorf("duplicate plant id %s", p.ID)
		}
		plantIDs[p.ID] = true
		if p.Price <= 0 {
			t.Errorf("plant %s has non-positive price %d", p.ID, p.Price)
		}
	}
}

func TestLookupsRoundTrip(t *testing.T) {
	p, ok := PlanterByID("chevron")
	if !ok || p.Name != "Chevron" {
		t.Fatalf("expected chevron lookup to succeed, got %+v ok=%v", p, ok)
	}
	if _, ok := PlanterByID("no-such-planter"); ok {
		t.Error("expected lookup miss for unknown planter")
	}
	plant, ok := PlantByID("areca-palm")
	if !ok || plant.Price != 800 {
		t.Fatalf("expected areca-palm at 800, got %+v ok=%v", plant, ok)
	}
}

func TestSourcePartition(t *testing.T) {
	ky := PlantersBySource(SourceKarmYog)
	ug := PlantersBySource(SourceUgaoo)
	if len(ky)+len(ug) != len(Planters) {
		t.Errorf("source partitions overlap or miss planters: %d + %d != %d",
			len(ky), len(ug), len(Planters))
	}
	for _, p := range ky {
		if !IsLoRATrained(p) {
			t.Errorf("karmyog planter %s should be LoRA-trained", p.ID)
		}
	}
	for _, p := range ug {
		if IsLoRATrained(p) {
			t.Errorf("ugaoo planter %s should not be LoRA-trained", p.ID)
		}
	}
}
