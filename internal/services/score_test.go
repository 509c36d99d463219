package services

import (
	"fulfillment-advisor-service/internal/domain"
	"math"
	"testing"
)

func TestNormalizeRange(t *testing.T) {
	values := []float64{10, 40, 25, 100, 55}

	out := Normalize(values)
	if len(out) != len(values) {
		t.Fatalf("len = %d, want %d", len(out), len(values))
	}

	for i, v := range out {
		if v < 0 || v > 1 {
			t.Errorf("out[%d] = %v, want value in [0, 1]", i, v)
		}
	}

	if out[0] != 0 {
		t.Errorf("minimum should normalize to 0, got %v", out[0])
	}
	if out[3] < out[4] || out[4] < out[1] || out[1] < out[2] {
		t.Errorf("normalization must preserve ordering: %v", out)
	}
}

func TestNormalizeConstantColumn(t *testing.T) {
	out := Normalize([]float64{42, 42, 42, 42})

	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0 for constant column", i, v)
		}
		if math.IsNaN(v) {
			t.Errorf("out[%d] is NaN", i)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if out := Normalize(nil); out != nil {
		t.Fatalf("Normalize(nil) = %v, want nil", out)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightCost + WeightDelayRisk + WeightDistance + WeightCO2 + WeightInventory
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("weights sum = %v, want 1.0", sum)
	}
}

func TestScoreCandidatesBounds(t *testing.T) {
	candidates := []domain.Candidate{
		{Warehouse: "A", Vehicle: "Truck", Cost: 500, TrafficDelayMinutes: 30, WeatherImpact: 2, DistanceKM: 100, CO2Kg: 80, InventoryHeadroom: 10},
		{Warehouse: "B", Vehicle: "Van", Cost: 700, TrafficDelayMinutes: 10, WeatherImpact: 4, DistanceKM: 200, CO2Kg: 50, InventoryHeadroom: 90},
		{Warehouse: "C", Vehicle: "EV", Cost: 600, TrafficDelayMinutes: 20, WeatherImpact: 0, DistanceKM: 150, CO2Kg: 10, InventoryHeadroom: 50},
	}

	scored := ScoreCandidates(candidates)
	if len(scored) != 3 {
		t.Fatalf("len = %d, want 3", len(scored))
	}

	for i, s := range scored {
		for name, v := range map[string]float64{
			"cost_n":            s.CostN,
			"delay_risk":        s.DelayRisk,
			"distance_n":        s.DistanceN,
			"co2_n":             s.CO2N,
			"inventory_n":       s.InventoryN,
			"fulfillment_score": s.FulfillmentScore,
		} {
			if v < 0 || v > 1 {
				t.Errorf("scored[%d].%s = %v, want value in [0, 1]", i, name, v)
			}
		}
	}
}

func TestScoreCandidatesAllEqualCost(t *testing.T) {
	candidates := []domain.Candidate{
		{Warehouse: "A", Vehicle: "Truck", Cost: 600, InventoryHeadroom: 10},
		{Warehouse: "B", Vehicle: "Van", Cost: 600, InventoryHeadroom: 50},
		{Warehouse: "C", Vehicle: "EV", Cost: 600, InventoryHeadroom: 90},
	}

	scored := ScoreCandidates(candidates)
	for i, s := range scored {
		if s.CostN != 0 {
			t.Errorf("scored[%d].CostN = %v, want 0 when all costs are equal", i, s.CostN)
		}
		if math.IsNaN(s.FulfillmentScore) {
			t.Errorf("scored[%d].FulfillmentScore is NaN", i)
		}
	}
}

func TestInventoryStrainDecreasesWithHeadroom(t *testing.T) {
	candidates := []domain.Candidate{
		{Warehouse: "A", Vehicle: "Truck", InventoryHeadroom: 10},
		{Warehouse: "B", Vehicle: "Truck", InventoryHeadroom: 50},
		{Warehouse: "C", Vehicle: "Truck", InventoryHeadroom: 90},
	}

	scored := ScoreCandidates(candidates)
	if !(scored[0].InventoryN > scored[1].InventoryN && scored[1].InventoryN > scored[2].InventoryN) {
		t.Fatalf(
			"inventory strain must decrease with headroom: %v, %v, %v",
			scored[0].InventoryN, scored[1].InventoryN, scored[2].InventoryN,
		)
	}
}

func TestDelayRiskSumsBeforeNormalizing(t *testing.T) {
	// Traffic and weather offset each other exactly, so the summed
	// delay feature is constant and normalizes to zero everywhere.
	candidates := []domain.Candidate{
		{Warehouse: "A", Vehicle: "Truck", TrafficDelayMinutes: 30, WeatherImpact: 0},
		{Warehouse: "B", Vehicle: "Van", TrafficDelayMinutes: 26, WeatherImpact: 4},
	}

	scored := ScoreCandidates(candidates)
	for i, s := range scored {
		if s.DelayRisk != 0 {
			t.Errorf("scored[%d].DelayRisk = %v, want 0 for constant traffic+weather sum", i, s.DelayRisk)
		}
	}
}

func TestBestSelectsMinimum(t *testing.T) {
	candidates := []domain.Candidate{
		{Warehouse: "A", Vehicle: "Truck", Cost: 900, CO2Kg: 120, InventoryHeadroom: 10},
		{Warehouse: "B", Vehicle: "EV", Cost: 400, CO2Kg: 15, InventoryHeadroom: 90},
		{Warehouse: "C", Vehicle: "Van", Cost: 700, CO2Kg: 75, InventoryHeadroom: 50},
	}

	scored := ScoreCandidates(candidates)
	best := Best(scored)
	if best != 1 {
		t.Fatalf("Best = %d, want 1", best)
	}

	for i, s := range scored {
		if s.FulfillmentScore < scored[best].FulfillmentScore {
			t.Errorf("scored[%d] = %v beats selected %v", i, s.FulfillmentScore, scored[best].FulfillmentScore)
		}
	}
}

func TestBestTieKeepsFirstOccurrence(t *testing.T) {
	// Identical candidates normalize to identical (all-zero) features.
	c := domain.Candidate{Warehouse: "A", Vehicle: "Truck", Cost: 600, InventoryHeadroom: 40}
	scored := ScoreCandidates([]domain.Candidate{c, c, c})

	if best := Best(scored); best != 0 {
		t.Fatalf("Best = %d, want 0 (first occurrence wins ties)", best)
	}
}

func TestBestEmpty(t *testing.T) {
	if best := Best(nil); best != -1 {
		t.Fatalf("Best(nil) = %d, want -1", best)
	}
}
