package services

import (
	"fulfillment-advisor-service/internal/domain"
	"testing"
)

func TestWeatherOrdinal(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"low", 1},
		{"medium", 2},
		{"high", 3},
		{"severe", 4},
		{"Severe", 4},
		{"  HIGH  ", 3},
		{"unknown", 0},
		{"", 0},
		{"nan", 0},
	}

	for _, tt := range tests {
		if got := WeatherOrdinal(tt.label); got != tt.want {
			t.Errorf("WeatherOrdinal(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestEnrichRoutesJoin(t *testing.T) {
	routes := []domain.RouteRecord{
		{OrderID: "ORD-1", Label: "Mumbai-Pune", DistanceKM: 120, TrafficDelayMinutes: 15, WeatherLabel: "Severe"},
		{OrderID: "ORD-2", Label: "Delhi-Jaipur", DistanceKM: 260, TrafficDelayMinutes: 45, WeatherLabel: "low"},
		{OrderID: "ORD-3", Label: "Chennai-Bangalore", DistanceKM: 340, TrafficDelayMinutes: 0, WeatherLabel: "unknown"},
	}
	deliveries := []domain.DeliveryRecord{
		{OrderID: "ORD-1", Status: "Delayed", PromisedDays: 3, ActualDays: 5, Cost: 120},
	}
	costs := []domain.CostRecord{
		{OrderID: "ORD-1", TotalCost: 500},
		{OrderID: "ORD-2", TotalCost: 700},
	}

	enriched := EnrichRoutes(routes, deliveries, costs)
	if len(enriched) != 3 {
		t.Fatalf("len = %d, want 3", len(enriched))
	}

	// Matched delivery and cost.
	first := enriched[0]
	if first.WeatherImpact != 4 {
		t.Errorf("WeatherImpact = %v, want 4 for Severe", first.WeatherImpact)
	}
	if first.DeliveryStatus != "Delayed" || first.PromisedDeliveryDays != 3 || first.ActualDeliveryDays != 5 || first.DeliveryCost != 120 {
		t.Errorf("delivery fields not joined: %+v", first)
	}
	if first.TotalCost != 500 {
		t.Errorf("TotalCost = %v, want 500", first.TotalCost)
	}

	// Matched cost, unmatched delivery: performance fields stay zero.
	second := enriched[1]
	if second.DeliveryStatus != "" || second.PromisedDeliveryDays != 0 || second.ActualDeliveryDays != 0 || second.DeliveryCost != 0 {
		t.Errorf("unmatched delivery fields should be zero: %+v", second)
	}
	if second.TotalCost != 700 {
		t.Errorf("TotalCost = %v, want 700", second.TotalCost)
	}

	// Unmatched cost: imputed with the median of matched totals
	// (mean of the two middle values for an even count).
	third := enriched[2]
	if third.TotalCost != 600 {
		t.Errorf("imputed TotalCost = %v, want 600", third.TotalCost)
	}
	if third.WeatherImpact != 0 {
		t.Errorf("WeatherImpact = %v, want 0 for unknown label", third.WeatherImpact)
	}
}

func TestEnrichRoutesMedianOddCount(t *testing.T) {
	routes := []domain.RouteRecord{
		{OrderID: "ORD-1", Label: "A"},
		{OrderID: "ORD-2", Label: "B"},
		{OrderID: "ORD-3", Label: "C"},
		{OrderID: "ORD-4", Label: "D"},
	}
	costs := []domain.CostRecord{
		{OrderID: "ORD-1", TotalCost: 900},
		{OrderID: "ORD-2", TotalCost: 100},
		{OrderID: "ORD-3", TotalCost: 200},
	}

	enriched := EnrichRoutes(routes, nil, costs)
	if got := enriched[3].TotalCost; got != 200 {
		t.Fatalf("imputed TotalCost = %v, want 200 (median of 100, 200, 900)", got)
	}
}

func TestEnrichRoutesNoMatchedCosts(t *testing.T) {
	routes := []domain.RouteRecord{{OrderID: "ORD-1", Label: "A"}}

	enriched := EnrichRoutes(routes, nil, nil)
	if got := enriched[0].TotalCost; got != 0 {
		t.Fatalf("TotalCost = %v, want 0 when no costs matched anywhere", got)
	}
}
