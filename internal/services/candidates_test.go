package services

import (
	"errors"
	"fulfillment-advisor-service/internal/domain"
	"math"
	"testing"
)

func testWarehouses() []domain.WarehouseStock {
	return []domain.WarehouseStock{
		{Location: "Mumbai", ProductCategory: "Electronics", CurrentStockUnits: 120, ReorderLevel: 40},
		{Location: "Delhi", ProductCategory: "Electronics", CurrentStockUnits: 90, ReorderLevel: 50},
		{Location: "Chennai", ProductCategory: "Furniture", CurrentStockUnits: 200, ReorderLevel: 30},
		// Matching category but no headroom: must be excluded.
		{Location: "Kolkata", ProductCategory: "Electronics", CurrentStockUnits: 25, ReorderLevel: 25},
	}
}

func testFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{Type: "Truck", FuelEfficiencyKMPerL: 10, CO2KgPerKM: 0.8},
		{Type: "Van", FuelEfficiencyKMPerL: 15, CO2KgPerKM: 0.5},
		{Type: "EV", FuelEfficiencyKMPerL: 12, CO2KgPerKM: 0.1},
	}
}

func testRoutes() []domain.Route {
	return []domain.Route{
		{OrderID: "ORD-1", Label: "Mumbai-Pune", DistanceKM: 100, TrafficDelayMinutes: 30, WeatherImpact: 4, TotalCost: 500},
		{OrderID: "ORD-2", Label: "Delhi-Mumbai", DistanceKM: 200, TrafficDelayMinutes: 10, WeatherImpact: 2, TotalCost: 700},
		{OrderID: "ORD-3", Label: "Delhi-Jaipur", DistanceKM: 300, TrafficDelayMinutes: 60, WeatherImpact: 1, TotalCost: 900},
		{OrderID: "ORD-4", Label: "", DistanceKM: 50, TrafficDelayMinutes: 5, WeatherImpact: 0, TotalCost: 100},
	}
}

func TestBuildCandidatesCrossProduct(t *testing.T) {
	req := CandidateRequest{ProductCategory: "Electronics", Destination: "Mumbai", Priority: "Standard"}

	candidates, err := BuildCandidates(req, testWarehouses(), testFleet(), testRoutes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 eligible warehouses x 3 fleet vehicles.
	if len(candidates) != 6 {
		t.Fatalf("candidate count = %d, want 6", len(candidates))
	}

	// Route aggregates are means over the two Mumbai routes and must be
	// identical across candidates.
	const (
		wantDistance = 150.0
		wantTraffic  = 20.0
		wantWeather  = 3.0
		wantCost     = 600.0
	)
	for i, c := range candidates {
		if c.DistanceKM != wantDistance {
			t.Errorf("candidates[%d].DistanceKM = %v, want %v", i, c.DistanceKM, wantDistance)
		}
		if c.TrafficDelayMinutes != wantTraffic {
			t.Errorf("candidates[%d].TrafficDelayMinutes = %v, want %v", i, c.TrafficDelayMinutes, wantTraffic)
		}
		if c.WeatherImpact != wantWeather {
			t.Errorf("candidates[%d].WeatherImpact = %v, want %v", i, c.WeatherImpact, wantWeather)
		}
		if c.Cost != wantCost {
			t.Errorf("candidates[%d].Cost = %v, want %v", i, c.Cost, wantCost)
		}
	}

	// Generation order: warehouses outer, vehicles inner.
	if candidates[0].Warehouse != "Mumbai" || candidates[0].Vehicle != "Truck" {
		t.Errorf("candidates[0] = %s/%s, want Mumbai/Truck", candidates[0].Warehouse, candidates[0].Vehicle)
	}
	if candidates[3].Warehouse != "Delhi" || candidates[3].Vehicle != "Truck" {
		t.Errorf("candidates[3] = %s/%s, want Delhi/Truck", candidates[3].Warehouse, candidates[3].Vehicle)
	}

	// Vehicle-specific CO2 and warehouse-specific headroom.
	if got, want := candidates[0].CO2Kg, 0.8*wantDistance; math.Abs(got-want) > 1e-9 {
		t.Errorf("candidates[0].CO2Kg = %v, want %v", got, want)
	}
	if got := candidates[0].InventoryHeadroom; got != 80 {
		t.Errorf("candidates[0].InventoryHeadroom = %v, want 80", got)
	}
	if got := candidates[3].InventoryHeadroom; got != 40 {
		t.Errorf("candidates[3].InventoryHeadroom = %v, want 40", got)
	}
}

func TestBuildCandidatesDestinationCaseInsensitive(t *testing.T) {
	req := CandidateRequest{ProductCategory: "Electronics", Destination: "mUmBaI"}

	candidates, err := BuildCandidates(req, testWarehouses(), testFleet(), testRoutes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 6 {
		t.Fatalf("candidate count = %d, want 6", len(candidates))
	}
}

func TestBuildCandidatesNoInventory(t *testing.T) {
	req := CandidateRequest{ProductCategory: "Groceries", Destination: "Mumbai"}

	candidates, err := BuildCandidates(req, testWarehouses(), testFleet(), testRoutes())
	if !errors.Is(err, ErrNoInventory) {
		t.Fatalf("err = %v, want ErrNoInventory", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("candidate count = %d, want 0", len(candidates))
	}
}

func TestBuildCandidatesNoRoute(t *testing.T) {
	req := CandidateRequest{ProductCategory: "Electronics", Destination: "Hyderabad"}

	candidates, err := BuildCandidates(req, testWarehouses(), testFleet(), testRoutes())
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("err = %v, want ErrNoRoute", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("candidate count = %d, want 0", len(candidates))
	}
}
