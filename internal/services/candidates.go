package services

import (
	"errors"
	"fmt"
	"fulfillment-advisor-service/internal/domain"
	"strings"
)

// Recoverable empty-result conditions. Both end the current request
// with zero candidates; neither is retried.
var (
	ErrNoInventory = errors.New("no warehouse has sufficient stock for this product")
	ErrNoRoute     = errors.New("no matching route found for destination")
)

// CandidateRequest carries the user's selections for one scoring run.
// Priority is accepted but does not influence candidate generation or
// scoring.
type CandidateRequest struct {
	ProductCategory string
	Destination     string
	Priority        string
}

// BuildCandidates enumerates every (eligible warehouse, fleet vehicle)
// pair for the request.
//
// Route metrics are aggregated as arithmetic means over all routes
// whose label contains the destination substring, and the single
// aggregate profile is applied uniformly to every candidate. This
// keeps the combinatorics bounded to |warehouses| x |vehicles| and
// keeps route choice out of the warehouse/vehicle decision.
func BuildCandidates(
	req CandidateRequest,
	warehouses []domain.WarehouseStock,
	fleet []domain.Vehicle,
	routes []domain.Route,
) ([]domain.Candidate, error) {
	eligible := make([]domain.WarehouseStock, 0, len(warehouses))
	for _, w := range warehouses {
		if w.CanFulfill(req.ProductCategory) {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("build candidates: product %q: %w", req.ProductCategory, ErrNoInventory)
	}

	dest := strings.ToLower(req.Destination)
	matching := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		if r.Label == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.Label), dest) {
			matching = append(matching, r)
		}
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("build candidates: destination %q: %w", req.Destination, ErrNoRoute)
	}

	var sumDistance, sumTraffic, sumWeather, sumCost float64
	for _, r := range matching {
		sumDistance += r.DistanceKM
		sumTraffic += r.TrafficDelayMinutes
		sumWeather += r.WeatherImpact
		sumCost += r.TotalCost
	}
	n := float64(len(matching))
	avgDistance := sumDistance / n
	avgTraffic := sumTraffic / n
	avgWeather := sumWeather / n
	avgCost := sumCost / n

	candidates := make([]domain.Candidate, 0, len(eligible)*len(fleet))
	for _, w := range eligible {
		for _, v := range fleet {
			candidates = append(candidates, domain.Candidate{
				Warehouse:           w.Location,
				Vehicle:             v.Type,
				DistanceKM:          avgDistance,
				TrafficDelayMinutes: avgTraffic,
				WeatherImpact:       avgWeather,
				FuelEfficiency:      v.FuelEfficiencyKMPerL,
				CO2Kg:               v.CO2KgPerKM * avgDistance,
				Cost:                avgCost,
				InventoryHeadroom:   float64(w.Headroom()),
			})
		}
	}

	return candidates, nil
}
