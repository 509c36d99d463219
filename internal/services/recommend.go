package services

import (
	"context"
	"fmt"
	"fulfillment-advisor-service/internal/domain"
	"fulfillment-advisor-service/internal/ports"
	"sort"
)

// The outcome of one scoring request: the full scored option table
// (ascending by score) plus the selected best option. Both are derived
// values local to the request; nothing is shared across requests.
type Recommendation struct {
	Best    domain.ScoredCandidate
	Options []domain.ScoredCandidate
}

// Recommend runs the full candidate generation and scoring pipeline
// for one request against the loaded catalogs.
//
// ErrNoInventory and ErrNoRoute pass through wrapped so the caller
// can distinguish empty-result conditions from repository failures.
func Recommend(
	ctx context.Context,
	req CandidateRequest,
	warehouses ports.WarehouseRepository,
	fleet ports.FleetRepository,
	routes ports.RouteRepository,
) (*Recommendation, error) {
	stock, err := warehouses.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommend: list warehouses: %w", err)
	}

	vehicles, err := fleet.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommend: list vehicles: %w", err)
	}

	routeRows, err := routes.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommend: list routes: %w", err)
	}

	candidates, err := BuildCandidates(req, stock, vehicles, routeRows)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	scored := ScoreCandidates(candidates)

	// Stable sort preserves generation order among equal scores, so the
	// first row is the first occurrence of the minimum.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FulfillmentScore < scored[j].FulfillmentScore
	})

	return &Recommendation{
		Best:    scored[0],
		Options: scored,
	}, nil
}
