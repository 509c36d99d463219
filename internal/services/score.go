package services

import "fulfillment-advisor-service/internal/domain"

// Fixed criteria weights. They sum to 1.0, making the composite score
// a convex combination of the normalized features.
const (
	WeightCost      = 0.35
	WeightDelayRisk = 0.25
	WeightDistance  = 0.20
	WeightCO2       = 0.10
	WeightInventory = 0.10
)

// Guards the min-max denominator when every value in a feature column
// is equal; such columns normalize to all zeros instead of dividing
// by zero.
const normalizeEpsilon = 1e-6

// Normalize rescales values to [0, 1] by min-max over the slice.
// A constant (or single-element) slice yields all zeros.
func Normalize(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(values))
	span := hi - lo + normalizeEpsilon
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}

// ScoreCandidates normalizes each feature column over the candidate
// set and computes the weighted composite fulfillment score per
// candidate. Results are returned in generation order; lower score is
// better.
//
// Traffic delay and weather impact are summed before normalization so
// that one delay-risk feature captures both, rather than normalizing
// each and weighting them separately.
func ScoreCandidates(candidates []domain.Candidate) []domain.ScoredCandidate {
	n := len(candidates)
	if n == 0 {
		return nil
	}

	costs := make([]float64, n)
	delays := make([]float64, n)
	distances := make([]float64, n)
	emissions := make([]float64, n)
	headrooms := make([]float64, n)
	for i, c := range candidates {
		costs[i] = c.Cost
		delays[i] = c.TrafficDelayMinutes + c.WeatherImpact
		distances[i] = c.DistanceKM
		emissions[i] = c.CO2Kg
		headrooms[i] = c.InventoryHeadroom
	}

	costN := Normalize(costs)
	delayRisk := Normalize(delays)
	distanceN := Normalize(distances)
	co2N := Normalize(emissions)
	headroomN := Normalize(headrooms)

	scored := make([]domain.ScoredCandidate, n)
	for i, c := range candidates {
		// Higher headroom means lower inventory strain.
		inventoryN := 1 - headroomN[i]

		scored[i] = domain.ScoredCandidate{
			Candidate:  c,
			CostN:      costN[i],
			DelayRisk:  delayRisk[i],
			DistanceN:  distanceN[i],
			CO2N:       co2N[i],
			InventoryN: inventoryN,
			FulfillmentScore: WeightCost*costN[i] +
				WeightDelayRisk*delayRisk[i] +
				WeightDistance*distanceN[i] +
				WeightCO2*co2N[i] +
				WeightInventory*inventoryN,
		}
	}

	return scored
}

// Best returns the index of the minimal-score candidate. Ties keep
// the earliest candidate in generation order.
func Best(scored []domain.ScoredCandidate) int {
	if len(scored) == 0 {
		return -1
	}

	best := 0
	for i, s := range scored[1:] {
		if s.FulfillmentScore < scored[best].FulfillmentScore {
			best = i + 1
		}
	}
	return best
}
