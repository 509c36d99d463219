package domain

// Represents one (warehouse, vehicle) fulfillment option for a single
// request. The route metrics are aggregates (means over all routes
// matching the requested destination), so within one request they are
// identical across candidates; only warehouse- and vehicle-specific
// fields differentiate candidates. Candidates live for the duration of
// one scoring request and are never persisted.
type Candidate struct {
	Warehouse           string
	Vehicle             string
	DistanceKM          float64
	TrafficDelayMinutes float64
	WeatherImpact       float64
	FuelEfficiency      float64
	CO2Kg               float64
	Cost                float64
	InventoryHeadroom   float64
}

// A Candidate with its normalized feature values and composite score.
// Every normalized feature lies in [0, 1]; the score is a convex
// combination of the features, so it does too. Lower is better.
type ScoredCandidate struct {
	Candidate
	CostN            float64
	DelayRisk        float64
	DistanceN        float64
	CO2N             float64
	InventoryN       float64
	FulfillmentScore float64
}
