package domain

// Weather impact ordinal scale. Zero means unknown or no recorded impact.
const (
	WeatherNone   = 0
	WeatherLow    = 1
	WeatherMedium = 2
	WeatherHigh   = 3
	WeatherSevere = 4
)

// A route row as it appears in the source table, before enrichment
// maps the qualitative weather label and joins delivery-performance
// and cost data onto it.
type RouteRecord struct {
	OrderID             string
	Label               string
	DistanceKM          float64
	TrafficDelayMinutes float64
	WeatherLabel        string
}

// Represents one row of the enriched route view: the raw route record
// joined (by order id) with its delivery-performance and cost records.
// All numeric fields are non-negative after coercion; values that could
// not be parsed or matched during enrichment are zero.
type Route struct {
	OrderID              string
	Label                string
	DistanceKM           float64
	TrafficDelayMinutes  float64
	WeatherImpact        float64
	DeliveryStatus       string
	PromisedDeliveryDays float64
	ActualDeliveryDays   float64
	DeliveryCost         float64
	TotalCost            float64
}

// Per-order cost components rolled up into a single total.
type CostRecord struct {
	OrderID   string
	TotalCost float64
}

// Delivery performance record for one order.
type DeliveryRecord struct {
	OrderID      string
	Status       string
	PromisedDays float64
	ActualDays   float64
	Cost         float64
}
