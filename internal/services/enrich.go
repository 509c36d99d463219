package services

import (
	"fulfillment-advisor-service/internal/domain"
	"sort"
	"strings"
)

// Ordinal mapping for qualitative weather labels. Labels outside the
// scale (including empty and "unknown") map to domain.WeatherNone.
var weatherOrdinals = map[string]float64{
	"low":    domain.WeatherLow,
	"medium": domain.WeatherMedium,
	"high":   domain.WeatherHigh,
	"severe": domain.WeatherSevere,
}

// WeatherOrdinal maps a raw weather-impact label to its ordinal
// severity, case-insensitively.
func WeatherOrdinal(label string) float64 {
	return weatherOrdinals[strings.ToLower(strings.TrimSpace(label))]
}

// EnrichRoutes builds the route-cost-risk view consumed by the
// candidate generator: each raw route record is left-joined with its
// delivery-performance and cost records by order id.
//
// Routes without a cost match receive the median of the matched
// totals, computed before any filling. Routes without a delivery
// match keep zero-valued performance fields. The function is pure;
// it runs once per process lifetime at load time.
func EnrichRoutes(
	routes []domain.RouteRecord,
	deliveries []domain.DeliveryRecord,
	costs []domain.CostRecord,
) []domain.Route {
	deliveryByOrder := make(map[string]domain.DeliveryRecord, len(deliveries))
	for _, d := range deliveries {
		deliveryByOrder[d.OrderID] = d
	}

	costByOrder := make(map[string]domain.CostRecord, len(costs))
	for _, c := range costs {
		costByOrder[c.OrderID] = c
	}

	enriched := make([]domain.Route, 0, len(routes))
	matchedTotals := make([]float64, 0, len(routes))
	unmatched := make([]int, 0)

	for i, r := range routes {
		row := domain.Route{
			OrderID:             r.OrderID,
			Label:               r.Label,
			DistanceKM:          r.DistanceKM,
			TrafficDelayMinutes: r.TrafficDelayMinutes,
			WeatherImpact:       WeatherOrdinal(r.WeatherLabel),
		}

		if d, ok := deliveryByOrder[r.OrderID]; ok {
			row.DeliveryStatus = d.Status
			row.PromisedDeliveryDays = d.PromisedDays
			row.ActualDeliveryDays = d.ActualDays
			row.DeliveryCost = d.Cost
		}

		if c, ok := costByOrder[r.OrderID]; ok {
			row.TotalCost = c.TotalCost
			matchedTotals = append(matchedTotals, c.TotalCost)
		} else {
			unmatched = append(unmatched, i)
		}

		enriched = append(enriched, row)
	}

	// Impute with the median computed over matched rows only.
	fallback := median(matchedTotals)
	for _, i := range unmatched {
		enriched[i].TotalCost = fallback
	}

	return enriched
}

// median of vs; zero when vs is empty. Even counts average the two
// middle values.
func median(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
