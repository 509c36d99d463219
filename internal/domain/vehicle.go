package domain

// A vehicle class in the delivery fleet.
type Vehicle struct {
	Type                 string
	FuelEfficiencyKMPerL float64
	CO2KgPerKM           float64
}
