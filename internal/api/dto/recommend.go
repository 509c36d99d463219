package dto

type RecommendRequest struct {
	ProductCategory string `json:"product_category"`
	Destination     string `json:"destination"`
	Priority        string `json:"priority"`
}

// One scored fulfillment option: raw candidate fields plus the
// normalized feature columns and composite score.
type OptionResponse struct {
	Warehouse           string  `json:"warehouse"`
	Vehicle             string  `json:"vehicle"`
	DistanceKM          float64 `json:"distance_km"`
	TrafficDelayMinutes float64 `json:"traffic_delay_minutes"`
	WeatherImpact       float64 `json:"weather_impact"`
	FuelEfficiency      float64 `json:"fuel_efficiency"`
	CO2Kg               float64 `json:"co2"`
	Cost                float64 `json:"cost"`
	InventoryHeadroom   float64 `json:"inventory_headroom"`
	CostN               float64 `json:"cost_n"`
	DelayRisk           float64 `json:"delay_risk"`
	DistanceN           float64 `json:"distance_n"`
	CO2N                float64 `json:"co2_n"`
	InventoryN          float64 `json:"inventory_n"`
	FulfillmentScore    float64 `json:"fulfillment_score"`
}

type RecommendResponse struct {
	Best    OptionResponse   `json:"best"`
	Options []OptionResponse `json:"options"`
}
