package dto

// Distinct values the order simulator can choose from.
type CatalogOptionsResponse struct {
	ProductCategories []string `json:"product_categories"`
	Destinations      []string `json:"destinations"`
	Priorities        []string `json:"priorities"`
}
