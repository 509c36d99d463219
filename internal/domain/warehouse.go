package domain

// Stock position of one product category at one warehouse location.
type WarehouseStock struct {
	Location          string
	ProductCategory   string
	CurrentStockUnits int
	ReorderLevel      int
}

// Units available above the reorder level.
func (w WarehouseStock) Headroom() int {
	return w.CurrentStockUnits - w.ReorderLevel
}

// Report whether this warehouse can fulfill an order for the given
// product category. A warehouse sitting at or below its reorder level
// is excluded even when the category matches.
func (w WarehouseStock) CanFulfill(productCategory string) bool {
	return w.ProductCategory == productCategory && w.CurrentStockUnits > w.ReorderLevel
}
