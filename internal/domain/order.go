package domain

// Represents a historical customer order.
// Orders are catalog data: they feed the simulator's product/destination
// choices but are never mutated by a recommendation request.
type Order struct {
	OrderID         string
	ProductCategory string
	Destination     string
	Priority        string
}

// Delivery priority levels accepted from the user.
// Priority is captured with the request but does not participate in
// scoring; it is kept as an input for a future weighting extension.
var PriorityLevels = []string{"Express", "Standard", "Economy"}

// Report whether p is one of the accepted priority levels.
func ValidPriority(p string) bool {
	for _, level := range PriorityLevels {
		if p == level {
			return true
		}
	}
	return false
}
