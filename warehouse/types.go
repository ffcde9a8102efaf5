package warehouse

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		return true
	default:
		return false
	}
}

// Customer is a customer whose signup data passed validation.
type Customer struct {
	Email   string
	Name    string
	Address string
	Age     int

	createdBy string // set by the service layer only
}

// CreatedBy returns the actor that created the customer.
func (c Customer) CreatedBy() string {
	return c.createdBy
}

// Order is a validated order.
type Order struct {
	Number string
	Status Status
	Items  []OrderItem
	Note   string
	// TotalCents is computed after validation.
	TotalCents int64
}

// OrderItem is a validated order line.
type OrderItem struct {
	SKU      string
	Quantity int
}
