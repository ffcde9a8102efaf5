package store

//go:generate go run vanilla/cmd/vanilla-gen -config vanilla.yaml

// CustomerDraft is a customer as submitted by the signup form.
//
//vanilla:validatedas vanilla/warehouse.Customer
type CustomerDraft struct {
	Email    string
	FullName string `vanilla:"Name"`
	Address  *string
	Age      string // parsed into years
	Referrer string `vanilla:"-"`
}

// OrderDraft is an order before checkout validation.
//
//vanilla:validatedas vanilla/warehouse.Order
type OrderDraft struct {
	ID     string `json:"id" vanilla:"Number"`
	Status string
	Items  []OrderItemDraft
	Notes  *string `vanilla:"Note"`
}

// OrderItemDraft is a single cart line. Its pairing is declared in
// vanilla.yaml rather than by a directive.
type OrderItemDraft struct {
	SKU string
	Qty string
}
