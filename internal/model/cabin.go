package model

// Cabin mirrors the `cabins` table.  Cabins are managed by a separate
// staff-facing application; this service only reads them to render the
// public cabin views.
type Cabin struct {
	ID           int64   // cabins.id
	Name         string  // cabins.name
	MaxCapacity  int     // cabins.max_capacity
	RegularPrice float64 // cabins.regular_price
	Discount     float64 // cabins.discount
	Description  string  // cabins.description
	Image        string  // cabins.image
}
