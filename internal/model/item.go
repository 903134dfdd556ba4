package model

// Item is one entry on the packing list.
// ID is assigned once at creation and never changes.
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Packed      bool   `json:"packed"`
}

// DefaultQuantity is used when no positive quantity was given.
const DefaultQuantity = 1

// Normalize returns a copy with a positive quantity.
func (it Item) Normalize() Item {
	if it.Quantity < 1 {
		it.Quantity = DefaultQuantity
	}
	return it
}
