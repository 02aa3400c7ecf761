package domain

// CartItem is one line of a visitor's cart. Price is in GNF minor units.
type CartItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Photo    string `json:"photo"`
	Quantity int    `json:"quantity"`
}

// Subtotal returns price * quantity.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
