package domain

// ProductStatusStock marks a product that can be added to the cart.
const ProductStatusStock = "STOCK"

type Product struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description *string `json:"description"`
	Photo       string  `json:"photo"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	DeletedAt   *string `json:"deleted_at"`
}

func (p Product) InStock() bool {
	return p.Status == ProductStatusStock
}

// CartItem converts the product into a cart line with the given quantity.
func (p Product) CartItem(quantity int) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Photo:    p.Photo,
		Quantity: quantity,
	}
}
