package domain

// OrderStatusConfirmed is the status stored with every recorded order.
const OrderStatusConfirmed = "confirmed"

// CustomerInfo is the checkout form. Email is optional.
type CustomerInfo struct {
	Customer string `json:"customer"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Qty       int   `json:"qty"`
}

// OrderRequest is the payload posted to the commerce API.
type OrderRequest struct {
	Order   CustomerInfo `json:"order"`
	Details []OrderLine  `json:"details"`
}

// OrderRecord is an entry of the visitor's order-history log.
type OrderRecord struct {
	OrderRequest
	ID     string `json:"id"`
	Total  int64  `json:"total"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// NewOrderRequest builds the API payload from the form and the cart lines.
func NewOrderRequest(info CustomerInfo, items []CartItem) OrderRequest {
	details := make([]OrderLine, len(items))
	for i, item := range items {
		details[i] = OrderLine{ProductID: item.ID, Qty: item.Quantity}
	}
	return OrderRequest{Order: info, Details: details}
}
