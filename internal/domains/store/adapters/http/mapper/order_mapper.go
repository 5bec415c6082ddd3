package mapper

// OrderPlacedMessage is returned to callers after a successful insert.
const OrderPlacedMessage = "Order placed successfully"

// OrderPlaced is the success body of the order endpoint.
type OrderPlaced struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewOrderPlaced builds the fixed success response.
func NewOrderPlaced() OrderPlaced {
	return OrderPlaced{Success: true, Message: OrderPlacedMessage}
}
