package request

// CheckoutRequest represents the checkout form. Field-level rules are
// enforced in the service so the client gets per-field errors.
type CheckoutRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	PaymentMethod string   `json:"paymentMethod"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrdersQuery represents back-office order listing query parameters
type ListOrdersQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Search    string `form:"search"`
}
