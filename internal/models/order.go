package models

// OrderStatus is the fulfilment state shown in the admin order list
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "결제완료"
	OrderStatusShipping  OrderStatus = "배송중"
	OrderStatusDelivered OrderStatus = "배송완료"
)

// Valid reports whether s is one of the three known statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusShipping, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is a read-only demo order listed in the admin console
type Order struct {
	ID       string      `json:"id" yaml:"id"`
	Customer string      `json:"customer" yaml:"customer"`
	Items    string      `json:"items" yaml:"items"`
	Total    int64       `json:"total" yaml:"total"`
	Status   OrderStatus `json:"status" yaml:"status"`
	Date     string      `json:"date" yaml:"date"`
}

// CartItem pairs a product with a positive quantity
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// CheckoutReceipt is returned when a cart is checked out
type CheckoutReceipt struct {
	ID        string `json:"id"`
	ItemCount int    `json:"itemCount"`
	Total     int64  `json:"total"`
	Message   string `json:"message"`
}
