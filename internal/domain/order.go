package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Order is an immutable snapshot of the cart at submission time. Total is
// computed once at creation and never recomputed from the stored items.
type Order struct {
	ID            string      `bson:"_id,omitempty" json:"id"`
	CustomerID    string      `bson:"customerId" json:"customerId"`
	CustomerEmail string      `bson:"customerEmail" json:"customerEmail"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	Status        OrderStatus `bson:"status" json:"status"`
	BusinessIDs   []string    `bson:"businessIds" json:"businessIds"`
	Items         []CartLine  `bson:"items" json:"items"`
	Total         float64     `bson:"total" json:"total"`
	Address       Address     `bson:"address" json:"address"`
}
