package domain

// CartLine is one product entry plus quantity within an active cart.
// Lines live only in session state; they are persisted solely as order
// item snapshots.
type CartLine struct {
	ProductID  string  `bson:"productId" json:"productId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Image      string  `bson:"image" json:"image"`
	BusinessID string  `bson:"businessId" json:"businessId"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
