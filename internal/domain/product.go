package domain

import "time"

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Image       string    `bson:"image" json:"image"`
	Category    string    `bson:"category" json:"category"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type Category struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}
