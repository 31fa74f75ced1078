package domain

const (
	RoleCustomer = "customer"
	RoleBusiness = "business"
	RoleAdmin    = "admin"
)

// Address is copied by value into orders at checkout time.
type Address struct {
	Label      string `bson:"label" json:"label"`
	Address    string `bson:"address" json:"address"`
	District   string `bson:"district" json:"district"`
	Department string `bson:"department" json:"department"`
}

type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Addresses []Address `bson:"addresses,omitempty" json:"addresses,omitempty"`
}

// Identity is the authenticated principal supplied by the fronting
// identity provider. It is treated as an opaque read-only input.
type Identity struct {
	UID   string
	Email string
	Role  string
}
