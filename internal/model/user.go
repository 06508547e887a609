package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the account role enum.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CartItem is a weak reference to a product plus a quantity. The
// referenced product may be deleted independently; readers must
// tolerate references that no longer resolve.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// User represents an account. Wishlist and cart are embedded on the
// user document and store product references only, never copies.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Role      Role                 `bson:"role" json:"role"`
	NewUser   bool                 `bson:"newUser" json:"newUser"`
	Wishlist  []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	Cart      []CartItem           `bson:"cart" json:"cart"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// WishlistEntry is the denormalized read view of one wishlist
// reference, carrying the product's current fields.
type WishlistEntry struct {
	ProductID primitive.ObjectID `json:"productId"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Image     string             `json:"image"`
	Rating    *float64           `json:"rating,omitempty"`
}

// CartEntry is the denormalized read view of one cart item.
type CartEntry struct {
	ProductID primitive.ObjectID `json:"productId"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
	Image     string             `json:"image"`
	Rating    *float64           `json:"rating,omitempty"`
	Quantity  int                `json:"quantity"`
}
