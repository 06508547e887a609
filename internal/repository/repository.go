package repository

import (
	"context"

	"stylekart/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	// Insert stores a new product and fills in its generated ID.
	Insert(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when the product does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)

	// GetByIDs retrieves the products whose IDs appear in ids. Missing
	// IDs are simply absent from the result; no error is raised.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error)

	// List retrieves products matching the conjunction of the provided
	// filter predicates. Absent predicates impose no constraint.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// Replace overwrites an existing product document.
	Replace(ctx context.Context, product *model.Product) error

	// Delete removes a product unconditionally. References held by
	// carts, wishlists and orders are not checked.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for account data access.
// Wishlist and cart are embedded arrays on the user document.
type UserRepository interface {
	// Insert stores a new user. Returns model.ErrEmailTaken when the
	// email is already registered.
	Insert(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns (nil, nil) when
	// the user does not exist.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateName overwrites the user's display name.
	UpdateName(ctx context.Context, email, name string) error

	// ClearNewUserFlag clears the one-time first-login flag.
	ClearNewUserFlag(ctx context.Context, email string) error

	// UpdateWishlist overwrites the user's stored wishlist references.
	UpdateWishlist(ctx context.Context, email string, wishlist []primitive.ObjectID) error

	// UpdateCart overwrites the user's stored cart items.
	UpdateCart(ctx context.Context, email string, cart []model.CartItem) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Insert stores a new order and fills in its generated ID.
	Insert(ctx context.Context, order *model.Order) error

	// List retrieves all orders newest-first.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus overwrites the status of an order and returns the
	// updated document. Returns model.ErrOrderNotFound when absent.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) (*model.Order, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// TotalRevenue returns the sum of totalAmount across all orders,
	// zero when no orders exist.
	TotalRevenue(ctx context.Context) (float64, error)
}

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	// GetByEmail retrieves a profile by email. Returns (nil, nil) when
	// the profile does not exist.
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)

	// Upsert creates or overwrites the profile keyed by its email.
	Upsert(ctx context.Context, profile *model.Profile) error
}
