package service

import (
	"context"

	"stylekart/internal/model"
)

// CatalogService defines operations on the product catalog.
type CatalogService interface {
	// Create stores a new product after validating its fields.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Get retrieves a single product by its hex ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// List retrieves products matching the conjunction of the provided
	// filter predicates.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// Update merges the provided fields into an existing product.
	Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)

	// Delete removes a product unconditionally. Carts and wishlists
	// referencing it are left holding dangling references.
	Delete(ctx context.Context, id string) error
}

// SignupInput carries the signup request fields.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            model.Role
}

// IdentityService defines account, wishlist and cart operations.
// The wishlist/cart read methods implement the reconciliation layer:
// stored references are resolved against the live catalog, dangling
// ones dropped, and any store fault degrades to an empty result.
type IdentityService interface {
	// Signup registers a new account, storing only a password hash.
	Signup(ctx context.Context, input SignupInput) (*model.User, error)

	// Login authenticates a user. The returned bool reports whether
	// this was the first successful login.
	Login(ctx context.Context, email, password string, role model.Role) (*model.User, bool, error)

	// AddToWishlist inserts a product reference, deduplicating, and
	// returns the reconciled wishlist.
	AddToWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error)

	// RemoveFromWishlist removes a product reference. Removing a
	// non-member reference is a no-op returning the current wishlist.
	RemoveFromWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error)

	// GetWishlist returns the reconciled wishlist. Never fails: any
	// fault yields an empty slice.
	GetWishlist(ctx context.Context, email string) []model.WishlistEntry

	// AddToCart increments the quantity of an existing entry or
	// appends a new one, and returns the reconciled cart.
	AddToCart(ctx context.Context, email, productID string, quantity int) ([]model.CartEntry, error)

	// RemoveFromCart removes a cart entry. Removing a non-member
	// product is a no-op returning the current cart.
	RemoveFromCart(ctx context.Context, email, productID string) ([]model.CartEntry, error)

	// GetCart returns the reconciled cart. Never fails: any fault
	// yields an empty slice.
	GetCart(ctx context.Context, email string) []model.CartEntry
}

// OrderService defines order operations.
type OrderService interface {
	// Create resolves every line item against the catalog, snapshots
	// name and price, and persists the order. Any unresolved reference
	// aborts the whole create with nothing persisted.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves all orders newest-first.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus overwrites an order's status. Any of the three
	// statuses is reachable from any other.
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}

// ProfileService defines profile operations.
type ProfileService interface {
	// Get returns the profile, lazily creating it seeded with the
	// user's current display name when absent.
	Get(ctx context.Context, email string) (*model.Profile, error)

	// Upsert overwrites the profile and pushes the name back to the
	// user record as a best-effort secondary write.
	Upsert(ctx context.Context, email, name, phone, address string) (*model.Profile, error)
}

// AnalyticsService reports aggregate counters across the stores.
type AnalyticsService interface {
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
}
