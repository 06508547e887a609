package service

import (
	"context"
	"fmt"
	"time"

	"stylekart/internal/model"
	"stylekart/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// identityService implements IdentityService.
type identityService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewIdentityService creates a new identity service.
func NewIdentityService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) IdentityService {
	return &identityService{
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "identity").Logger(),
	}
}

// Signup registers a new account.
func (s *identityService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, model.ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, model.ErrPasswordMismatch
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	if !role.IsValid() {
		return nil, model.ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to check existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hash),
		Role:      role,
		NewUser:   true,
		Wishlist:  []primitive.ObjectID{},
		Cart:      []model.CartItem{},
		CreatedAt: time.Now(),
	}

	// The unique index backstops the existence check above against
	// concurrent signups for the same email.
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Msg("user registered")

	return user, nil
}

// Login authenticates a user and reports whether this was the first
// successful login.
func (s *identityService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, bool, error) {
	if email == "" || password == "" {
		return nil, false, model.ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, false, model.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Debug().Str("email", email).Msg("password mismatch")
		return nil, false, model.ErrWrongPassword
	}

	if role != "" && role != user.Role {
		s.logger.Debug().
			Str("email", email).
			Str("requested_role", string(role)).
			Str("stored_role", string(user.Role)).
			Msg("role mismatch")
		return nil, false, model.ErrRoleMismatch
	}

	firstLogin := user.NewUser
	if firstLogin {
		// The login itself succeeded; a failed flag clear only means
		// the next login reports first-login again.
		if err := s.userRepo.ClearNewUserFlag(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to clear first-login flag")
		} else {
			user.NewUser = false
		}
	}

	s.logger.Info().Str("email", email).Bool("first_login", firstLogin).Msg("user logged in")

	return user, firstLogin, nil
}

// AddToWishlist inserts a product reference, deduplicating.
func (s *identityService) AddToWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, model.ErrInvalidProductID
	}

	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}

	wishlist := user.Wishlist
	if !containsID(wishlist, oid) {
		wishlist = append(wishlist, oid)
		if err := s.userRepo.UpdateWishlist(ctx, email, wishlist); err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to update wishlist")
			return nil, fmt.Errorf("failed to update wishlist: %w", err)
		}
		s.logger.Debug().Str("email", email).Str("product_id", productID).Msg("wishlist item added")
	}

	return s.reconcileWishlist(ctx, email, wishlist), nil
}

// RemoveFromWishlist removes a product reference; no-op when absent.
func (s *identityService) RemoveFromWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, model.ErrInvalidProductID
	}

	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}

	wishlist := removeID(user.Wishlist, oid)
	if len(wishlist) != len(user.Wishlist) {
		if err := s.userRepo.UpdateWishlist(ctx, email, wishlist); err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to update wishlist")
			return nil, fmt.Errorf("failed to update wishlist: %w", err)
		}
		s.logger.Debug().Str("email", email).Str("product_id", productID).Msg("wishlist item removed")
	}

	return s.reconcileWishlist(ctx, email, wishlist), nil
}

// GetWishlist returns the reconciled wishlist, degrading to empty on
// any fault.
func (s *identityService) GetWishlist(ctx context.Context, email string) []model.WishlistEntry {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("wishlist read degraded to empty")
		return []model.WishlistEntry{}
	}
	if user == nil {
		return []model.WishlistEntry{}
	}

	return s.reconcileWishlist(ctx, email, user.Wishlist)
}

// AddToCart increments an existing entry or appends a new one.
// Product validity is not checked at write time; the read path filters
// references that no longer resolve.
func (s *identityService) AddToCart(ctx context.Context, email, productID string, quantity int) ([]model.CartEntry, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, model.ErrInvalidProductID
	}
	if quantity < 0 {
		return nil, model.ErrInvalidQuantity
	}
	if quantity == 0 {
		quantity = 1
	}

	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}

	// Find-or-append keeps at most one entry per product.
	cart := user.Cart
	found := false
	for i := range cart {
		if cart[i].ProductID == oid {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, model.CartItem{ProductID: oid, Quantity: quantity})
	}

	if err := s.userRepo.UpdateCart(ctx, email, cart); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to update cart")
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Debug().
		Str("email", email).
		Str("product_id", productID).
		Int("quantity", quantity).
		Bool("merged", found).
		Msg("cart item added")

	return s.reconcileCart(ctx, email, cart), nil
}

// RemoveFromCart removes a cart entry; no-op when absent.
func (s *identityService) RemoveFromCart(ctx context.Context, email, productID string) ([]model.CartEntry, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, model.ErrInvalidProductID
	}

	user, err := s.requireUser(ctx, email)
	if err != nil {
		return nil, err
	}

	cart := make([]model.CartItem, 0, len(user.Cart))
	for _, item := range user.Cart {
		if item.ProductID != oid {
			cart = append(cart, item)
		}
	}

	if len(cart) != len(user.Cart) {
		if err := s.userRepo.UpdateCart(ctx, email, cart); err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to update cart")
			return nil, fmt.Errorf("failed to update cart: %w", err)
		}
		s.logger.Debug().Str("email", email).Str("product_id", productID).Msg("cart item removed")
	}

	return s.reconcileCart(ctx, email, cart), nil
}

// GetCart returns the reconciled cart, degrading to empty on any
// fault. Callers can always render the result without error handling.
func (s *identityService) GetCart(ctx context.Context, email string) []model.CartEntry {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("cart read degraded to empty")
		return []model.CartEntry{}
	}
	if user == nil {
		return []model.CartEntry{}
	}

	return s.reconcileCart(ctx, email, user.Cart)
}

// reconcileWishlist joins stored references against the live catalog,
// dropping any that no longer resolve. Stored references are never
// pruned here; reads stay side-effect free.
func (s *identityService) reconcileWishlist(ctx context.Context, email string, refs []primitive.ObjectID) []model.WishlistEntry {
	entries := []model.WishlistEntry{}
	if len(refs) == 0 {
		return entries
	}

	byID, err := s.resolveProducts(ctx, refs)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("wishlist reconciliation degraded to empty")
		return entries
	}

	for _, ref := range refs {
		p, ok := byID[ref]
		if !ok {
			s.logger.Debug().
				Str("email", email).
				Str("product_id", ref.Hex()).
				Msg("dropping dangling wishlist reference")
			continue
		}
		entries = append(entries, model.WishlistEntry{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Rating:    p.Rating,
		})
	}

	return entries
}

// reconcileCart joins stored cart items against the live catalog,
// dropping entries whose product reference no longer resolves.
func (s *identityService) reconcileCart(ctx context.Context, email string, items []model.CartItem) []model.CartEntry {
	entries := []model.CartEntry{}
	if len(items) == 0 {
		return entries
	}

	refs := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		refs[i] = item.ProductID
	}

	byID, err := s.resolveProducts(ctx, refs)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("cart reconciliation degraded to empty")
		return entries
	}

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			s.logger.Debug().
				Str("email", email).
				Str("product_id", item.ProductID.Hex()).
				Msg("dropping dangling cart reference")
			continue
		}
		entries = append(entries, model.CartEntry{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Rating:    p.Rating,
			Quantity:  item.Quantity,
		})
	}

	return entries
}

// resolveProducts fetches the referenced products in one query and
// indexes them by ID.
func (s *identityService) resolveProducts(ctx context.Context, refs []primitive.ObjectID) (map[primitive.ObjectID]model.Product, error) {
	products, err := s.productRepo.GetByIDs(ctx, refs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return byID, nil
}

// requireUser looks up a user for a write path, reporting NotFound
// when absent.
func (s *identityService) requireUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// containsID reports whether ids contains id.
func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// removeID returns ids without id, preserving order.
func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
