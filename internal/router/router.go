package router

import (
	"net/http"
	"strings"

	"stylekart/internal/handler"
	"stylekart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	authHandler *handler.AuthHandler,
	wishlistHandler *handler.WishlistHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	profileHandler *handler.ProfileHandler,
	analyticsHandler *handler.AnalyticsHandler,
	uploadDir string,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Collection routes
		if r.URL.Path == "/products" || r.URL.Path == "/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.List(w, r)
			case http.MethodPost:
				productHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Routes addressing a specific product ID
		id := strings.TrimPrefix(r.URL.Path, "/products/")
		switch r.Method {
		case http.MethodGet:
			productHandler.Get(w, r, id)
		case http.MethodPut:
			productHandler.Update(w, r, id)
		case http.MethodDelete:
			productHandler.Delete(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/products", productRouteHandler)
	mux.HandleFunc("/products/", productRouteHandler)

	mux.HandleFunc("/signup", authHandler.Signup)
	mux.HandleFunc("/login", authHandler.Login)

	// Wishlist handler function
	wishlistRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/wishlist" || r.URL.Path == "/wishlist/" {
			wishlistHandler.Add(w, r)
			return
		}
		if r.URL.Path == "/wishlist/remove" {
			wishlistHandler.Remove(w, r)
			return
		}

		// Remaining routes read a user's wishlist by email
		email := strings.TrimPrefix(r.URL.Path, "/wishlist/")
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wishlistHandler.Get(w, r, email)
	}

	mux.HandleFunc("/wishlist", wishlistRouteHandler)
	mux.HandleFunc("/wishlist/", wishlistRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cart" || r.URL.Path == "/cart/" {
			cartHandler.Add(w, r)
			return
		}
		if r.URL.Path == "/cart/remove" {
			cartHandler.Remove(w, r)
			return
		}

		// Remaining routes read a user's cart by email
		email := strings.TrimPrefix(r.URL.Path, "/cart/")
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cartHandler.Get(w, r, email)
	}

	mux.HandleFunc("/cart", cartRouteHandler)
	mux.HandleFunc("/cart/", cartRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders" || r.URL.Path == "/orders/" {
			switch r.Method {
			case http.MethodGet:
				orderHandler.List(w, r)
			case http.MethodPost:
				orderHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Routes addressing a specific order ID
		id := strings.TrimPrefix(r.URL.Path, "/orders/")
		if r.Method != http.MethodPut {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		orderHandler.UpdateStatus(w, r, id)
	}

	mux.HandleFunc("/orders", orderRouteHandler)
	mux.HandleFunc("/orders/", orderRouteHandler)

	mux.HandleFunc("/api/profile/", func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimPrefix(r.URL.Path, "/api/profile/")
		if email == "" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			profileHandler.Get(w, r, email)
		case http.MethodPut:
			profileHandler.Update(w, r, email)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/analytics", analyticsHandler.Summary)

	// Locally stored product images
	mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(uploadDir))))

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminKeyAuth
	var h http.Handler = mux
	h = middleware.AdminKeyAuth(adminAPIKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
