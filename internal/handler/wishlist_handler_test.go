package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	entries := []model.WishlistEntry{
		{ProductID: primitive.NewObjectID(), Name: "Linen Shirt", Price: 45},
	}

	tests := []struct {
		name       string
		email      string
		mockReturn []model.WishlistEntry
		expectLen  int
	}{
		{
			name:       "Populated wishlist",
			email:      "alice@example.com",
			mockReturn: entries,
			expectLen:  1,
		},
		{
			name:       "Fault degrades to empty wishlist",
			email:      "alice@example.com",
			mockReturn: []model.WishlistEntry{},
			expectLen:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIdentity := new(MockIdentityService)
			handler := NewWishlistHandler(mockIdentity, logger)

			mockIdentity.On("GetWishlist", mock.Anything, tt.email).Return(tt.mockReturn)

			req := httptest.NewRequest(http.MethodGet, "/wishlist/"+tt.email, nil)
			w := httptest.NewRecorder()

			handler.Get(w, req, tt.email)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp struct {
				Success  bool                  `json:"success"`
				Wishlist []model.WishlistEntry `json:"wishlist"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Len(t, resp.Wishlist, tt.expectLen)
			mockIdentity.AssertExpectations(t)
		})
	}
}

func TestWishlistHandler_Add(t *testing.T) {
	logger := zerolog.Nop()
	productID := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockIdentity := new(MockIdentityService)
		handler := NewWishlistHandler(mockIdentity, logger)

		entries := []model.WishlistEntry{{ProductID: productID, Name: "Linen Shirt"}}
		mockIdentity.On("AddToWishlist", mock.Anything, "alice@example.com", productID.Hex()).
			Return(entries, nil)

		body := `{"email":"alice@example.com","productId":"` + productID.Hex() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/wishlist", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Add(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockIdentity.AssertExpectations(t)
	})

	t.Run("Malformed product reference", func(t *testing.T) {
		mockIdentity := new(MockIdentityService)
		handler := NewWishlistHandler(mockIdentity, logger)

		mockIdentity.On("AddToWishlist", mock.Anything, "alice@example.com", "not-a-hex-id").
			Return(nil, model.ErrInvalidProductID)

		body := `{"email":"alice@example.com","productId":"not-a-hex-id"}`
		req := httptest.NewRequest(http.MethodPost, "/wishlist", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Add(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		mockIdentity := new(MockIdentityService)
		handler := NewWishlistHandler(mockIdentity, logger)

		req := httptest.NewRequest(http.MethodGet, "/wishlist", nil)
		w := httptest.NewRecorder()

		handler.Add(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestWishlistHandler_Remove(t *testing.T) {
	logger := zerolog.Nop()
	productID := primitive.NewObjectID()

	mockIdentity := new(MockIdentityService)
	handler := NewWishlistHandler(mockIdentity, logger)

	// Removing a non-member reference still succeeds with the current
	// wishlist.
	mockIdentity.On("RemoveFromWishlist", mock.Anything, "alice@example.com", productID.Hex()).
		Return([]model.WishlistEntry{}, nil)

	body := `{"email":"alice@example.com","productId":"` + productID.Hex() + `"}`
	req := httptest.NewRequest(http.MethodDelete, "/wishlist/remove", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Remove(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockIdentity.AssertExpectations(t)
}
