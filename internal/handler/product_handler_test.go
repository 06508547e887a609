package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: primitive.NewObjectID(), Name: "Linen Shirt", Price: 45.00, Category: model.CategoryMen, CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), Name: "Summer Dress", Price: 60.00, Category: model.CategoryWomen, CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		method         string
		queryParams    string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		expectedFilter model.ProductFilter
	}{
		{
			name:           "Success without filters",
			method:         http.MethodGet,
			queryParams:    "",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			expectedFilter: model.ProductFilter{},
		},
		{
			name:           "Success with category and brand filters",
			method:         http.MethodGet,
			queryParams:    "?category=men&brand=Acme",
			mockReturn:     testProducts[:1],
			expectedStatus: http.StatusOK,
			expectService:  true,
			expectedFilter: model.ProductFilter{Category: "men", Brand: "Acme"},
		},
		{
			name:           "Invalid rating parameter",
			method:         http.MethodGet,
			queryParams:    "?rating=high",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid priceMin parameter",
			method:         http.MethodGet,
			queryParams:    "?priceMin=cheap",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			queryParams:    "",
			mockError:      errors.New("store unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
			expectedFilter: model.ProductFilter{},
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			queryParams:    "",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, &stubStore{}, logger)

			if tt.expectService {
				mockService.On("List", mock.Anything, tt.expectedFilter).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				// Listing responds with a bare array, no wrapper object.
				var body []model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, len(tt.mockReturn))
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_List_PriceRangeForwarded(t *testing.T) {
	mockService := new(MockCatalogService)
	handler := NewProductHandler(mockService, &stubStore{}, zerolog.Nop())

	mockService.On("List", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.PriceMin != nil && *f.PriceMin == 20 &&
			f.PriceMax != nil && *f.PriceMax == 80
	})).Return([]model.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?priceMin=20&priceMax=80", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{
		ID:        primitive.NewObjectID(),
		Name:      "Linen Shirt",
		Price:     45.00,
		Category:  model.CategoryMen,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			id:             testProduct.ID.Hex(),
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			id:             primitive.NewObjectID().Hex(),
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, &stubStore{}, logger)

			mockService.On("Get", mock.Anything, tt.id).
				Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/products/"+tt.id, nil)
			w := httptest.NewRecorder()

			handler.Get(w, req, tt.id)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				// Single reads respond with the bare product object.
				var body model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, testProduct.Name, body.Name)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success with uploaded image", func(t *testing.T) {
		mockService := new(MockCatalogService)
		store := &stubStore{source: "/images/abc.png"}
		handler := NewProductHandler(mockService, store, logger)

		created := &model.Product{ID: primitive.NewObjectID(), Name: "Linen Shirt"}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProductInput) bool {
			return in.Name == "Linen Shirt" &&
				in.Price == 45 &&
				in.Category == model.CategoryMen &&
				in.Image == "/images/abc.png"
		})).Return(created, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Linen Shirt"))
		require.NoError(t, mw.WriteField("price", "45"))
		require.NoError(t, mw.WriteField("category", "men"))
		part, err := mw.CreateFormFile("image", "shirt.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not really a png"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Image URL used when no file uploaded", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, &stubStore{}, logger)

		created := &model.Product{ID: primitive.NewObjectID(), Name: "Linen Shirt"}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProductInput) bool {
			return in.Image == "https://cdn.example.com/shirt.png"
		})).Return(created, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Linen Shirt"))
		require.NoError(t, mw.WriteField("price", "45"))
		require.NoError(t, mw.WriteField("category", "men"))
		require.NoError(t, mw.WriteField("imageUrl", "https://cdn.example.com/shirt.png"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed price field", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, &stubStore{}, logger)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Linen Shirt"))
		require.NoError(t, mw.WriteField("price", "forty-five"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Validation error from service", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := NewProductHandler(mockService, &stubStore{}, logger)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, model.ErrMissingImage)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Linen Shirt"))
		require.NoError(t, mw.WriteField("price", "45"))
		require.NoError(t, mw.WriteField("category", "men"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewProductHandler(mockService, &stubStore{}, logger)

			id := primitive.NewObjectID().Hex()
			mockService.On("Delete", mock.Anything, id).Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/products/"+id, nil)
			w := httptest.NewRecorder()

			handler.Delete(w, req, id)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
