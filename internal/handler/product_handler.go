package handler

import (
	"net/http"
	"strconv"

	"stylekart/internal/model"
	"stylekart/internal/service"
	"stylekart/internal/upload"

	"github.com/rs/zerolog"
)

// maxUploadBytes caps multipart form memory for product images.
const maxUploadBytes = 32 << 20

// ProductHandler handles catalog HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	store   upload.Store
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, store upload.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		store:   store,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products requests. The response is a bare array;
// clients render it directly.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}

	filter, err := parseProductFilter(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id} requests. The response is the bare
// product object, or 404.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /products multipart requests. The image comes
// either from the uploaded file field or from an explicit imageUrl
// form value; missing both fails validation.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseProductForm(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

// Update handles PUT /products/{id} multipart requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	input, err := h.parseProductForm(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted",
	})
}

// parseProductForm extracts a typed ProductInput from a multipart
// form, storing an uploaded image when present.
func (h *ProductHandler) parseProductForm(r *http.Request) (model.ProductInput, error) {
	var input model.ProductInput

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return input, model.NewDomainError(model.KindValidation, "Invalid multipart form")
	}

	input.Name = r.FormValue("name")
	input.Category = model.Category(r.FormValue("category"))
	input.Description = r.FormValue("description")
	input.Size = r.FormValue("size")
	input.Brand = r.FormValue("brand")
	input.Color = r.FormValue("color")

	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, model.ErrInvalidPrice
		}
		input.Price = price
	}

	if raw := r.FormValue("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, model.ErrInvalidRating
		}
		input.Rating = &rating
	}

	// Uploaded file wins over an explicit external URL.
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		source, err := h.store.Save(r.Context(), header.Filename, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to store image")
			return input, err
		}
		input.Image = source
	} else {
		input.Image = r.FormValue("imageUrl")
	}

	return input, nil
}

// parseProductFilter extracts the optional catalog filters from the
// query string. Absent parameters impose no constraint.
func parseProductFilter(r *http.Request) (model.ProductFilter, error) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Category: q.Get("category"),
		Size:     q.Get("size"),
		Brand:    q.Get("brand"),
		Color:    q.Get("color"),
	}

	for name, dst := range map[string]**float64{
		"priceMin": &filter.PriceMin,
		"priceMax": &filter.PriceMax,
		"rating":   &filter.MinRating,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, model.NewDomainError(model.KindValidation, "Invalid "+name+" parameter")
		}
		*dst = &value
	}

	return filter, nil
}
