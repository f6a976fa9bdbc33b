package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
)

// ProductHandler handles product-related HTTP requests against the
// caller's session catalog
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ProductView is a product together with its detail panel state
type ProductView struct {
	models.Product
	Expanded bool `json:"expanded"`
}

// ListProducts handles GET /api/product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	sess, ok := lockSession(w, r, h.logger)
	if !ok {
		return
	}
	defer sess.Unlock()

	products, err := h.service.ListProducts(r.Context(), sess.Products)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = ProductView{Product: p, Expanded: sess.IsExpanded(p.ID)}
	}

	WriteJSON(w, http.StatusOK, views, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	sess, ok := lockSession(w, r, h.logger)
	if !ok {
		return
	}
	defer sess.Unlock()

	product, err := h.service.GetProduct(r.Context(), sess.Products, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, ProductView{Product: *product, Expanded: sess.IsExpanded(product.ID)}, h.logger)
}

// CreateProduct handles POST /api/product
// - 201: product prepended to the catalog
// - 400: name or price missing, price too high, or malformed body
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var draft models.ProductDraft
	if err := decodeJSON(r, &draft); err != nil {
		h.logger.Warn("failed to decode product draft", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	sess, ok := lockSession(w, r, h.logger)
	if !ok {
		return
	}
	defer sess.Unlock()

	product, err := h.service.AddProduct(r.Context(), sess.Products, draft)
	if err != nil {
		if errors.Is(err, service.ErrMissingRequiredFields) {
			h.logger.Warn("rejected incomplete product", "session_id", sess.ID)
			WriteError(w, http.StatusBadRequest, service.AlertMissingFields, h.logger)
			return
		}
		if errors.Is(err, service.ErrPriceOutOfRange) {
			h.logger.Warn("rejected product price", "session_id", sess.ID, "price", draft.Price)
			WriteError(w, http.StatusBadRequest, service.AlertPriceOutOfRange, h.logger)
			return
		}

		h.logger.Error("failed to add product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("product added", "session_id", sess.ID, "product_id", product.ID)
	WriteJSON(w, http.StatusCreated, product, h.logger)
}

// ToggleDetails handles POST /api/product/{productId}/details
func (h *ProductHandler) ToggleDetails(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	sess, ok := lockSession(w, r, h.logger)
	if !ok {
		return
	}
	defer sess.Unlock()

	product, err := h.service.GetProduct(r.Context(), sess.Products, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	expanded := sess.ToggleDetails(product.ID)
	WriteJSON(w, http.StatusOK, ProductView{Product: *product, Expanded: expanded}, h.logger)
}
