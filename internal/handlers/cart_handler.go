package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

// CartHandler handles cart HTTP requests for the caller's session
type CartHandler struct {
	service *service.CartService
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// CartResponse is the cart with its derived totals
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

// AddItemRequest adds Quantity units (default 1) of a product
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

// UpdateItemRequest adjusts a quantity by a signed delta
type UpdateItemRequest struct {
	Delta int `json:"delta"`
}

func cartResponse(sess *session.Session) CartResponse {
	return CartResponse{
		Items: sess.Cart.Items(),
		Count: sess.Cart.Count(),
		Total: sess.Cart.Total(),
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := lockSession(w, r, h.log)
	if !ok {
		return
	}
	defer sess.Unlock()

	WriteJSON(w, http.StatusOK, cartResponse(sess), h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode cart item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess, ok := lockSession(w, r, h.log)
	if !ok {
		return
	}
	defer sess.Unlock()

	if err := h.service.AddQuantity(r.Context(), sess, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be between 1 and 99", h.log)
		case errors.Is(err, repository.ErrProductNotFound):
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
		default:
			h.log.Error("failed to add to cart", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, cartResponse(sess), h.log)
}

// UpdateItem handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode quantity update", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sess, ok := lockSession(w, r, h.log)
	if !ok {
		return
	}
	defer sess.Unlock()

	h.service.UpdateQuantity(r.Context(), sess, productID, req.Delta)
	WriteJSON(w, http.StatusOK, cartResponse(sess), h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	sess, ok := lockSession(w, r, h.log)
	if !ok {
		return
	}
	defer sess.Unlock()

	h.service.Remove(r.Context(), sess, productID)
	WriteJSON(w, http.StatusOK, cartResponse(sess), h.log)
}
