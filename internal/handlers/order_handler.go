package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
)

// OrderHandler handles checkout and the demo order list
type OrderHandler struct {
	cartService  *service.CartService
	adminService *service.AdminService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(cartService *service.CartService, adminService *service.AdminService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		cartService:  cartService,
		adminService: adminService,
		log:          log,
	}
}

// Checkout handles POST /api/order: the session cart is confirmed and cleared
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := lockSession(w, r, h.log)
	if !ok {
		return
	}
	defer sess.Unlock()

	receipt, err := h.cartService.Checkout(r.Context(), sess)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			h.log.Warn("checkout with empty cart", "session_id", sess.ID)
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
			return
		}

		h.log.Error("failed to check out", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, receipt, h.log)
}

// ListOrders handles GET /api/order
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.adminService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}
