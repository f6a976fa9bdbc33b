package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
)

// AdminHandler serves the dashboard figures and the storefront copy
type AdminHandler struct {
	service *service.AdminService
	content models.Content
	log     *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.AdminService, content models.Content, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		content: content,
		log:     log,
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.log.Error("failed to build dashboard", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, stats, h.log)
}

// Content handles GET /api/content
func (h *AdminHandler) Content(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.content, h.log)
}
