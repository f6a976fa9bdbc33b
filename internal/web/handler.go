package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/repository"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

// AlertEmptyCart is shown when checkout is attempted with nothing in the cart
const AlertEmptyCart = "장바구니가 비어 있습니다"

// Handler serves the HTML pages and their form actions
type Handler struct {
	products *service.ProductService
	carts    *service.CartService
	admin    *service.AdminService
	content  models.Content
	renderer *Renderer
	log      *slog.Logger
}

// NewHandler creates the HTML handler
func NewHandler(
	products *service.ProductService,
	carts *service.CartService,
	admin *service.AdminService,
	content models.Content,
	renderer *Renderer,
	log *slog.Logger,
) *Handler {
	return &Handler{
		products: products,
		carts:    carts,
		admin:    admin,
		content:  content,
		renderer: renderer,
		log:      log,
	}
}

// Routes registers the pages and form actions on r
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/admin", h.Admin)

	r.Post("/view/toggle", h.action(h.toggleView))
	r.Post("/view/products", h.action(h.showProducts))

	r.Post("/cart/open", h.action(h.openCart))
	r.Post("/cart/close", h.action(h.closeCart))
	r.Post("/cart/add/{productId}", h.action(h.addToCart))
	r.Post("/cart/update/{productId}", h.action(h.updateQuantity))
	r.Post("/cart/remove/{productId}", h.action(h.removeFromCart))
	r.Post("/cart/checkout", h.action(h.checkout))

	r.Post("/products/{productId}/toggle", h.action(h.toggleDetails))

	r.Post("/admin/tab/{tab}", h.action(h.setAdminTab))
	r.Post("/admin/products/new", h.action(h.openAddModal))
	r.Post("/admin/products/cancel", h.action(h.closeAddModal))
	r.Post("/admin/products", h.action(h.saveProduct))
}

// Home renders the store, or the admin console when the session is in it
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lock(w, r)
	if !ok {
		return
	}
	defer sess.Unlock()

	h.render(w, r, sess)
}

// Admin switches the session to the console and renders it, selecting
// the ?tab= tab when one is given
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lock(w, r)
	if !ok {
		return
	}
	defer sess.Unlock()

	if tab := r.URL.Query().Get("tab"); tab != "" {
		if err := sess.SetAdminTab(tab); err != nil {
			h.log.Warn("unknown admin tab", "tab", tab)
			http.Error(w, "Unknown tab", http.StatusBadRequest)
			return
		}
	}
	sess.View = session.ViewAdmin

	h.render(w, r, sess)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	page, err := h.buildPage(r.Context(), sess)
	if err != nil {
		h.log.Error("failed to build page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	name := "store.html"
	if page.View == session.ViewAdmin {
		name = "admin.html"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, page); err != nil {
		h.log.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// actionFunc changes session state for a form post and returns where to
// redirect afterwards
type actionFunc func(r *http.Request, sess *session.Session) string

// action runs fn under the session lock and answers with 303 See Other
func (h *Handler) action(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}

		sess, ok := h.lock(w, r)
		if !ok {
			return
		}
		target := fn(r, sess)
		sess.Unlock()

		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.log.Error("session middleware not installed", "path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	sess.Lock()
	return sess, true
}

func (h *Handler) toggleView(r *http.Request, sess *session.Session) string {
	sess.ToggleView()
	sess.AddModalOpen = false
	return "/"
}

func (h *Handler) showProducts(r *http.Request, sess *session.Session) string {
	sess.ShowProducts()
	return "/#products"
}

func (h *Handler) openCart(r *http.Request, sess *session.Session) string {
	sess.CartOpen = true
	return "/"
}

func (h *Handler) closeCart(r *http.Request, sess *session.Session) string {
	sess.CartOpen = false
	return "/"
}

func (h *Handler) addToCart(r *http.Request, sess *session.Session) string {
	productID := chi.URLParam(r, "productId")
	if err := h.carts.AddToCart(r.Context(), sess, productID); err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			h.log.Error("failed to add to cart", "product_id", productID, "error", err)
		}
		sess.SetFlash("상품을 찾을 수 없습니다")
	}
	return "/#product-" + productID
}

func (h *Handler) updateQuantity(r *http.Request, sess *session.Session) string {
	delta, err := strconv.Atoi(r.PostForm.Get("delta"))
	if err != nil {
		delta = 0
	}
	h.carts.UpdateQuantity(r.Context(), sess, chi.URLParam(r, "productId"), delta)
	return "/"
}

func (h *Handler) removeFromCart(r *http.Request, sess *session.Session) string {
	h.carts.Remove(r.Context(), sess, chi.URLParam(r, "productId"))
	return "/"
}

func (h *Handler) checkout(r *http.Request, sess *session.Session) string {
	receipt, err := h.carts.Checkout(r.Context(), sess)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		sess.SetFlash(AlertEmptyCart)
	case err != nil:
		h.log.Error("failed to check out", "error", err)
	default:
		sess.SetFlash(receipt.Message)
	}
	return "/"
}

func (h *Handler) toggleDetails(r *http.Request, sess *session.Session) string {
	productID := chi.URLParam(r, "productId")
	sess.ToggleDetails(productID)
	return "/#product-" + productID
}

func (h *Handler) setAdminTab(r *http.Request, sess *session.Session) string {
	tab := chi.URLParam(r, "tab")
	if err := sess.SetAdminTab(tab); err != nil {
		h.log.Warn("unknown admin tab", "tab", tab)
	}
	sess.View = session.ViewAdmin
	return "/"
}

func (h *Handler) openAddModal(r *http.Request, sess *session.Session) string {
	sess.AddModalOpen = true
	return "/"
}

func (h *Handler) closeAddModal(r *http.Request, sess *session.Session) string {
	sess.AddModalOpen = false
	return "/"
}

// saveProduct copies the form into the session draft and submits it. An
// incomplete draft leaves the modal open with an alert.
func (h *Handler) saveProduct(r *http.Request, sess *session.Session) string {
	sess.Draft = draftFromForm(r, sess.Draft)

	product, err := h.products.SaveDraft(r.Context(), sess)
	switch {
	case errors.Is(err, service.ErrMissingRequiredFields):
		sess.SetFlash(service.AlertMissingFields)
	case errors.Is(err, service.ErrPriceOutOfRange):
		sess.SetFlash(service.AlertPriceOutOfRange)
	case err != nil:
		h.log.Error("failed to save product", "error", err)
	default:
		h.log.Info("product added", "session_id", sess.ID, "product_id", product.ID)
	}
	return "/"
}

// draftFromForm reads the add-product form. A price that is not a number
// becomes 0.
func draftFromForm(r *http.Request, current models.ProductDraft) models.ProductDraft {
	price, err := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("price")), 10, 64)
	if err != nil {
		price = 0
	}

	return models.ProductDraft{
		Name:     r.PostForm.Get("name"),
		Tagline:  r.PostForm.Get("tagline"),
		Price:    price,
		Unit:     r.PostForm.Get("unit"),
		Image:    r.PostForm.Get("image"),
		Features: current.Features,
	}
}
