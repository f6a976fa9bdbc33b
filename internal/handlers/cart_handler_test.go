package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/service"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

func newCartRouter() *chi.Mux {
	handler := NewCartHandler(service.NewCartService(testLogger()), testLogger())

	r := chi.NewRouter()
	r.Get("/api/cart", handler.GetCart)
	r.Post("/api/cart/items", handler.AddItem)
	r.Patch("/api/cart/items/{productId}", handler.UpdateItem)
	r.Delete("/api/cart/items/{productId}", handler.RemoveItem)
	return r
}

func doCart(t *testing.T, r http.Handler, method, target string, body interface{}, sess *session.Session) (int, CartResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(t, method, target, body, sess))

	var cart CartResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
			t.Fatalf("failed to decode cart: %v", err)
		}
	}
	return w.Code, cart
}

func TestCartHandler_AddItem(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantCount  int
	}{
		{name: "default quantity", body: AddItemRequest{ProductID: "couple-pack"}, wantStatus: http.StatusOK, wantCount: 1},
		{name: "explicit quantity", body: AddItemRequest{ProductID: "couple-pack", Quantity: 3}, wantStatus: http.StatusOK, wantCount: 3},
		{name: "negative quantity", body: AddItemRequest{ProductID: "couple-pack", Quantity: -2}, wantStatus: http.StatusBadRequest},
		{name: "maximum quantity", body: AddItemRequest{ProductID: "couple-pack", Quantity: 99}, wantStatus: http.StatusOK, wantCount: 99},
		{name: "quantity above maximum", body: AddItemRequest{ProductID: "couple-pack", Quantity: 100}, wantStatus: http.StatusBadRequest},
		{name: "oversized quantity", body: `{"productId":"couple-pack","quantity":9223372036854775807}`, wantStatus: http.StatusBadRequest},
		{name: "unknown product", body: AddItemRequest{ProductID: "missing"}, wantStatus: http.StatusNotFound},
		{name: "invalid JSON", body: "{", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, cart := doCart(t, newCartRouter(), http.MethodPost, "/api/cart/items", tt.body, newTestSession())

			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if status == http.StatusOK && cart.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cart.Count, tt.wantCount)
			}
		})
	}
}

func TestCartHandler_Flow(t *testing.T) {
	r := newCartRouter()
	sess := newTestSession()

	// Adding the same product twice increments instead of duplicating
	doCart(t, r, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "couple-pack"}, sess)
	_, cart := doCart(t, r, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "couple-pack"}, sess)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("cart = %+v, want one entry with quantity 2", cart.Items)
	}

	_, cart = doCart(t, r, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "premium-box"}, sess)
	if cart.Total != 2*13000+25000 {
		t.Errorf("total = %d, want %d", cart.Total, 2*13000+25000)
	}

	_, cart = doCart(t, r, http.MethodPatch, "/api/cart/items/couple-pack", UpdateItemRequest{Delta: -5}, sess)
	if len(cart.Items) != 1 || cart.Items[0].Product.ID != "premium-box" {
		t.Errorf("couple-pack should be removed after a large decrement, got %+v", cart.Items)
	}

	_, cart = doCart(t, r, http.MethodDelete, "/api/cart/items/premium-box", nil, sess)
	if len(cart.Items) != 0 || cart.Total != 0 || cart.Count != 0 {
		t.Errorf("cart should be empty, got %+v", cart)
	}

	status, cart := doCart(t, r, http.MethodGet, "/api/cart", nil, sess)
	if status != http.StatusOK || cart.Count != 0 {
		t.Errorf("GET /api/cart = %d %+v", status, cart)
	}
}

func TestCartHandler_UpdateItemCapsQuantity(t *testing.T) {
	r := newCartRouter()
	sess := newTestSession()

	doCart(t, r, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: "couple-pack"}, sess)
	status, cart := doCart(t, r, http.MethodPatch, "/api/cart/items/couple-pack", `{"delta":9223372036854775807}`, sess)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if cart.Count != 99 || cart.Total != 99*13000 {
		t.Errorf("cart = %+v, want 99 units totalling %d", cart, 99*13000)
	}
}
