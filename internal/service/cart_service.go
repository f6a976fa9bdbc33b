package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/cart"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
)

// CheckoutMessage confirms a completed checkout
const CheckoutMessage = "주문이 완료되었습니다! 감사합니다."

// CartService handles cart mutations and checkout for a session
type CartService struct {
	log *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(log *slog.Logger) *CartService {
	return &CartService{log: log}
}

// AddToCart adds one unit of productID from the session's catalog
func (s *CartService) AddToCart(ctx context.Context, sess *session.Session, productID string) error {
	return s.AddQuantity(ctx, sess, productID, 1)
}

// AddQuantity adds quantity units of productID. Quantity must be within
// 1..cart.MaxQuantity; the entry itself never exceeds cart.MaxQuantity.
func (s *CartService) AddQuantity(ctx context.Context, sess *session.Session, productID string, quantity int) error {
	if quantity <= 0 || quantity > cart.MaxQuantity {
		return ErrInvalidQuantity
	}

	product, err := sess.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	sess.Cart.AddN(*product, quantity)
	return nil
}

// UpdateQuantity adjusts the quantity of productID by delta; items that
// reach zero leave the cart
func (s *CartService) UpdateQuantity(ctx context.Context, sess *session.Session, productID string, delta int) {
	sess.Cart.UpdateQuantity(productID, delta)
}

// Remove drops productID from the cart
func (s *CartService) Remove(ctx context.Context, sess *session.Session, productID string) {
	sess.Cart.Remove(productID)
}

// Checkout confirms the cart contents, empties the cart and closes the
// cart modal. No payment is taken.
func (s *CartService) Checkout(ctx context.Context, sess *session.Session) (*models.CheckoutReceipt, error) {
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	receipt := &models.CheckoutReceipt{
		ID:        uuid.New().String(),
		ItemCount: sess.Cart.Count(),
		Total:     sess.Cart.Total(),
		Message:   CheckoutMessage,
	}

	sess.Cart.Clear()
	sess.CartOpen = false

	s.log.Info("checkout completed",
		"session_id", sess.ID,
		"receipt_id", receipt.ID,
		"item_count", receipt.ItemCount,
		"total", receipt.Total,
	)
	return receipt, nil
}
