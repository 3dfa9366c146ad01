package services

import (
	"context"
	"fmt"
	"net/http"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/logger"
	"storefront-bff/models"

	"go.uber.org/zap"
)

// CartService keeps the session's cart mirror in sync with the upstream
// cart. The mirror is never patched locally: every successful mutation is
// followed by a full refetch, so local state trails the server by at most
// one round trip. Two rapid independent mutations are not queued against
// each other; the last refetch to resolve wins.
type CartService struct {
	api      *clients.APIClient
	sessions SessionStore
}

func NewCartService(api *clients.APIClient, sessions SessionStore) *CartService {
	return &CartService{api: api, sessions: sessions}
}

type cartResponse struct {
	Items []models.CartItem `json:"items"`
}

// FetchCart replaces the mirror with the upstream cart. On any failure,
// including an unauthenticated session, the mirror degrades to an empty
// cart instead of keeping stale data, and no error reaches the caller.
func (s *CartService) FetchCart(ctx context.Context, session *models.Session) {
	var out cartResponse
	_, err := s.api.DoJSON(ctx, http.MethodGet, "/cart", nil, session.Cookies, nil, &out)
	if err != nil {
		logger.Log.Warn("cart fetch failed, resetting mirror",
			zap.String("session_id", session.ID), zap.Error(err))
		session.Cart = models.Cart{}
		s.persist(ctx, session)
		return
	}

	items := out.Items
	if items == nil {
		items = []models.CartItem{}
	}
	session.Cart = models.Cart{Items: items}
	s.persist(ctx, session)
}

// AddToCart posts a new line upstream. A 401 surfaces as AuthRequired so the
// caller can redirect to login, and the cart-open affordance is not touched.
// On success the mirror is resynced and the cart affordance opens.
func (s *CartService) AddToCart(ctx context.Context, session *models.Session, productID, size string, quantity int, selectedImage string) error {
	if productID == "" || size == "" {
		return apperrors.Validation("productId and size are required", nil)
	}
	if quantity < 1 {
		return apperrors.Validation("quantity must be at least 1", nil)
	}

	body := map[string]interface{}{
		"productId":     productID,
		"size":          size,
		"quantity":      quantity,
		"selectedImage": selectedImage,
	}
	if _, err := s.api.DoJSON(ctx, http.MethodPost, "/cart", nil, session.Cookies, body, nil); err != nil {
		return err
	}

	s.FetchCart(ctx, session)
	session.CartOpen = true
	s.persist(ctx, session)
	return nil
}

// UpdateQuantity changes a line's quantity upstream and resyncs. Quantities
// below 1 are a client-side no-op: removing a line must go through
// RemoveFromCart explicitly, never an implicit decrement to zero.
func (s *CartService) UpdateQuantity(ctx context.Context, session *models.Session, itemID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	if itemID == "" {
		return apperrors.Validation("itemId is required", nil)
	}

	body := map[string]int{"quantity": quantity}
	path := fmt.Sprintf("/cart/%s", itemID)
	if _, err := s.api.DoJSON(ctx, http.MethodPut, path, nil, session.Cookies, body, nil); err != nil {
		return err
	}

	s.FetchCart(ctx, session)
	return nil
}

// RemoveFromCart deletes a line upstream and resyncs.
func (s *CartService) RemoveFromCart(ctx context.Context, session *models.Session, itemID string) error {
	if itemID == "" {
		return apperrors.Validation("itemId is required", nil)
	}

	path := fmt.Sprintf("/cart/%s", itemID)
	if _, err := s.api.DoJSON(ctx, http.MethodDelete, path, nil, session.Cookies, nil, nil); err != nil {
		return err
	}

	s.FetchCart(ctx, session)
	return nil
}

// Checkout creates an order from the upstream cart. Success empties the
// mirror without a resync, since the upstream cart is now empty by contract;
// failure leaves the mirror untouched.
func (s *CartService) Checkout(ctx context.Context, session *models.Session) (*models.Order, error) {
	var order models.Order
	if _, err := s.api.DoJSON(ctx, http.MethodPost, "/orders", nil, session.Cookies, nil, &order); err != nil {
		return nil, err
	}

	session.Cart = models.Cart{}
	session.CartOpen = false
	s.persist(ctx, session)
	return &order, nil
}

// ClearLocal drops the mirror without an upstream call. Used on logout: a
// cart belongs to an upstream session, so it must not survive one.
func (s *CartService) ClearLocal(ctx context.Context, session *models.Session) {
	session.Cart = models.Cart{}
	session.CartOpen = false
	s.persist(ctx, session)
}

// SetCartOpen records the cart affordance state.
func (s *CartService) SetCartOpen(ctx context.Context, session *models.Session, open bool) {
	session.CartOpen = open
	s.persist(ctx, session)
}

func (s *CartService) persist(ctx context.Context, session *models.Session) {
	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Log.Warn("failed to persist session", zap.String("session_id", session.ID), zap.Error(err))
	}
}
