package services

import (
	"context"
	"net/http"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/models"
)

// OrderService lists the session user's order history. Orders are created by
// CartService.Checkout and immutable afterwards.
type OrderService struct {
	api *clients.APIClient
}

func NewOrderService(api *clients.APIClient) *OrderService {
	return &OrderService{api: api}
}

// ListOrders returns the user's order history with item images resolved
// against the media host.
func (s *OrderService) ListOrders(ctx context.Context, session *models.Session) ([]models.Order, error) {
	if !session.Authenticated() {
		return nil, apperrors.AuthRequired("login required to view orders", nil)
	}

	var orders []models.Order
	if _, err := s.api.DoJSON(ctx, http.MethodGet, "/orders", nil, session.Cookies, nil, &orders); err != nil {
		return nil, err
	}

	for i := range orders {
		for j := range orders[i].Items {
			orders[i].Items[j].Image = s.api.ImageURL(orders[i].Items[j].Image)
		}
	}
	return orders, nil
}
