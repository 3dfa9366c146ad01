package services

import (
	"context"
	"net/http"
	"net/url"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/models"
)

// AdminService exposes the per-product sales aggregates to admin users.
type AdminService struct {
	api *clients.APIClient
}

func NewAdminService(api *clients.APIClient) *AdminService {
	return &AdminService{api: api}
}

// Stats fetches revenue/quantity aggregates for the given date range.
func (s *AdminService) Stats(ctx context.Context, session *models.Session, startDate, endDate string) ([]models.ProductSalesStat, error) {
	if !session.Authenticated() {
		return nil, apperrors.AuthRequired("login required", nil)
	}
	if !session.User.IsAdmin {
		return nil, apperrors.New(apperrors.KindAuthRequired, http.StatusForbidden, "admin access required", nil)
	}
	if startDate == "" || endDate == "" {
		return nil, apperrors.Validation("startDate and endDate are required", nil)
	}

	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var stats []models.ProductSalesStat
	if _, err := s.api.DoJSON(ctx, http.MethodGet, "/admin/stats", query, session.Cookies, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// StatsTotals folds per-product rows into overall quantity and revenue.
func StatsTotals(stats []models.ProductSalesStat) (int, float64) {
	quantity := 0
	revenue := 0.0
	for _, row := range stats {
		quantity += row.TotalQuantity
		revenue += row.TotalRevenue
	}
	return quantity, revenue
}
