package services

import (
	"context"
	"fmt"
	"net/http"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/models"
)

// ReviewService wraps the upstream review CRUD. No mirror is kept; callers
// refetch the affected list after a mutation.
type ReviewService struct {
	api *clients.APIClient
}

func NewReviewService(api *clients.APIClient) *ReviewService {
	return &ReviewService{api: api}
}

// ListByProduct returns all reviews for a product. Public.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	if productID == "" {
		return nil, apperrors.Validation("product id is required", nil)
	}

	var reviews []models.Review
	path := fmt.Sprintf("/reviews/%s", productID)
	if _, err := s.api.DoJSON(ctx, http.MethodGet, path, nil, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListMine returns the session user's reviews.
func (s *ReviewService) ListMine(ctx context.Context, session *models.Session) ([]models.Review, error) {
	if !session.Authenticated() {
		return nil, apperrors.AuthRequired("login required to view reviews", nil)
	}

	var reviews []models.Review
	if _, err := s.api.DoJSON(ctx, http.MethodGet, "/reviews/my", nil, session.Cookies, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MyReviewForProduct scans the user's review list for the given product.
// Returns nil when the user has not reviewed it.
func (s *ReviewService) MyReviewForProduct(ctx context.Context, session *models.Session, productID string) (*models.Review, error) {
	reviews, err := s.ListMine(ctx, session)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].ProductID == productID {
			return &reviews[i], nil
		}
	}
	return nil, nil
}

// Create submits a new review. Ownership and the one-review-per-product rule
// are enforced upstream.
func (s *ReviewService) Create(ctx context.Context, session *models.Session, productID string, rating int, title, content string) error {
	if !session.Authenticated() {
		return apperrors.AuthRequired("login required to write a review", nil)
	}
	if err := validateReviewInput(productID, rating, content); err != nil {
		return err
	}

	body := map[string]interface{}{
		"productId": productID,
		"rating":    rating,
		"title":     title,
		"content":   content,
	}
	_, err := s.api.DoJSON(ctx, http.MethodPost, "/reviews", nil, session.Cookies, body, nil)
	return err
}

// Update edits an existing review owned by the session user.
func (s *ReviewService) Update(ctx context.Context, session *models.Session, reviewID string, rating int, title, content string) error {
	if !session.Authenticated() {
		return apperrors.AuthRequired("login required to edit a review", nil)
	}
	if reviewID == "" {
		return apperrors.Validation("review id is required", nil)
	}
	if rating < 1 || rating > 5 {
		return apperrors.Validation("rating must be between 1 and 5", nil)
	}

	body := map[string]interface{}{
		"rating":  rating,
		"title":   title,
		"content": content,
	}
	path := fmt.Sprintf("/reviews/%s", reviewID)
	_, err := s.api.DoJSON(ctx, http.MethodPut, path, nil, session.Cookies, body, nil)
	return err
}

// Delete removes a review owned by the session user.
func (s *ReviewService) Delete(ctx context.Context, session *models.Session, reviewID string) error {
	if !session.Authenticated() {
		return apperrors.AuthRequired("login required to delete a review", nil)
	}
	if reviewID == "" {
		return apperrors.Validation("review id is required", nil)
	}

	path := fmt.Sprintf("/reviews/%s", reviewID)
	_, err := s.api.DoJSON(ctx, http.MethodDelete, path, nil, session.Cookies, nil, nil)
	return err
}

func validateReviewInput(productID string, rating int, content string) error {
	if productID == "" {
		return apperrors.Validation("product id is required", nil)
	}
	if rating < 1 || rating > 5 {
		return apperrors.Validation("rating must be between 1 and 5", nil)
	}
	if content == "" {
		return apperrors.Validation("content is required", nil)
	}
	return nil
}
