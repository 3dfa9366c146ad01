package controllers

import (
	apperrors "storefront-bff/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginRequest carries credentials submitted by the UI.
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddToCartRequest adds one line to the cart.
type AddToCartRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	Size          string `json:"size" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	SelectedImage string `json:"selectedImage"`
}

// UpdateQuantityRequest changes a line's quantity. Quantities below 1 are
// not a validation error: the store treats them as a no-op.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CreateReviewRequest submits a new product review.
type CreateReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string `json:"title"`
	Content   string `json:"content" validate:"required"`
}

// UpdateReviewRequest edits an existing review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// bindAndValidate decodes the JSON body and checks the validate tags before
// any request leaves for the upstream.
func bindAndValidate(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperrors.Validation("invalid request payload", err)
	}
	if err := validate.Struct(out); err != nil {
		return apperrors.Validation("invalid request payload", err)
	}
	return nil
}
