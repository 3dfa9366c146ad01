package controllers

import (
	"net/http"

	apperrors "storefront-bff/errors"
	"storefront-bff/middleware"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Mine lists the session user's reviews.
func (rc *ReviewController) Mine(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	reviews, err := rc.reviews.ListMine(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create submits a new review, then returns the refreshed my-reviews list.
func (rc *ReviewController) Create(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := rc.reviews.Create(c.Request.Context(), session, req.ProductID, req.Rating, req.Title, req.Content); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	reviews, err := rc.reviews.ListMine(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reviews": reviews})
}

// Update edits an owned review, then returns the refreshed list.
func (rc *ReviewController) Update(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := rc.reviews.Update(c.Request.Context(), session, c.Param("id"), req.Rating, req.Title, req.Content); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	reviews, err := rc.reviews.ListMine(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Delete removes an owned review, then returns the refreshed list.
func (rc *ReviewController) Delete(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := rc.reviews.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	reviews, err := rc.reviews.ListMine(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
