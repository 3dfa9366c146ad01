package controllers

import (
	"net/http"

	apperrors "storefront-bff/errors"
	"storefront-bff/middleware"
	"storefront-bff/models"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func cartPayload(session *models.Session) gin.H {
	return gin.H{
		"items":      session.Cart.Items,
		"count":      session.Cart.Count(),
		"totalPrice": session.Cart.TotalPrice(),
		"cartOpen":   session.CartOpen,
	}
}

// GetCart resyncs the mirror from the upstream and returns it. A failed
// fetch degrades to an empty cart rather than an error response.
func (cc *CartController) GetCart(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	cc.cart.FetchCart(c.Request.Context(), session)
	c.JSON(http.StatusOK, cartPayload(session))
}

// AddItem posts a line upstream, resyncs and opens the cart affordance.
func (cc *CartController) AddItem(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := cc.cart.AddToCart(c.Request.Context(), session, req.ProductID, req.Size, req.Quantity, req.SelectedImage); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartPayload(session))
}

// UpdateQuantity changes a line's quantity. Quantities below 1 produce no
// upstream request and leave the mirror untouched.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.Validation("invalid request payload", err))
		return
	}

	itemID := c.Param("itemId")
	if err := cc.cart.UpdateQuantity(c.Request.Context(), session, itemID, req.Quantity); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartPayload(session))
}

// RemoveItem deletes a line upstream and resyncs.
func (cc *CartController) RemoveItem(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	itemID := c.Param("itemId")
	if err := cc.cart.RemoveFromCart(c.Request.Context(), session, itemID); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartPayload(session))
}

// Checkout creates an order from the upstream cart and empties the mirror.
func (cc *CartController) Checkout(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	order, err := cc.cart.Checkout(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"cart":  cartPayload(session),
	})
}
