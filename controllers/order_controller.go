package controllers

import (
	"net/http"

	apperrors "storefront-bff/errors"
	"storefront-bff/middleware"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List returns the session user's order history.
func (oc *OrderController) List(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	orders, err := oc.orders.ListOrders(c.Request.Context(), session)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
