package controllers

import (
	"net/http"

	apperrors "storefront-bff/errors"
	"storefront-bff/middleware"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// Stats returns per-product sales aggregates for a date range, plus totals.
func (ac *AdminController) Stats(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	stats, err := ac.admin.Stats(c.Request.Context(), session, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	totalQuantity, totalRevenue := services.StatsTotals(stats)
	c.JSON(http.StatusOK, gin.H{
		"stats":         stats,
		"totalQuantity": totalQuantity,
		"totalRevenue":  totalRevenue,
	})
}
