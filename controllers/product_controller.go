package controllers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "storefront-bff/errors"
	"storefront-bff/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
	reviews  *services.ReviewService
}

func NewProductController(products *services.ProductService, reviews *services.ReviewService) *ProductController {
	return &ProductController{products: products, reviews: reviews}
}

// List queries the catalog with the UI's facet selection and sort option.
// Query params: category, sizes (csv), materials (csv), sort.
func (pc *ProductController) List(c *gin.Context) {
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Sort:     services.SortOption(c.DefaultQuery("sort", string(services.SortRecommend))),
	}

	if raw := c.Query("sizes"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			size, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				apperrors.HandleError(c, apperrors.Validation("sizes must be numeric codes", err))
				return
			}
			filter.Sizes = append(filter.Sizes, size)
		}
	}

	if raw := c.Query("materials"); raw != "" {
		filter.Materials = strings.Split(raw, ",")
	}

	views, err := pc.products.QueryProducts(c.Request.Context(), filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": views})
}

// Popular returns the pre-ranked popular products.
func (pc *ProductController) Popular(c *gin.Context) {
	views, err := pc.products.PopularProducts(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": views})
}

// Detail returns one product with derived display fields.
func (pc *ProductController) Detail(c *gin.Context) {
	view, err := pc.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": view})
}

// Reviews lists all reviews for one product.
func (pc *ProductController) Reviews(c *gin.Context) {
	reviews, err := pc.reviews.ListByProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
