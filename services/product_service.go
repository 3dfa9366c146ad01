package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"storefront-bff/clients"
	apperrors "storefront-bff/errors"
	"storefront-bff/models"
)

// SortOption orders a fetched product page client-side. Filtering happens
// upstream; sorting over the returned page is deliberately kept on this side
// because the upstream exposes no sorted query endpoint.
type SortOption string

const (
	SortRecommend SortOption = "recommend"
	SortSales     SortOption = "sales"
	SortLowPrice  SortOption = "lowPrice"
	SortHighPrice SortOption = "highPrice"
	SortNewest    SortOption = "newest"
)

// Synthetic category values mapped to boolean query flags instead of a
// category name.
const (
	CategoryNew    = "new"
	CategoryOnSale = "sale"
)

// ProductFilter is the UI selection state for a product query. Sizes and
// materials are OR-combined within their facet; facets are AND-combined
// upstream.
type ProductFilter struct {
	Category  string
	Sizes     []int
	Materials []string
	Sort      SortOption
}

// QueryValues renders the filter as upstream query parameters.
func (f ProductFilter) QueryValues() url.Values {
	params := url.Values{}

	switch f.Category {
	case "":
	case CategoryNew:
		params.Set("isNew", "true")
	case CategoryOnSale:
		params.Set("onSale", "true")
	default:
		params.Set("categories", f.Category)
	}

	if len(f.Sizes) > 0 {
		sizes := make([]string, len(f.Sizes))
		for i, s := range f.Sizes {
			sizes[i] = strconv.Itoa(s)
		}
		params.Set("sizes", strings.Join(sizes, ","))
	}

	if len(f.Materials) > 0 {
		params.Set("materials", strings.Join(f.Materials, ","))
	}

	return params
}

// ProductService fetches the catalog and derives presentation fields.
type ProductService struct {
	api *clients.APIClient
}

func NewProductService(api *clients.APIClient) *ProductService {
	return &ProductService{api: api}
}

// QueryProducts fetches the filtered catalog page, applies the client-side
// sort and derives display fields once for the whole page.
func (s *ProductService) QueryProducts(ctx context.Context, filter ProductFilter) ([]models.ProductView, error) {
	var products []models.Product
	if _, err := s.api.DoJSON(ctx, http.MethodGet, "/products", filter.QueryValues(), nil, nil, &products); err != nil {
		return nil, err
	}

	sortProducts(products, filter.Sort)
	return s.buildViews(products), nil
}

// GetProduct fetches one product with derived fields.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.ProductView, error) {
	if productID == "" {
		return nil, apperrors.Validation("product id is required", nil)
	}

	var product models.Product
	path := fmt.Sprintf("/products/%s", productID)
	if _, err := s.api.DoJSON(ctx, http.MethodGet, path, nil, nil, nil, &product); err != nil {
		return nil, err
	}

	view := s.buildView(product)
	return &view, nil
}

// PopularProducts returns the pre-ranked popular list in server order.
func (s *ProductService) PopularProducts(ctx context.Context) ([]models.ProductView, error) {
	var products []models.Product
	if _, err := s.api.DoJSON(ctx, http.MethodGet, "/products/popular", nil, nil, nil, &products); err != nil {
		return nil, err
	}
	return s.buildViews(products), nil
}

// sortProducts orders the page in place with a stable sort. Recommend keeps
// the server order untouched.
func sortProducts(products []models.Product, option SortOption) {
	switch option {
	case SortSales:
		sort.SliceStable(products, func(i, j int) bool {
			return salesRank(products[i]) < salesRank(products[j])
		})
	case SortLowPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return discounted(products[i]) < discounted(products[j])
		})
	case SortHighPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return discounted(products[i]) > discounted(products[j])
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
				return products[i].CreatedAt.After(products[j].CreatedAt)
			}
			return products[i].ID > products[j].ID
		})
	}
}

// salesRank treats a missing ranking as worst; lower is better.
func salesRank(p models.Product) int {
	if p.Ranking <= 0 {
		return math.MaxInt
	}
	return p.Ranking
}

func discounted(p models.Product) int {
	return models.DiscountedPrice(p.Price, p.DiscountRate)
}

func (s *ProductService) buildViews(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, len(products))
	for i, p := range products {
		views[i] = s.buildView(p)
	}
	return views
}

func (s *ProductService) buildView(p models.Product) models.ProductView {
	urls := make([]string, len(p.Images))
	for i, img := range p.Images {
		urls[i] = s.api.ImageURL(img)
	}
	return models.ProductView{
		Product:         p,
		DiscountedPrice: discounted(p),
		IsSale:          p.DiscountRate > 0,
		SizeStock:       p.SizeStock(),
		ImageURLs:       urls,
	}
}
