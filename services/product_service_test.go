package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"storefront-bff/clients"
	"storefront-bff/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFilterQueryValues(t *testing.T) {
	t.Run("empty filter yields no params", func(t *testing.T) {
		assert.Empty(t, ProductFilter{}.QueryValues())
	})

	t.Run("plain category name", func(t *testing.T) {
		params := ProductFilter{Category: "lifestyle"}.QueryValues()
		assert.Equal(t, "lifestyle", params.Get("categories"))
		assert.Empty(t, params.Get("isNew"))
		assert.Empty(t, params.Get("onSale"))
	})

	t.Run("synthetic new category maps to isNew flag", func(t *testing.T) {
		params := ProductFilter{Category: CategoryNew}.QueryValues()
		assert.Equal(t, "true", params.Get("isNew"))
		assert.Empty(t, params.Get("categories"))
	})

	t.Run("synthetic sale category maps to onSale flag", func(t *testing.T) {
		params := ProductFilter{Category: CategoryOnSale}.QueryValues()
		assert.Equal(t, "true", params.Get("onSale"))
		assert.Empty(t, params.Get("categories"))
	})

	t.Run("sizes and materials join as csv", func(t *testing.T) {
		params := ProductFilter{
			Sizes:     []int{250, 260},
			Materials: []string{"캔버스", "wool"},
		}.QueryValues()
		assert.Equal(t, "250,260", params.Get("sizes"))
		assert.Equal(t, "캔버스,wool", params.Get("materials"))
	})
}

// catalogUpstream filters server-side the way the consumed API does: OR
// within a facet, AND across facets.
func catalogUpstream(t *testing.T, catalog []models.Product) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/products") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		query := r.URL.Query()
		matched := []models.Product{}
		for _, p := range catalog {
			if matchesFacets(p, query) {
				matched = append(matched, p)
			}
		}
		json.NewEncoder(w).Encode(matched)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func matchesFacets(p models.Product, query url.Values) bool {
	if raw := query.Get("sizes"); raw != "" {
		anySize := false
		for _, s := range strings.Split(raw, ",") {
			size, _ := strconv.Atoi(s)
			for _, have := range p.AvailableSizes {
				if have == size {
					anySize = true
				}
			}
		}
		if !anySize {
			return false
		}
	}
	if raw := query.Get("materials"); raw != "" {
		anyMaterial := false
		for _, m := range strings.Split(raw, ",") {
			for _, have := range p.Materials {
				if have == m {
					anyMaterial = true
				}
			}
		}
		if !anyMaterial {
			return false
		}
	}
	if query.Get("categories") != "" {
		found := false
		for _, c := range p.Categories {
			if c == query.Get("categories") {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestQueryProductsFilterRoundTrip(t *testing.T) {
	catalog := []models.Product{
		{ID: "p1", AvailableSizes: []int{250}, Materials: []string{"캔버스"}},
		{ID: "p2", AvailableSizes: []int{260}, Materials: []string{"캔버스"}},
		{ID: "p3", AvailableSizes: []int{270}, Materials: []string{"캔버스"}},
		{ID: "p4", AvailableSizes: []int{250, 260}, Materials: []string{"wool"}},
	}
	srv := catalogUpstream(t, catalog)
	svc := NewProductService(clients.NewAPIClient(srv.URL, srv.URL, time.Second))

	views, err := svc.QueryProducts(context.Background(), ProductFilter{
		Sizes:     []int{250, 260},
		Materials: []string{"캔버스"},
	})
	require.NoError(t, err)

	require.Len(t, views, 2)
	for _, v := range views {
		hasSize := false
		for _, s := range v.AvailableSizes {
			if s == 250 || s == 260 {
				hasSize = true
			}
		}
		assert.True(t, hasSize, "every result must carry 250 or 260: %s", v.ID)
		assert.Contains(t, v.Materials, "캔버스")
	}
}

func sortFixture(t *testing.T) *ProductService {
	t.Helper()
	catalog := []models.Product{
		{ID: "a", Name: "mid", Price: 20000, DiscountRate: 50, Ranking: 999, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Name: "cheap", Price: 5000, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Name: "expensive", Price: 30000, Ranking: 1, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "d", Name: "unranked", Price: 15000},
	}
	srv := catalogUpstream(t, catalog)
	return NewProductService(clients.NewAPIClient(srv.URL, srv.URL, time.Second))
}

func ids(views []models.ProductView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestQueryProductsSorting(t *testing.T) {
	svc := sortFixture(t)
	ctx := context.Background()

	t.Run("recommend keeps server order", func(t *testing.T) {
		views, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortRecommend})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(views))
	})

	t.Run("low and high price are exact reverses", func(t *testing.T) {
		low, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortLowPrice})
		require.NoError(t, err)
		high, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortHighPrice})
		require.NoError(t, err)

		// discounted prices: a=10000, b=5000, c=30000, d=15000 (no ties)
		assert.Equal(t, []string{"b", "a", "d", "c"}, ids(low))

		reversed := ids(high)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, ids(low), reversed)
	})

	t.Run("low price uses discounted not raw price", func(t *testing.T) {
		views, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortLowPrice})
		require.NoError(t, err)
		// a's raw price (20000) is above d's (15000) but its discounted
		// price (10000) is below
		assert.Equal(t, []string{"b", "a", "d", "c"}, ids(views))
	})

	t.Run("sales ranks low before high, missing last", func(t *testing.T) {
		views, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortSales})
		require.NoError(t, err)
		got := ids(views)
		assert.Equal(t, "c", got[0], "ranking=1 comes first")
		assert.Equal(t, "a", got[1], "ranking=999 beats missing")
		assert.Equal(t, []string{"b", "d"}, got[2:], "missing rankings keep server order")
	})

	t.Run("newest sorts by creation time descending", func(t *testing.T) {
		views, err := svc.QueryProducts(ctx, ProductFilter{Sort: SortNewest})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "b", "d"}, ids(views))
	})
}

func TestDiscountedPriceRounding(t *testing.T) {
	t.Run("rounds half up once", func(t *testing.T) {
		assert.Equal(t, 9000, models.DiscountedPrice(10000, 10))
		assert.Equal(t, 8333, models.DiscountedPrice(9999, 16.66))
	})

	t.Run("idempotent under recomputation from raw inputs", func(t *testing.T) {
		first := models.DiscountedPrice(9999, 16.66)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, models.DiscountedPrice(9999, 16.66))
		}
	})

	t.Run("zero rate keeps the price", func(t *testing.T) {
		assert.Equal(t, 12345, models.DiscountedPrice(12345, 0))
	})
}

func TestBuildViewDerivedFields(t *testing.T) {
	catalog := []models.Product{{
		ID:             "p1",
		Price:          10000,
		DiscountRate:   10,
		AvailableSizes: []int{250, 260},
		Images:         []string{"/uploads/a.jpg", "https://cdn.example.com/b.jpg"},
	}}
	srv := catalogUpstream(t, catalog)
	svc := NewProductService(clients.NewAPIClient(srv.URL, "http://media:5000", time.Second))

	views, err := svc.QueryProducts(context.Background(), ProductFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	view := views[0]

	assert.Equal(t, 9000, view.DiscountedPrice)
	assert.True(t, view.IsSale)

	assert.Len(t, view.SizeStock, len(models.SizeUniverse), "every known size code gets a flag")
	assert.True(t, view.SizeStock[250])
	assert.True(t, view.SizeStock[260])
	assert.False(t, view.SizeStock[220])
	assert.False(t, view.SizeStock[310])

	assert.Equal(t, "http://media:5000/uploads/a.jpg", view.ImageURLs[0])
	assert.Equal(t, "https://cdn.example.com/b.jpg", view.ImageURLs[1])
}
