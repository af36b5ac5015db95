package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/chukyobi/lumina-eccomerce/catalog"
)

// --- Mock provider ---

type mockCatalog struct {
	products   []catalog.Product
	categories []catalog.Category

	lastFilter catalog.Filter
	lastID     string
	lastSlug   string
}

func (m *mockCatalog) List(filter catalog.Filter) []catalog.Product {
	m.lastFilter = filter

	out := []catalog.Product{}
	for _, p := range m.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (m *mockCatalog) GetByID(id string) *catalog.Product {
	m.lastID = id
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i]
		}
	}
	return nil
}

func (m *mockCatalog) ListCategories() []catalog.Category {
	return m.categories
}

func (m *mockCatalog) GetCategoryBySlug(slug string) *catalog.Category {
	m.lastSlug = slug
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i]
		}
	}
	return nil
}

func (m *mockCatalog) ListByCategorySlug(slug string) []catalog.Product {
	category := m.GetCategoryBySlug(slug)
	if category == nil {
		return []catalog.Product{}
	}
	return m.List(catalog.Filter{CategoryID: category.ID})
}

func newRouter(provider CatalogProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(provider))
	r.GET("/products/:id", GetProductByID(provider))
	r.GET("/categories", GetCategories(provider))
	r.GET("/categories/:slug", GetCategoryBySlug(provider))
	return r
}

func fixtureCatalog() *mockCatalog {
	return &mockCatalog{
		products: []catalog.Product{
			{ID: "prod_001", Name: "Jacket", Price: 350, CategoryID: "cat_men", Featured: true, ImageURL: "/img/1.jpg"},
			{ID: "prod_002", Name: "Tee", Price: 35, CategoryID: "cat_men", ImageURL: catalog.PlaceholderImageURL},
			{ID: "prod_003", Name: "Dress", Price: 120, CategoryID: "cat_women", Featured: true, ImageURL: "/img/3.jpg"},
		},
		categories: []catalog.Category{
			{ID: "cat_men", Name: "Men", Slug: "men"},
			{ID: "cat_women", Name: "Women", Slug: "women"},
		},
	}
}

func TestGetProductsNoFilter(t *testing.T) {
	provider := fixtureCatalog()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	newRouter(provider).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 3)
	assert.Equal(t, catalog.Filter{}, provider.lastFilter)
}

func TestGetProductsCategoryFilter(t *testing.T) {
	provider := fixtureCatalog()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?category=cat_men", nil)

	newRouter(provider).ServeHTTP(w, req)

	var got []catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "cat_men", p.CategoryID)
	}
}

func TestGetProductsCombinedFilters(t *testing.T) {
	provider := fixtureCatalog()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?category=cat_men&featured=true", nil)

	newRouter(provider).ServeHTTP(w, req)

	var got []catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "prod_001", got[0].ID)
	assert.Equal(t, catalog.Filter{CategoryID: "cat_men", Featured: true}, provider.lastFilter)
}

func TestGetProductsEmptyCatalogIsStillOK(t *testing.T) {
	// The reader degrades to an empty list on store failure; the handler
	// must answer 200 with [] rather than an error.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	newRouter(&mockCatalog{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductByID(t *testing.T) {
	provider := fixtureCatalog()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/prod_002", nil)

	newRouter(provider).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "prod_002", got.ID)
	assert.Equal(t, catalog.PlaceholderImageURL, got.ImageURL)
}

func TestGetProductByIDNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)

	newRouter(fixtureCatalog()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)

	newRouter(fixtureCatalog()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []catalog.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetCategoryBySlug(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/men", nil)

	newRouter(fixtureCatalog()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Category catalog.Category  `json:"category"`
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "cat_men", got.Category.ID)
	assert.Len(t, got.Products, 2)
}

func TestGetCategoryBySlugNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/unknown", nil)

	newRouter(fixtureCatalog()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
