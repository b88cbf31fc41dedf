package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/repository"
	"github.com/jince360/styvia/internal/service"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

type storefrontFixture struct {
	products   *mockProductRepository
	storefront *mockStorefrontRepository
	taxonomy   *mockTaxonomyRepository
	promos     *mockPromoRepository
	router     *chi.Mux
}

func newStorefrontFixture() *storefrontFixture {
	products := new(mockProductRepository)
	storefront := new(mockStorefrontRepository)
	taxonomy := new(mockTaxonomyRepository)
	promos := new(mockPromoRepository)

	logger := handlerTestLogger()
	svc := service.NewStorefrontService(storefront, products, taxonomy, promos, logger)
	handler := NewStorefrontHandler(svc, logger)

	r := chi.NewRouter()
	r.Get("/api/v1/home", handler.Home)
	r.Route("/api/v1/store", func(r chi.Router) {
		r.Get("/", handler.BrowseAll)
		r.Get("/{mainCategorySlug}", handler.Browse)
	})

	return &storefrontFixture{
		products:   products,
		storefront: storefront,
		taxonomy:   taxonomy,
		promos:     promos,
		router:     r,
	}
}

func activeMainCategory() *domain.MainCategory {
	now := time.Now().UTC()
	return &domain.MainCategory{
		ID:        "550e8400-e29b-41d4-a716-446655440010",
		Name:      "Women",
		Slug:      "women",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// expectBrowseScaffolding wires the facet, banner, and enrichment loads for a
// browse request that returns no products.
func expectBrowseScaffolding(f *storefrontFixture, mainCategoryID string) {
	f.taxonomy.On("ListSubCategories", mock.Anything, mainCategoryID, true).Return([]*domain.SubCategory{}, nil)
	f.storefront.On("BrandsInScope", mock.Anything, mainCategoryID).Return([]*domain.Brand{}, nil)
	f.storefront.On("DistinctColors", mock.Anything, mainCategoryID).Return([]string{}, nil)
	f.storefront.On("PriceRange", mock.Anything, mainCategoryID).Return(&domain.PriceRange{}, nil)
	f.promos.On("GetActiveBannerWithImages", mock.Anything, mainCategoryID).Return(nil, apperrors.ErrNotFound)

	f.products.On("ListImagesByProductIDs", mock.Anything, mock.Anything).Return(map[string][]domain.ProductImage{}, nil)
	f.products.On("ListVariantsByProductIDs", mock.Anything, mock.Anything).Return(map[string][]domain.ProductVariant{}, nil)
	f.storefront.On("BrandsByIDs", mock.Anything, mock.Anything).Return(map[string]*domain.Brand{}, nil)
	f.storefront.On("SellersByIDs", mock.Anything, mock.Anything).Return(map[string]*domain.Seller{}, nil)
}

func TestHomeEndpoint_Success(t *testing.T) {
	f := newStorefrontFixture()

	f.promos.On("ListHeroes", mock.Anything, true).Return([]*domain.Hero{
		{ID: "hero-1", Title: "Summer Sale", IsActive: true},
	}, nil)
	f.taxonomy.On("ListTree", mock.Anything).Return([]*domain.MainCategory{activeMainCategory()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/home", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["heroes"], 1)
	assert.Len(t, data["main_categories"], 1)
}

func TestHomeEndpoint_RepositoryError(t *testing.T) {
	f := newStorefrontFixture()

	f.promos.On("ListHeroes", mock.Anything, true).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/home", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBrowseAllEndpoint_NoFacetsNoBanner(t *testing.T) {
	f := newStorefrontFixture()

	f.storefront.On("ListProducts", mock.Anything, mock.MatchedBy(func(filter repository.StorefrontFilter) bool {
		return filter.MainCategoryID == nil && filter.Page == 1 && filter.PerPage == 20
	})).Return([]*domain.Product{}, 0, nil)
	f.products.On("ListImagesByProductIDs", mock.Anything, mock.Anything).Return(map[string][]domain.ProductImage{}, nil)
	f.products.On("ListVariantsByProductIDs", mock.Anything, mock.Anything).Return(map[string][]domain.ProductVariant{}, nil)
	f.storefront.On("BrandsByIDs", mock.Anything, mock.Anything).Return(map[string]*domain.Brand{}, nil)
	f.storefront.On("SellersByIDs", mock.Anything, mock.Anything).Return(map[string]*domain.Seller{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, data, "main_category")
	assert.NotContains(t, data, "filter_data")
	f.taxonomy.AssertNotCalled(t, "ListSubCategories", mock.Anything, mock.Anything, mock.Anything)
	f.promos.AssertNotCalled(t, "GetActiveBannerWithImages", mock.Anything, mock.Anything)
}

func TestBrowseEndpoint_Success(t *testing.T) {
	f := newStorefrontFixture()
	mc := activeMainCategory()

	f.taxonomy.On("GetMainCategoryBySlug", mock.Anything, "women").Return(mc, nil)
	f.storefront.On("ListProducts", mock.Anything, mock.AnythingOfType("repository.StorefrontFilter")).
		Return([]*domain.Product{}, 0, nil)
	expectBrowseScaffolding(f, mc.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/women", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(20), data["per_page"])
	f.taxonomy.AssertExpectations(t)
}

func TestBrowseEndpoint_UnknownSlug(t *testing.T) {
	f := newStorefrontFixture()

	f.taxonomy.On("GetMainCategoryBySlug", mock.Anything, "no-such").Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/no-such", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
}

func TestBrowseEndpoint_FilterParsing(t *testing.T) {
	f := newStorefrontFixture()
	mc := activeMainCategory()
	brandID := "550e8400-e29b-41d4-a716-446655440099"

	f.taxonomy.On("GetMainCategoryBySlug", mock.Anything, "women").Return(mc, nil)
	f.storefront.On("ListProducts", mock.Anything, mock.MatchedBy(func(filter repository.StorefrontFilter) bool {
		return len(filter.SubCategorySlugs) == 2 &&
			filter.SubCategorySlugs[0] == "shoes" &&
			len(filter.BrandIDs) == 1 &&
			filter.BrandIDs[0] == brandID &&
			filter.PriceMin != nil && *filter.PriceMin == 1000 &&
			filter.PriceMax != nil && *filter.PriceMax == 5000 &&
			filter.Page == 2 &&
			filter.PerPage == 48
	})).Return([]*domain.Product{}, 0, nil)
	expectBrowseScaffolding(f, mc.ID)

	target := "/api/v1/store/women?subcategory=shoes&subcategory=bags&brand=" + brandID +
		"&brand=not-a-uuid&color=&price_range=1000-5000&page=2&per_page=48"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.storefront.AssertExpectations(t)
}

func TestBrowseEndpoint_MalformedFiltersDropped(t *testing.T) {
	f := newStorefrontFixture()
	mc := activeMainCategory()

	f.taxonomy.On("GetMainCategoryBySlug", mock.Anything, "women").Return(mc, nil)
	f.storefront.On("ListProducts", mock.Anything, mock.MatchedBy(func(filter repository.StorefrontFilter) bool {
		return len(filter.BrandIDs) == 0 &&
			filter.PriceMin == nil &&
			filter.PriceMax == nil &&
			filter.Page == 1 &&
			filter.PerPage == 20
	})).Return([]*domain.Product{}, 0, nil)
	expectBrowseScaffolding(f, mc.ID)

	target := "/api/v1/store/women?brand=oops&price_range=banana&page=zero&per_page=9999"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.storefront.AssertExpectations(t)
}
