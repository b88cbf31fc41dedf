package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jince360/styvia/internal/service"
	"github.com/jince360/styvia/pkg/health"
	"github.com/jince360/styvia/pkg/middleware"
)

// RouterDeps holds everything the router needs to register routes.
type RouterDeps struct {
	Storefront *service.StorefrontService
	Catalog    *service.CatalogService
	Taxonomy   *service.TaxonomyService
	Sizes      *service.SizeService
	Brands     *service.BrandService
	Sellers    *service.SellerService
	Promos     *service.PromoService

	Health *health.Handler
	CORS   middleware.CORSConfig
	Logger *slog.Logger
}

// NewRouter creates a chi router with all storefront and admin routes
// registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.PrometheusMetrics("styvia"))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	storefrontHandler := NewStorefrontHandler(deps.Storefront, deps.Logger)
	productHandler := NewProductHandler(deps.Catalog, deps.Logger)
	taxonomyHandler := NewTaxonomyHandler(deps.Taxonomy, deps.Logger)
	sizeHandler := NewSizeHandler(deps.Sizes, deps.Logger)
	brandHandler := NewBrandHandler(deps.Brands, deps.Logger)
	sellerHandler := NewSellerHandler(deps.Sellers, deps.Logger)
	promoHandler := NewPromoHandler(deps.Promos, deps.Logger)

	// Shopper-facing storefront endpoints
	r.Get("/api/v1/home", storefrontHandler.Home)
	r.Route("/api/v1/store", func(r chi.Router) {
		r.Get("/", storefrontHandler.BrowseAll)
		r.Get("/{mainCategorySlug}", storefrontHandler.Browse)
	})

	// Product catalog endpoints
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", productHandler.ListProducts)
		r.Get("/{idOrSlug}", productHandler.GetProduct)
		r.Post("/", productHandler.CreateProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)

		r.Post("/{id}/variants", productHandler.CreateVariant)
		r.Post("/{id}/images", productHandler.AddImage)
		r.Put("/{id}/images/{imageId}/primary", productHandler.SetPrimaryImage)
		r.Post("/{id}/images/reconcile", productHandler.ReconcilePrimaryImage)
	})

	r.Route("/api/v1/variants", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Put("/{id}/stock", productHandler.UpdateVariantStock)
	})

	r.Route("/api/v1/images", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Delete("/{id}", productHandler.DeleteImage)
	})

	// Taxonomy endpoints
	r.Route("/api/v1/main-categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", taxonomyHandler.ListMainCategories)
		r.Post("/", taxonomyHandler.CreateMainCategory)
		r.Get("/{id}", taxonomyHandler.GetMainCategory)
		r.Put("/{id}", taxonomyHandler.UpdateMainCategory)
		r.Delete("/{id}", taxonomyHandler.DeleteMainCategory)
		r.Get("/{id}/subcategories", taxonomyHandler.ListSubCategories)
	})

	r.Route("/api/v1/subcategories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", taxonomyHandler.CreateSubCategory)
		r.Put("/{id}", taxonomyHandler.UpdateSubCategory)
		r.Delete("/{id}", taxonomyHandler.DeleteSubCategory)
		r.Get("/{id}/categories", taxonomyHandler.ListCategories)
	})

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/tree", taxonomyHandler.Tree)
		r.Post("/", taxonomyHandler.CreateCategory)
		r.Put("/{id}", taxonomyHandler.UpdateCategory)
		r.Delete("/{id}", taxonomyHandler.DeleteCategory)
	})

	// Size taxonomy endpoints
	r.Route("/api/v1/sizes", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", sizeHandler.ListGroups)
		r.Post("/", sizeHandler.CreateSize)
		r.Delete("/{id}", sizeHandler.DeleteSize)
		r.Post("/groups", sizeHandler.CreateGroup)
		r.Get("/groups/{id}", sizeHandler.GetGroup)
	})

	// Brand endpoints
	r.Route("/api/v1/brands", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", brandHandler.ListBrands)
		r.Post("/", brandHandler.CreateBrand)
		r.Get("/{id}", brandHandler.GetBrand)
		r.Put("/{id}", brandHandler.UpdateBrand)
	})

	// Seller endpoints
	r.Route("/api/v1/sellers", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", sellerHandler.ListSellers)
		r.Post("/", sellerHandler.CreateSeller)
		r.Get("/{id}", sellerHandler.GetSeller)
		r.Put("/{id}", sellerHandler.UpdateSeller)
	})

	// Promo endpoints
	r.Route("/api/v1/heroes", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", promoHandler.ListHeroes)
		r.Post("/", promoHandler.CreateHero)
		r.Get("/{id}", promoHandler.GetHero)
		r.Put("/{id}", promoHandler.UpdateHero)
		r.Delete("/{id}", promoHandler.DeleteHero)
	})

	r.Route("/api/v1/banners", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", promoHandler.CreateBanner)
		r.Get("/{id}", promoHandler.GetBanner)
		r.Put("/{id}", promoHandler.UpdateBanner)
		r.Delete("/{id}", promoHandler.DeleteBanner)
		r.Post("/{id}/images", promoHandler.AddBannerImage)
	})

	r.Route("/api/v1/banner-images", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Delete("/{id}", promoHandler.DeleteBannerImage)
	})

	return r
}
