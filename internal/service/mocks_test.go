package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/event"
	"github.com/jince360/styvia/internal/repository"
	pkgkafka "github.com/jince360/styvia/pkg/kafka"
)

// --- Mock Repositories ---

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Product), args.Int(1), args.Error(2)
}

func (m *mockProductRepository) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) IncrementViewCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) CreateVariant(ctx context.Context, v *domain.ProductVariant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockProductRepository) GetVariantByID(ctx context.Context, id string) (*domain.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductVariant), args.Error(1)
}

func (m *mockProductRepository) UpdateVariantStock(ctx context.Context, id string, stock int) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}

func (m *mockProductRepository) ListVariantsByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.ProductVariant), args.Error(1)
}

func (m *mockProductRepository) AddImage(ctx context.Context, img *domain.ProductImage, makePrimary bool) error {
	args := m.Called(ctx, img, makePrimary)
	return args.Error(0)
}

func (m *mockProductRepository) SetPrimaryImage(ctx context.Context, productID, imageID string) error {
	args := m.Called(ctx, productID, imageID)
	return args.Error(0)
}

func (m *mockProductRepository) DeleteImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) ListImagesByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductImage, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.ProductImage), args.Error(1)
}

func (m *mockProductRepository) ReconcilePrimaryImage(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type mockStorefrontRepository struct {
	mock.Mock
}

func (m *mockStorefrontRepository) ListProducts(ctx context.Context, filter repository.StorefrontFilter) ([]*domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Product), args.Int(1), args.Error(2)
}

func (m *mockStorefrontRepository) DistinctColors(ctx context.Context, mainCategoryID string) ([]string, error) {
	args := m.Called(ctx, mainCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockStorefrontRepository) PriceRange(ctx context.Context, mainCategoryID string) (*domain.PriceRange, error) {
	args := m.Called(ctx, mainCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRange), args.Error(1)
}

func (m *mockStorefrontRepository) BrandsInScope(ctx context.Context, mainCategoryID string) ([]*domain.Brand, error) {
	args := m.Called(ctx, mainCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Brand), args.Error(1)
}

func (m *mockStorefrontRepository) BrandsByIDs(ctx context.Context, ids []string) (map[string]*domain.Brand, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Brand), args.Error(1)
}

func (m *mockStorefrontRepository) SellersByIDs(ctx context.Context, ids []string) (map[string]*domain.Seller, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Seller), args.Error(1)
}

type mockTaxonomyRepository struct {
	mock.Mock
}

func (m *mockTaxonomyRepository) CreateMainCategory(ctx context.Context, mc *domain.MainCategory) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) GetMainCategoryByID(ctx context.Context, id string) (*domain.MainCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MainCategory), args.Error(1)
}

func (m *mockTaxonomyRepository) GetMainCategoryBySlug(ctx context.Context, slug string) (*domain.MainCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MainCategory), args.Error(1)
}

func (m *mockTaxonomyRepository) UpdateMainCategory(ctx context.Context, mc *domain.MainCategory) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) DeleteMainCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) ListMainCategories(ctx context.Context, activeOnly bool) ([]*domain.MainCategory, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MainCategory), args.Error(1)
}

func (m *mockTaxonomyRepository) CreateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	args := m.Called(ctx, sc)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) GetSubCategoryByID(ctx context.Context, id string) (*domain.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubCategory), args.Error(1)
}

func (m *mockTaxonomyRepository) UpdateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	args := m.Called(ctx, sc)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) DeleteSubCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) ListSubCategories(ctx context.Context, mainCategoryID string, activeOnly bool) ([]*domain.SubCategory, error) {
	args := m.Called(ctx, mainCategoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SubCategory), args.Error(1)
}

func (m *mockTaxonomyRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockTaxonomyRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaxonomyRepository) ListCategories(ctx context.Context, subCategoryID string, activeOnly bool) ([]*domain.Category, error) {
	args := m.Called(ctx, subCategoryID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *mockTaxonomyRepository) ListTree(ctx context.Context) ([]*domain.MainCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MainCategory), args.Error(1)
}

type mockSizeRepository struct {
	mock.Mock
}

func (m *mockSizeRepository) CreateGroup(ctx context.Context, g *domain.SizeGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *mockSizeRepository) GetGroupByID(ctx context.Context, id string) (*domain.SizeGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SizeGroup), args.Error(1)
}

func (m *mockSizeRepository) ListGroups(ctx context.Context, activeOnly bool) ([]*domain.SizeGroup, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SizeGroup), args.Error(1)
}

func (m *mockSizeRepository) CreateSize(ctx context.Context, s *domain.Size) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSizeRepository) GetSizeByID(ctx context.Context, id string) (*domain.Size, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Size), args.Error(1)
}

func (m *mockSizeRepository) DeleteSize(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepository) Update(ctx context.Context, b *domain.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBrandRepository) List(ctx context.Context, filter domain.BrandFilter) ([]*domain.Brand, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Brand), args.Error(1)
}

type mockSellerRepository struct {
	mock.Mock
}

func (m *mockSellerRepository) Create(ctx context.Context, s *domain.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seller), args.Error(1)
}

func (m *mockSellerRepository) Update(ctx context.Context, s *domain.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSellerRepository) List(ctx context.Context, filter domain.SellerFilter) ([]*domain.Seller, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Seller), args.Int(1), args.Error(2)
}

type mockPromoRepository struct {
	mock.Mock
}

func (m *mockPromoRepository) CreateHero(ctx context.Context, h *domain.Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockPromoRepository) GetHeroByID(ctx context.Context, id string) (*domain.Hero, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *mockPromoRepository) UpdateHero(ctx context.Context, h *domain.Hero) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockPromoRepository) DeleteHero(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPromoRepository) ListHeroes(ctx context.Context, activeOnly bool) ([]*domain.Hero, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Hero), args.Error(1)
}

func (m *mockPromoRepository) CountActiveHeroes(ctx context.Context, excludeID string) (int, error) {
	args := m.Called(ctx, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *mockPromoRepository) CreateBanner(ctx context.Context, b *domain.Banner) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockPromoRepository) GetBannerByID(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Banner), args.Error(1)
}

func (m *mockPromoRepository) GetActiveBannerWithImages(ctx context.Context, mainCategoryID string) (*domain.Banner, error) {
	args := m.Called(ctx, mainCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Banner), args.Error(1)
}

func (m *mockPromoRepository) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockPromoRepository) DeleteBanner(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPromoRepository) CountActiveBanners(ctx context.Context, mainCategoryID, excludeID string) (int, error) {
	args := m.Called(ctx, mainCategoryID, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *mockPromoRepository) AddBannerImage(ctx context.Context, img *domain.BannerImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *mockPromoRepository) DeleteBannerImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestProducer() *event.Producer {
	logger := newTestLogger()
	// No broker listens here; publish failures are swallowed by the services.
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
