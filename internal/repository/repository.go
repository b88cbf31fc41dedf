package repository

import (
	"context"

	"github.com/jince360/styvia/internal/domain"
)

// ProductFilter defines filter criteria for admin product listings.
type ProductFilter struct {
	MainCategoryID *string
	SubCategoryID  *string
	CategoryID     *string
	BrandID        *string
	SellerID       *string
	IsActive       *bool
	IsFeatured     *bool
	Search         *string
	Page           int
	PerPage        int
}

// StorefrontFilter defines the shopper-facing browse criteria. Dimensions
// AND-combine; the values inside one dimension OR-combine. Price bounds apply
// to the effective price (sale price when set, base price otherwise).
type StorefrontFilter struct {
	MainCategoryID   *string
	SubCategorySlugs []string
	CategorySlugs    []string
	BrandIDs         []string
	Colors           []string
	PriceMin         *int64
	PriceMax         *int64
	Page             int
	PerPage          int
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, p *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// List returns products matching the given filter along with the total count.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes a product; its variants and images cascade.
	Delete(ctx context.Context, id string) error

	// IncrementViewCount bumps the product's view counter.
	IncrementViewCount(ctx context.Context, id string) error

	// CreateVariant inserts a new product variant.
	CreateVariant(ctx context.Context, v *domain.ProductVariant) error

	// GetVariantByID retrieves a variant by its identifier.
	GetVariantByID(ctx context.Context, id string) (*domain.ProductVariant, error)

	// UpdateVariantStock sets the stock level of a variant.
	UpdateVariantStock(ctx context.Context, id string, stock int) error

	// ListVariantsByProductIDs returns active variants for the given products,
	// keyed by product ID.
	ListVariantsByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error)

	// AddImage inserts a product image. The first image of a product becomes
	// primary; a later image flagged primary demotes the previous one in the
	// same transaction.
	AddImage(ctx context.Context, img *domain.ProductImage, makePrimary bool) error

	// SetPrimaryImage promotes an image to primary and demotes all other
	// images of the same product atomically.
	SetPrimaryImage(ctx context.Context, productID, imageID string) error

	// DeleteImage removes an image. If the primary image is deleted and
	// others remain, the lowest (sort_order, created_at) image is promoted.
	DeleteImage(ctx context.Context, id string) error

	// ListImagesByProductIDs returns images for the given products ordered by
	// sort_order, keyed by product ID.
	ListImagesByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductImage, error)

	// ReconcilePrimaryImage repairs a product whose images hold zero or
	// multiple primary flags, keeping the lowest (sort_order, created_at)
	// image primary. Returns the number of rows changed.
	ReconcilePrimaryImage(ctx context.Context, productID string) (int, error)
}

// StorefrontRepository serves the shopper read path: filtered product pages
// and the facet source data for a main-category scope.
type StorefrontRepository interface {
	// ListProducts returns active products matching the filter along with the
	// total count, newest first.
	ListProducts(ctx context.Context, filter StorefrontFilter) ([]*domain.Product, int, error)

	// DistinctColors returns the distinct colors of active products in the
	// main-category scope, sorted ascending.
	DistinctColors(ctx context.Context, mainCategoryID string) ([]string, error)

	// PriceRange returns the min and max base price across active
	// products in the main-category scope, or nil when the scope is empty.
	PriceRange(ctx context.Context, mainCategoryID string) (*domain.PriceRange, error)

	// BrandsInScope returns the distinct active brands of active products in
	// the main-category scope, ordered by name.
	BrandsInScope(ctx context.Context, mainCategoryID string) ([]*domain.Brand, error)

	// BrandsByIDs returns brands for the given identifiers, keyed by ID.
	BrandsByIDs(ctx context.Context, ids []string) (map[string]*domain.Brand, error)

	// SellersByIDs returns sellers for the given identifiers, keyed by ID.
	SellersByIDs(ctx context.Context, ids []string) (map[string]*domain.Seller, error)
}
