package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/event"
	"github.com/jince360/styvia/internal/repository"
	apperrors "github.com/jince360/styvia/pkg/errors"
	"github.com/jince360/styvia/pkg/slug"
	"github.com/jince360/styvia/pkg/validator"
)

// CatalogService implements the business logic for product, variant, and
// image operations.
type CatalogService struct {
	repo     repository.ProductRepository
	taxonomy domain.TaxonomyRepository
	sizes    domain.SizeRepository
	enricher *productEnricher
	producer *event.Producer
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	repo repository.ProductRepository,
	storefront repository.StorefrontRepository,
	taxonomy domain.TaxonomyRepository,
	sizes domain.SizeRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		repo:     repo,
		taxonomy: taxonomy,
		sizes:    sizes,
		enricher: &productEnricher{products: repo, storefront: storefront, logger: logger},
		producer: producer,
		logger:   logger,
	}
}

// CreateProduct creates a new product. The slug and SKU are derived from the
// name when absent and stay fixed for the product's lifetime.
func (s *CatalogService) CreateProduct(ctx context.Context, input *domain.CreateProductInput) (*domain.Product, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	if input.SalePrice != nil && *input.SalePrice >= input.BasePrice {
		return nil, apperrors.InvalidInput("sale price must be below the base price")
	}

	mainID, subID, catID, err := s.resolveTaxonomyPath(ctx, input.MainCategoryID, input.SubCategoryID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := uuid.New().String()
	slugVal := slug.Generate(input.Name)

	sku := deriveSKU(slugVal, id)
	if input.SKU != nil {
		sku = *input.SKU
	}

	product := &domain.Product{
		ID:             id,
		MainCategoryID: mainID,
		SubCategoryID:  subID,
		CategoryID:     catID,
		BrandID:        input.BrandID,
		SellerID:       input.SellerID,
		SizeGroupID:    input.SizeGroupID,
		Name:           input.Name,
		Slug:           slugVal,
		SKU:            sku,
		Description:    input.Description,
		Color:          input.Color,
		BasePrice:      input.BasePrice,
		SalePrice:      input.SalePrice,
		IsActive:       boolOrDefault(input.IsActive, true),
		IsFeatured:     input.IsFeatured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// GetProduct retrieves a product by ID and enriches it with images, variants,
// brand, and seller information.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return s.enricher.enrich(ctx, []*domain.Product{product})[0], nil
}

// GetProductBySlug retrieves a product by slug for the shopper detail page,
// enriches it, and bumps its view counter.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slugVal string) (*domain.ProductDetail, error) {
	product, err := s.repo.GetBySlug(ctx, slugVal)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}

	if err := s.repo.IncrementViewCount(ctx, product.ID); err != nil {
		s.logger.ErrorContext(ctx, "failed to increment view count",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	return s.enricher.enrich(ctx, []*domain.Product{product})[0], nil
}

// ListProducts returns a filtered, paginated, enriched product list for the
// admin surface.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*domain.ProductDetail, int, error) {
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return s.enricher.enrich(ctx, products), total, nil
}

// UpdateProduct applies partial updates to an existing product. The slug and
// SKU never change after creation, even on rename.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input *domain.UpdateProductInput) (*domain.Product, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Color != nil {
		product.Color = input.Color
	}

	if input.MainCategoryID != nil || input.SubCategoryID != nil || input.CategoryID != nil {
		mainID, subID, catID, err := s.resolveTaxonomyPath(ctx, input.MainCategoryID, input.SubCategoryID, input.CategoryID)
		if err != nil {
			return nil, err
		}
		product.MainCategoryID = mainID
		product.SubCategoryID = subID
		product.CategoryID = catID
	}

	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}
	if input.SellerID != nil {
		product.SellerID = input.SellerID
	}
	if input.SizeGroupID != nil {
		product.SizeGroupID = input.SizeGroupID
	}

	if input.BasePrice != nil {
		product.BasePrice = *input.BasePrice
	}
	if input.ClearSalePrice {
		product.SalePrice = nil
	} else if input.SalePrice != nil {
		product.SalePrice = input.SalePrice
	}
	if product.SalePrice != nil && *product.SalePrice >= product.BasePrice {
		return nil, apperrors.InvalidInput("sale price must be below the base price")
	}

	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.producer.PublishProductUpdated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.updated event",
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// DeleteProduct removes a product by its ID. Variants and images go with it.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if err := s.producer.PublishProductDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

// CreateVariant adds a variant to a product. When the product carries a size
// group, the variant's size must belong to it.
func (s *CatalogService) CreateVariant(ctx context.Context, productID string, input *domain.CreateVariantInput) (*domain.ProductVariant, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product for variant: %w", err)
	}

	if input.SizeID != nil {
		size, err := s.sizes.GetSizeByID(ctx, *input.SizeID)
		if err != nil {
			return nil, apperrors.InvalidInput(fmt.Sprintf("unknown size %q", *input.SizeID))
		}
		if product.SizeGroupID != nil && size.SizeGroupID != *product.SizeGroupID {
			return nil, apperrors.InvalidInput("size does not belong to the product's size group")
		}
	}

	now := time.Now().UTC()
	id := uuid.New().String()

	sku := fmt.Sprintf("%s-%s", product.SKU, strings.ToUpper(id[:8]))
	if input.SKU != nil {
		sku = *input.SKU
	}

	variant := &domain.ProductVariant{
		ID:              id,
		ProductID:       product.ID,
		SizeID:          input.SizeID,
		SKU:             sku,
		Stock:           input.Stock,
		PriceAdjustment: input.PriceAdjustment,
		IsActive:        boolOrDefault(input.IsActive, true),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateVariant(ctx, variant); err != nil {
		return nil, fmt.Errorf("create variant: %w", err)
	}

	s.logger.InfoContext(ctx, "variant created",
		slog.String("variant_id", variant.ID),
		slog.String("product_id", product.ID),
	)

	return variant, nil
}

// UpdateVariantStock sets the stock level of a variant.
func (s *CatalogService) UpdateVariantStock(ctx context.Context, variantID string, stock int) error {
	if stock < 0 {
		return apperrors.InvalidInput("stock must not be negative")
	}

	if err := s.repo.UpdateVariantStock(ctx, variantID, stock); err != nil {
		return fmt.Errorf("update variant stock: %w", err)
	}

	s.logger.InfoContext(ctx, "variant stock updated",
		slog.String("variant_id", variantID),
		slog.Int("stock", stock),
	)

	return nil
}

// AddImage attaches an image to a product. The product's first image always
// becomes primary; a later image flagged primary demotes the previous one.
func (s *CatalogService) AddImage(ctx context.Context, productID string, input *domain.AddImageInput) (*domain.ProductImage, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product for image: %w", err)
	}

	img := &domain.ProductImage{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		ImageURL:  input.ImageURL,
		AltText:   input.AltText,
		SortOrder: input.SortOrder,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddImage(ctx, img, input.IsPrimary); err != nil {
		return nil, fmt.Errorf("add image: %w", err)
	}

	s.logger.InfoContext(ctx, "image added",
		slog.String("image_id", img.ID),
		slog.String("product_id", product.ID),
		slog.Bool("is_primary", img.IsPrimary),
	)

	return img, nil
}

// SetPrimaryImage promotes one of a product's images to primary.
func (s *CatalogService) SetPrimaryImage(ctx context.Context, productID, imageID string) error {
	if err := s.repo.SetPrimaryImage(ctx, productID, imageID); err != nil {
		return fmt.Errorf("set primary image: %w", err)
	}

	s.logger.InfoContext(ctx, "primary image set",
		slog.String("image_id", imageID),
		slog.String("product_id", productID),
	)

	return nil
}

// DeleteImage removes a product image, promoting a replacement primary when
// needed.
func (s *CatalogService) DeleteImage(ctx context.Context, imageID string) error {
	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	s.logger.InfoContext(ctx, "image deleted",
		slog.String("image_id", imageID),
	)

	return nil
}

// ReconcilePrimaryImage repairs the primary flag of a product's images after
// out-of-band edits. Returns the number of rows changed.
func (s *CatalogService) ReconcilePrimaryImage(ctx context.Context, productID string) (int, error) {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return 0, fmt.Errorf("get product for reconcile: %w", err)
	}

	changed, err := s.repo.ReconcilePrimaryImage(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("reconcile primary image: %w", err)
	}

	if changed > 0 {
		s.logger.InfoContext(ctx, "primary image reconciled",
			slog.String("product_id", productID),
			slog.Int("rows_changed", changed),
		)
	}

	return changed, nil
}

// resolveTaxonomyPath derives the full taxonomy path from the deepest node
// given. Ancestors also given must agree with the derived path.
func (s *CatalogService) resolveTaxonomyPath(ctx context.Context, mainID, subID, catID *string) (*string, *string, *string, error) {
	if catID != nil {
		category, err := s.taxonomy.GetCategoryByID(ctx, *catID)
		if err != nil {
			return nil, nil, nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", *catID))
		}
		if subID != nil && *subID != category.SubCategoryID {
			return nil, nil, nil, apperrors.InvalidInput("category does not belong to the given subcategory")
		}
		subID = &category.SubCategoryID
	}

	if subID != nil {
		sub, err := s.taxonomy.GetSubCategoryByID(ctx, *subID)
		if err != nil {
			return nil, nil, nil, apperrors.InvalidInput(fmt.Sprintf("unknown subcategory %q", *subID))
		}
		if mainID != nil && *mainID != sub.MainCategoryID {
			return nil, nil, nil, apperrors.InvalidInput("subcategory does not belong to the given main category")
		}
		mainID = &sub.MainCategoryID
	}

	if mainID != nil && subID == nil {
		if _, err := s.taxonomy.GetMainCategoryByID(ctx, *mainID); err != nil {
			return nil, nil, nil, apperrors.InvalidInput(fmt.Sprintf("unknown main category %q", *mainID))
		}
	}

	return mainID, subID, catID, nil
}

// deriveSKU builds a default SKU from the product slug and a short unique
// suffix.
func deriveSKU(slugVal, id string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(slugVal), strings.ToUpper(id[:8]))
}

// clampPage normalizes pagination parameters.
func clampPage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
