package service

import (
	"context"
	"log/slog"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/repository"
)

// productEnricher batch-loads the relations of a product page: images,
// variants, brands, and sellers. Shared by the admin catalog and the shopper
// storefront read path.
type productEnricher struct {
	products   repository.ProductRepository
	storefront repository.StorefrontRepository
	logger     *slog.Logger
}

// enrich assembles product details for the given products. Relation load
// failures degrade to empty relations rather than failing the request.
func (e *productEnricher) enrich(ctx context.Context, products []*domain.Product) []*domain.ProductDetail {
	ids := make([]string, len(products))
	brandIDs := make([]string, 0, len(products))
	sellerIDs := make([]string, 0, len(products))
	seenBrands := make(map[string]bool)
	seenSellers := make(map[string]bool)

	for i, p := range products {
		ids[i] = p.ID
		if p.BrandID != nil && !seenBrands[*p.BrandID] {
			seenBrands[*p.BrandID] = true
			brandIDs = append(brandIDs, *p.BrandID)
		}
		if p.SellerID != nil && !seenSellers[*p.SellerID] {
			seenSellers[*p.SellerID] = true
			sellerIDs = append(sellerIDs, *p.SellerID)
		}
	}

	images, err := e.products.ListImagesByProductIDs(ctx, ids)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load product images",
			slog.String("error", err.Error()),
		)
		images = map[string][]domain.ProductImage{}
	}

	variants, err := e.products.ListVariantsByProductIDs(ctx, ids)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load product variants",
			slog.String("error", err.Error()),
		)
		variants = map[string][]domain.ProductVariant{}
	}

	brands, err := e.storefront.BrandsByIDs(ctx, brandIDs)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load product brands",
			slog.String("error", err.Error()),
		)
		brands = map[string]*domain.Brand{}
	}

	sellers, err := e.storefront.SellersByIDs(ctx, sellerIDs)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load product sellers",
			slog.String("error", err.Error()),
		)
		sellers = map[string]*domain.Seller{}
	}

	details := make([]*domain.ProductDetail, len(products))
	for i, p := range products {
		detail := &domain.ProductDetail{
			Product:  *p,
			Images:   images[p.ID],
			Variants: variants[p.ID],
		}
		if detail.Images == nil {
			detail.Images = []domain.ProductImage{}
		}
		if detail.Variants == nil {
			detail.Variants = []domain.ProductVariant{}
		}
		if p.BrandID != nil {
			detail.Brand = brands[*p.BrandID]
		}
		if p.SellerID != nil {
			detail.Seller = sellers[*p.SellerID]
		}
		details[i] = detail
	}

	return details
}
