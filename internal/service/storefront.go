package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/repository"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

// StorefrontService serves the shopper read path: the landing page, the
// whole-catalog browse page, and the per-main-category browse page with
// filters and facets.
type StorefrontService struct {
	storefront repository.StorefrontRepository
	taxonomy   domain.TaxonomyRepository
	promos     domain.PromoRepository
	enricher   *productEnricher
	logger     *slog.Logger
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(
	storefront repository.StorefrontRepository,
	products repository.ProductRepository,
	taxonomy domain.TaxonomyRepository,
	promos domain.PromoRepository,
	logger *slog.Logger,
) *StorefrontService {
	return &StorefrontService{
		storefront: storefront,
		taxonomy:   taxonomy,
		promos:     promos,
		enricher:   &productEnricher{products: products, storefront: storefront, logger: logger},
		logger:     logger,
	}
}

// Home returns the storefront landing payload: active hero slides in display
// order and the active navigation tree.
func (s *StorefrontService) Home(ctx context.Context) (*domain.HomePage, error) {
	heroes, err := s.promos.ListHeroes(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}

	tree, err := s.taxonomy.ListTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("list taxonomy tree: %w", err)
	}

	if heroes == nil {
		heroes = []*domain.Hero{}
	}
	if tree == nil {
		tree = []*domain.MainCategory{}
	}
	domain.SortDisplayables(heroes)

	return &domain.HomePage{
		Heroes:         heroes,
		MainCategories: tree,
	}, nil
}

// BrowseAll returns one page of the whole active catalog. The same filter
// dimensions apply as on a category page, but no facets or banner slides are
// computed because there is no main-category scope.
func (s *StorefrontService) BrowseAll(ctx context.Context, filter repository.StorefrontFilter) (*domain.StorefrontPage, error) {
	filter.MainCategoryID = nil
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)

	products, total, err := s.storefront.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list storefront products: %w", err)
	}

	return &domain.StorefrontPage{
		Products:     s.enricher.enrich(ctx, products),
		Total:        total,
		Page:         filter.Page,
		PerPage:      filter.PerPage,
		BannerSlides: []*domain.BannerImage{},
	}, nil
}

// Browse returns one page of a main category's storefront: filtered products,
// facet data, and the active banner's slides. Filter dimensions AND-combine;
// values within a dimension OR-combine. Facets always cover the full
// main-category scope so sibling options stay visible while a filter is
// applied.
func (s *StorefrontService) Browse(ctx context.Context, mainCategorySlug string, filter repository.StorefrontFilter) (*domain.StorefrontPage, error) {
	mc, err := s.taxonomy.GetMainCategoryBySlug(ctx, mainCategorySlug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundSlug("main category", mainCategorySlug)
		}
		return nil, fmt.Errorf("get main category by slug: %w", err)
	}
	if !mc.IsActive {
		// Inactive categories are invisible to shoppers.
		return nil, apperrors.NotFoundSlug("main category", mainCategorySlug)
	}

	filter.MainCategoryID = &mc.ID
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)

	products, total, err := s.storefront.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list storefront products: %w", err)
	}

	page := &domain.StorefrontPage{
		Products:     s.enricher.enrich(ctx, products),
		Total:        total,
		Page:         filter.Page,
		PerPage:      filter.PerPage,
		MainCategory: mc,
		BannerSlides: []*domain.BannerImage{},
		FilterData:   s.loadFilterData(ctx, mc.ID),
	}

	banner, err := s.promos.GetActiveBannerWithImages(ctx, mc.ID)
	switch {
	case err == nil:
		if banner.Images != nil {
			page.BannerSlides = banner.Images
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// No active banner for this category; the page ships without slides.
	default:
		s.logger.ErrorContext(ctx, "failed to load category banner",
			slog.String("main_category_id", mc.ID),
			slog.String("error", err.Error()),
		)
	}

	return page, nil
}

// loadFilterData assembles the facet payload for a main-category scope.
// Facet load failures degrade to empty dimensions so the product grid still
// renders.
func (s *StorefrontService) loadFilterData(ctx context.Context, mainCategoryID string) *domain.FilterData {
	data := &domain.FilterData{
		SubCategories: []*domain.SubCategory{},
		Categories:    []*domain.Category{},
		Brands:        []*domain.Brand{},
		Colors:        []string{},
	}

	subs, err := s.taxonomy.ListSubCategories(ctx, mainCategoryID, true)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load subcategory facet",
			slog.String("main_category_id", mainCategoryID),
			slog.String("error", err.Error()),
		)
	} else if subs != nil {
		data.SubCategories = subs
	}

	for _, sub := range data.SubCategories {
		categories, err := s.taxonomy.ListCategories(ctx, sub.ID, true)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load category facet",
				slog.String("sub_category_id", sub.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		sub.Categories = categories
		data.Categories = append(data.Categories, categories...)
	}
	// The flat facet list orders across subcategory boundaries.
	domain.SortDisplayables(data.Categories)

	brands, err := s.storefront.BrandsInScope(ctx, mainCategoryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load brand facet",
			slog.String("main_category_id", mainCategoryID),
			slog.String("error", err.Error()),
		)
	} else if brands != nil {
		data.Brands = brands
	}

	colors, err := s.storefront.DistinctColors(ctx, mainCategoryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load color facet",
			slog.String("main_category_id", mainCategoryID),
			slog.String("error", err.Error()),
		)
	} else if colors != nil {
		data.Colors = colors
	}

	priceRange, err := s.storefront.PriceRange(ctx, mainCategoryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load price range facet",
			slog.String("main_category_id", mainCategoryID),
			slog.String("error", err.Error()),
		)
	} else {
		data.PriceRange = priceRange
	}

	return data
}
