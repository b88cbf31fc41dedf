package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jince360/styvia/internal/domain"
	apperrors "github.com/jince360/styvia/pkg/errors"
	"github.com/jince360/styvia/pkg/slug"
	"github.com/jince360/styvia/pkg/validator"
)

// BrandService implements the business logic for brands.
type BrandService struct {
	repo   domain.BrandRepository
	logger *slog.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(repo domain.BrandRepository, logger *slog.Logger) *BrandService {
	return &BrandService{
		repo:   repo,
		logger: logger,
	}
}

// CreateBrand creates a new brand. The slug is derived from the name and
// stays fixed for the brand's lifetime.
func (s *BrandService) CreateBrand(ctx context.Context, input *domain.CreateBrandInput) (*domain.Brand, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	now := time.Now().UTC()
	brand := &domain.Brand{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		LogoURL:   input.LogoURL,
		IsActive:  boolOrDefault(input.IsActive, true),
		IsPopular: input.IsPopular,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	s.logger.InfoContext(ctx, "brand created",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// GetBrand retrieves a brand by its ID.
func (s *BrandService) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return brand, nil
}

// ListBrands returns brands matching the filter, ordered by name.
func (s *BrandService) ListBrands(ctx context.Context, filter domain.BrandFilter) ([]*domain.Brand, error) {
	brands, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	if brands == nil {
		brands = []*domain.Brand{}
	}
	return brands, nil
}

// UpdateBrand applies partial updates to a brand. The slug never changes on
// rename.
func (s *BrandService) UpdateBrand(ctx context.Context, id string, input *domain.UpdateBrandInput) (*domain.Brand, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand for update: %w", err)
	}

	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.LogoURL != nil {
		brand.LogoURL = input.LogoURL
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if input.IsPopular != nil {
		brand.IsPopular = *input.IsPopular
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}

	s.logger.InfoContext(ctx, "brand updated",
		slog.String("brand_id", brand.ID),
	)

	return brand, nil
}
