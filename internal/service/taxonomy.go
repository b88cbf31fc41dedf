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

// TaxonomyService implements the business logic for the three-level catalog
// taxonomy.
type TaxonomyService struct {
	repo   domain.TaxonomyRepository
	logger *slog.Logger
}

// NewTaxonomyService creates a new taxonomy service.
func NewTaxonomyService(repo domain.TaxonomyRepository, logger *slog.Logger) *TaxonomyService {
	return &TaxonomyService{
		repo:   repo,
		logger: logger,
	}
}

// Tree returns all active main categories with their active subcategories and
// categories nested, every level in display order.
func (s *TaxonomyService) Tree(ctx context.Context) ([]*domain.MainCategory, error) {
	tree, err := s.repo.ListTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("list taxonomy tree: %w", err)
	}
	if tree == nil {
		tree = []*domain.MainCategory{}
	}
	return tree, nil
}

// CreateMainCategory creates a new main category. The slug is derived from
// the name and stays fixed for the category's lifetime.
func (s *TaxonomyService) CreateMainCategory(ctx context.Context, input *domain.CreateMainCategoryInput) (*domain.MainCategory, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	now := time.Now().UTC()
	mc := &domain.MainCategory{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		SortOrder: input.SortOrder,
		ImageURL:  input.ImageURL,
		IsActive:  boolOrDefault(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateMainCategory(ctx, mc); err != nil {
		return nil, fmt.Errorf("create main category: %w", err)
	}

	s.logger.InfoContext(ctx, "main category created",
		slog.String("main_category_id", mc.ID),
		slog.String("slug", mc.Slug),
	)

	return mc, nil
}

// GetMainCategory retrieves a main category by its ID.
func (s *TaxonomyService) GetMainCategory(ctx context.Context, id string) (*domain.MainCategory, error) {
	mc, err := s.repo.GetMainCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get main category: %w", err)
	}
	return mc, nil
}

// ListMainCategories returns main categories in display order.
func (s *TaxonomyService) ListMainCategories(ctx context.Context, activeOnly bool) ([]*domain.MainCategory, error) {
	mcs, err := s.repo.ListMainCategories(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list main categories: %w", err)
	}
	if mcs == nil {
		mcs = []*domain.MainCategory{}
	}
	return mcs, nil
}

// UpdateMainCategory applies partial updates to a main category. The slug
// never changes on rename.
func (s *TaxonomyService) UpdateMainCategory(ctx context.Context, id string, input *domain.UpdateMainCategoryInput) (*domain.MainCategory, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	mc, err := s.repo.GetMainCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get main category for update: %w", err)
	}

	if input.Name != nil {
		mc.Name = *input.Name
	}
	if input.SortOrder != nil {
		mc.SortOrder = *input.SortOrder
	}
	if input.ImageURL != nil {
		mc.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		mc.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateMainCategory(ctx, mc); err != nil {
		return nil, fmt.Errorf("update main category: %w", err)
	}

	s.logger.InfoContext(ctx, "main category updated",
		slog.String("main_category_id", mc.ID),
	)

	return mc, nil
}

// DeleteMainCategory removes a main category with its subtree. Products under
// it keep existing with the reference nulled.
func (s *TaxonomyService) DeleteMainCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteMainCategory(ctx, id); err != nil {
		return fmt.Errorf("delete main category: %w", err)
	}

	s.logger.InfoContext(ctx, "main category deleted",
		slog.String("main_category_id", id),
	)

	return nil
}

// CreateSubCategory creates a new subcategory under an existing main
// category.
func (s *TaxonomyService) CreateSubCategory(ctx context.Context, input *domain.CreateSubCategoryInput) (*domain.SubCategory, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if _, err := s.repo.GetMainCategoryByID(ctx, input.MainCategoryID); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown main category %q", input.MainCategoryID))
	}

	now := time.Now().UTC()
	sc := &domain.SubCategory{
		ID:             uuid.New().String(),
		MainCategoryID: input.MainCategoryID,
		Name:           input.Name,
		Slug:           slug.Generate(input.Name),
		SortOrder:      input.SortOrder,
		ImageURL:       input.ImageURL,
		IsActive:       boolOrDefault(input.IsActive, true),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.CreateSubCategory(ctx, sc); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}

	s.logger.InfoContext(ctx, "subcategory created",
		slog.String("sub_category_id", sc.ID),
		slog.String("slug", sc.Slug),
	)

	return sc, nil
}

// GetSubCategory retrieves a subcategory by its ID.
func (s *TaxonomyService) GetSubCategory(ctx context.Context, id string) (*domain.SubCategory, error) {
	sc, err := s.repo.GetSubCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return sc, nil
}

// ListSubCategories returns the subcategories of a main category in display
// order.
func (s *TaxonomyService) ListSubCategories(ctx context.Context, mainCategoryID string, activeOnly bool) ([]*domain.SubCategory, error) {
	scs, err := s.repo.ListSubCategories(ctx, mainCategoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	if scs == nil {
		scs = []*domain.SubCategory{}
	}
	return scs, nil
}

// UpdateSubCategory applies partial updates to a subcategory.
func (s *TaxonomyService) UpdateSubCategory(ctx context.Context, id string, input *domain.UpdateSubCategoryInput) (*domain.SubCategory, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	sc, err := s.repo.GetSubCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subcategory for update: %w", err)
	}

	if input.Name != nil {
		sc.Name = *input.Name
	}
	if input.SortOrder != nil {
		sc.SortOrder = *input.SortOrder
	}
	if input.ImageURL != nil {
		sc.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		sc.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateSubCategory(ctx, sc); err != nil {
		return nil, fmt.Errorf("update subcategory: %w", err)
	}

	s.logger.InfoContext(ctx, "subcategory updated",
		slog.String("sub_category_id", sc.ID),
	)

	return sc, nil
}

// DeleteSubCategory removes a subcategory and its categories.
func (s *TaxonomyService) DeleteSubCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteSubCategory(ctx, id); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}

	s.logger.InfoContext(ctx, "subcategory deleted",
		slog.String("sub_category_id", id),
	)

	return nil
}

// CreateCategory creates a new leaf category under an existing subcategory.
func (s *TaxonomyService) CreateCategory(ctx context.Context, input *domain.CreateCategoryInput) (*domain.Category, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if _, err := s.repo.GetSubCategoryByID(ctx, input.SubCategoryID); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown subcategory %q", input.SubCategoryID))
	}

	now := time.Now().UTC()
	c := &domain.Category{
		ID:            uuid.New().String(),
		SubCategoryID: input.SubCategoryID,
		Name:          input.Name,
		Slug:          slug.Generate(input.Name),
		Description:   input.Description,
		SortOrder:     input.SortOrder,
		ImageURL:      input.ImageURL,
		IsActive:      boolOrDefault(input.IsActive, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID),
		slog.String("slug", c.Slug),
	)

	return c, nil
}

// GetCategory retrieves a category by its ID.
func (s *TaxonomyService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListCategories returns the categories of a subcategory in display order.
func (s *TaxonomyService) ListCategories(ctx context.Context, subCategoryID string, activeOnly bool) ([]*domain.Category, error) {
	cs, err := s.repo.ListCategories(ctx, subCategoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cs == nil {
		cs = []*domain.Category{}
	}
	return cs, nil
}

// UpdateCategory applies partial updates to a category.
func (s *TaxonomyService) UpdateCategory(ctx context.Context, id string, input *domain.UpdateCategoryInput) (*domain.Category, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category for update: %w", err)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.SortOrder != nil {
		c.SortOrder = *input.SortOrder
	}
	if input.ImageURL != nil {
		c.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.logger.InfoContext(ctx, "category updated",
		slog.String("category_id", c.ID),
	)

	return c, nil
}

// DeleteCategory removes a category.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.InfoContext(ctx, "category deleted",
		slog.String("category_id", id),
	)

	return nil
}

// boolOrDefault dereferences an optional flag, falling back to def.
func boolOrDefault(b *bool, def bool) bool {
	if b != nil {
		return *b
	}
	return def
}
