package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/pkg/database"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

// TaxonomyRepository implements domain.TaxonomyRepository using PostgreSQL.
type TaxonomyRepository struct {
	db database.DBTX
}

// NewTaxonomyRepository creates a new PostgreSQL-backed taxonomy repository.
func NewTaxonomyRepository(db database.DBTX) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// CreateMainCategory inserts a new main category.
func (r *TaxonomyRepository) CreateMainCategory(ctx context.Context, mc *domain.MainCategory) error {
	query := `
		INSERT INTO main_categories (id, name, slug, sort_order, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		mc.ID, mc.Name, mc.Slug, mc.SortOrder, mc.ImageURL, mc.IsActive, mc.CreatedAt, mc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("main category", "slug", mc.Slug)
		}
		return fmt.Errorf("insert main category: %w", err)
	}

	return nil
}

// GetMainCategoryByID retrieves a main category by its ID.
func (r *TaxonomyRepository) GetMainCategoryByID(ctx context.Context, id string) (*domain.MainCategory, error) {
	query := `
		SELECT id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM main_categories
		WHERE id = $1`

	return r.scanMainCategory(ctx, query, id)
}

// GetMainCategoryBySlug retrieves a main category by its slug.
func (r *TaxonomyRepository) GetMainCategoryBySlug(ctx context.Context, slug string) (*domain.MainCategory, error) {
	query := `
		SELECT id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM main_categories
		WHERE slug = $1`

	return r.scanMainCategory(ctx, query, slug)
}

// UpdateMainCategory modifies an existing main category.
func (r *TaxonomyRepository) UpdateMainCategory(ctx context.Context, mc *domain.MainCategory) error {
	mc.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE main_categories
		SET name = $1, sort_order = $2, image_url = $3, is_active = $4, updated_at = $5
		WHERE id = $6`

	ct, err := r.db.Exec(ctx, query,
		mc.Name, mc.SortOrder, mc.ImageURL, mc.IsActive, mc.UpdatedAt, mc.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("main category", "name", mc.Name)
		}
		return fmt.Errorf("update main category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("main category", mc.ID)
	}

	return nil
}

// DeleteMainCategory removes a main category. Subcategories and categories
// cascade via foreign keys; product references are nulled by the schema.
func (r *TaxonomyRepository) DeleteMainCategory(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM main_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete main category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("main category", id)
	}

	return nil
}

// ListMainCategories returns main categories ordered by (sort_order, name).
func (r *TaxonomyRepository) ListMainCategories(ctx context.Context, activeOnly bool) ([]*domain.MainCategory, error) {
	query := `
		SELECT id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM main_categories`
	if activeOnly {
		query += `
		WHERE is_active = true`
	}
	query += `
		ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list main categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.MainCategory
	for rows.Next() {
		var mc domain.MainCategory
		if err := rows.Scan(&mc.ID, &mc.Name, &mc.Slug, &mc.SortOrder, &mc.ImageURL, &mc.IsActive, &mc.CreatedAt, &mc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan main category row: %w", err)
		}
		out = append(out, &mc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate main category rows: %w", err)
	}

	if out == nil {
		out = []*domain.MainCategory{}
	}

	return out, nil
}

// CreateSubCategory inserts a new subcategory.
func (r *TaxonomyRepository) CreateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	query := `
		INSERT INTO sub_categories (id, main_category_id, name, slug, sort_order, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		sc.ID, sc.MainCategoryID, sc.Name, sc.Slug, sc.SortOrder, sc.ImageURL, sc.IsActive, sc.CreatedAt, sc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("subcategory", "slug", sc.Slug)
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}

	return nil
}

// GetSubCategoryByID retrieves a subcategory by its ID.
func (r *TaxonomyRepository) GetSubCategoryByID(ctx context.Context, id string) (*domain.SubCategory, error) {
	query := `
		SELECT id, main_category_id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM sub_categories
		WHERE id = $1`

	var sc domain.SubCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sc.ID, &sc.MainCategoryID, &sc.Name, &sc.Slug, &sc.SortOrder, &sc.ImageURL, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan subcategory: %w", err)
	}

	return &sc, nil
}

// UpdateSubCategory modifies an existing subcategory.
func (r *TaxonomyRepository) UpdateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	sc.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE sub_categories
		SET name = $1, sort_order = $2, image_url = $3, is_active = $4, updated_at = $5
		WHERE id = $6`

	ct, err := r.db.Exec(ctx, query,
		sc.Name, sc.SortOrder, sc.ImageURL, sc.IsActive, sc.UpdatedAt, sc.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("subcategory", "name", sc.Name)
		}
		return fmt.Errorf("update subcategory: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("subcategory", sc.ID)
	}

	return nil
}

// DeleteSubCategory removes a subcategory; its categories cascade.
func (r *TaxonomyRepository) DeleteSubCategory(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM sub_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("subcategory", id)
	}

	return nil
}

// ListSubCategories returns the subcategories of a main category.
func (r *TaxonomyRepository) ListSubCategories(ctx context.Context, mainCategoryID string, activeOnly bool) ([]*domain.SubCategory, error) {
	query := `
		SELECT id, main_category_id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM sub_categories
		WHERE main_category_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += `
		ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query, mainCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var out []*domain.SubCategory
	for rows.Next() {
		var sc domain.SubCategory
		if err := rows.Scan(&sc.ID, &sc.MainCategoryID, &sc.Name, &sc.Slug, &sc.SortOrder, &sc.ImageURL, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		out = append(out, &sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcategory rows: %w", err)
	}

	if out == nil {
		out = []*domain.SubCategory{}
	}

	return out, nil
}

// CreateCategory inserts a new category.
func (r *TaxonomyRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (id, sub_category_id, name, slug, description, sort_order, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.SubCategoryID, c.Name, c.Slug, c.Description, c.SortOrder, c.ImageURL, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// GetCategoryByID retrieves a category by its ID.
func (r *TaxonomyRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, sub_category_id, name, slug, description, sort_order, image_url, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1`

	var c domain.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.SubCategoryID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

// UpdateCategory modifies an existing category.
func (r *TaxonomyRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	c.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE categories
		SET name = $1, description = $2, sort_order = $3, image_url = $4, is_active = $5, updated_at = $6
		WHERE id = $7`

	ct, err := r.db.Exec(ctx, query,
		c.Name, c.Description, c.SortOrder, c.ImageURL, c.IsActive, c.UpdatedAt, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "name", c.Name)
		}
		return fmt.Errorf("update category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", c.ID)
	}

	return nil
}

// DeleteCategory removes a category.
func (r *TaxonomyRepository) DeleteCategory(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("category", id)
	}

	return nil
}

// ListCategories returns the categories of a subcategory.
func (r *TaxonomyRepository) ListCategories(ctx context.Context, subCategoryID string, activeOnly bool) ([]*domain.Category, error) {
	query := `
		SELECT id, sub_category_id, name, slug, description, sort_order, image_url, is_active, created_at, updated_at
		FROM categories
		WHERE sub_category_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += `
		ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query, subCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.SubCategoryID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		out = append(out, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	if out == nil {
		out = []*domain.Category{}
	}

	return out, nil
}

// ListTree returns the active taxonomy assembled into a nested tree, each
// level ordered by (sort_order, name).
func (r *TaxonomyRepository) ListTree(ctx context.Context) ([]*domain.MainCategory, error) {
	mains, err := r.ListMainCategories(ctx, true)
	if err != nil {
		return nil, err
	}

	subQuery := `
		SELECT id, main_category_id, name, slug, sort_order, image_url, is_active, created_at, updated_at
		FROM sub_categories
		WHERE is_active = true
		ORDER BY sort_order, name`

	subRows, err := r.db.Query(ctx, subQuery)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer subRows.Close()

	subsByMain := make(map[string][]*domain.SubCategory)
	subsByID := make(map[string]*domain.SubCategory)
	for subRows.Next() {
		var sc domain.SubCategory
		if err := subRows.Scan(&sc.ID, &sc.MainCategoryID, &sc.Name, &sc.Slug, &sc.SortOrder, &sc.ImageURL, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		subsByMain[sc.MainCategoryID] = append(subsByMain[sc.MainCategoryID], &sc)
		subsByID[sc.ID] = &sc
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcategory rows: %w", err)
	}

	catQuery := `
		SELECT id, sub_category_id, name, slug, description, sort_order, image_url, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = true
		ORDER BY sort_order, name`

	catRows, err := r.db.Query(ctx, catQuery)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer catRows.Close()

	for catRows.Next() {
		var c domain.Category
		if err := catRows.Scan(&c.ID, &c.SubCategoryID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		if parent, ok := subsByID[c.SubCategoryID]; ok {
			parent.Categories = append(parent.Categories, &c)
		}
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	for _, mc := range mains {
		mc.SubCategories = subsByMain[mc.ID]
	}

	return mains, nil
}

// scanMainCategory executes a query expected to return a single main-category row.
func (r *TaxonomyRepository) scanMainCategory(ctx context.Context, query string, args ...any) (*domain.MainCategory, error) {
	var mc domain.MainCategory
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&mc.ID, &mc.Name, &mc.Slug, &mc.SortOrder, &mc.ImageURL, &mc.IsActive, &mc.CreatedAt, &mc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan main category: %w", err)
	}

	return &mc, nil
}
