package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/repository"
	"github.com/jince360/styvia/pkg/database"
)

// effectivePrice is the price shoppers pay and the price all storefront range
// filtering compares against.
const effectivePrice = "COALESCE(sale_price, base_price)"

// StorefrontRepository implements repository.StorefrontRepository using
// PostgreSQL.
type StorefrontRepository struct {
	db database.DBTX
}

// NewStorefrontRepository creates a new PostgreSQL-backed storefront
// repository.
func NewStorefrontRepository(db database.DBTX) *StorefrontRepository {
	return &StorefrontRepository{db: db}
}

// ListProducts returns active products matching the filter with the total
// count, newest first. Dimensions AND-combine; values within one dimension
// OR-combine via = ANY.
func (r *StorefrontRepository) ListProducts(ctx context.Context, filter repository.StorefrontFilter) ([]*domain.Product, int, error) {
	conditions := []string{"is_active = true"}
	var (
		args     []any
		argIndex = 1
	)

	if filter.MainCategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("main_category_id = $%d", argIndex))
		args = append(args, *filter.MainCategoryID)
		argIndex++
	}

	if len(filter.SubCategorySlugs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"sub_category_id IN (SELECT id FROM sub_categories WHERE slug = ANY($%d))", argIndex))
		args = append(args, filter.SubCategorySlugs)
		argIndex++
	}

	if len(filter.CategorySlugs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"category_id IN (SELECT id FROM categories WHERE slug = ANY($%d))", argIndex))
		args = append(args, filter.CategorySlugs)
		argIndex++
	}

	if len(filter.BrandIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("brand_id = ANY($%d)", argIndex))
		args = append(args, filter.BrandIDs)
		argIndex++
	}

	if len(filter.Colors) > 0 {
		conditions = append(conditions, fmt.Sprintf("color = ANY($%d)", argIndex))
		args = append(args, filter.Colors)
		argIndex++
	}

	if filter.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", effectivePrice, argIndex))
		args = append(args, *filter.PriceMin)
		argIndex++
	}

	if filter.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", effectivePrice, argIndex))
		args = append(args, *filter.PriceMax)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT `+productColumns+`,
			   count(*) OVER() AS total_count
		FROM products
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		strings.Join(conditions, " AND "), argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	args = append(args, limit, offset)

	return queryProductsWithTotal(ctx, r.db, query, args...)
}

// DistinctColors returns the distinct colors of active products in the
// main-category scope, sorted ascending.
func (r *StorefrontRepository) DistinctColors(ctx context.Context, mainCategoryID string) ([]string, error) {
	query := `
		SELECT DISTINCT color
		FROM products
		WHERE is_active = true AND main_category_id = $1 AND color IS NOT NULL
		ORDER BY color`

	rows, err := r.db.Query(ctx, query, mainCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	var colors []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan color row: %w", err)
		}
		colors = append(colors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate color rows: %w", err)
	}

	if colors == nil {
		colors = []string{}
	}

	return colors, nil
}

// PriceRange returns the min and max base price across active products in
// the main-category scope, or nil when the scope has no products. The facet
// bounds ignore sale prices so the slider range stays stable while sales
// come and go; only the range filter itself compares effective prices.
func (r *StorefrontRepository) PriceRange(ctx context.Context, mainCategoryID string) (*domain.PriceRange, error) {
	query := `
		SELECT min(base_price), max(base_price)
		FROM products
		WHERE is_active = true AND main_category_id = $1`

	var minPrice, maxPrice *int64
	err := r.db.QueryRow(ctx, query, mainCategoryID).Scan(&minPrice, &maxPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan price range: %w", err)
	}

	if minPrice == nil || maxPrice == nil {
		return nil, nil
	}

	return &domain.PriceRange{Min: *minPrice, Max: *maxPrice}, nil
}

// BrandsInScope returns the distinct active brands of active products in the
// main-category scope, ordered by name.
func (r *StorefrontRepository) BrandsInScope(ctx context.Context, mainCategoryID string) ([]*domain.Brand, error) {
	query := `
		SELECT DISTINCT b.id, b.name, b.slug, b.logo_url, b.is_active, b.is_popular, b.created_at, b.updated_at
		FROM brands b
		JOIN products p ON p.brand_id = b.id
		WHERE b.is_active = true AND p.is_active = true AND p.main_category_id = $1
		ORDER BY b.name`

	rows, err := r.db.Query(ctx, query, mainCategoryID)
	if err != nil {
		return nil, fmt.Errorf("list brands in scope: %w", err)
	}
	defer rows.Close()

	var out []*domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.LogoURL, &b.IsActive, &b.IsPopular, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		out = append(out, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brand rows: %w", err)
	}

	if out == nil {
		out = []*domain.Brand{}
	}

	return out, nil
}

// BrandsByIDs returns brands keyed by ID for the given identifiers.
func (r *StorefrontRepository) BrandsByIDs(ctx context.Context, ids []string) (map[string]*domain.Brand, error) {
	out := make(map[string]*domain.Brand, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id, name, slug, logo_url, is_active, is_popular, created_at, updated_at
		FROM brands
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list brands by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.LogoURL, &b.IsActive, &b.IsPopular, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		out[b.ID] = &b
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brand rows: %w", err)
	}

	return out, nil
}

// SellersByIDs returns sellers keyed by ID for the given identifiers.
func (r *StorefrontRepository) SellersByIDs(ctx context.Context, ids []string) (map[string]*domain.Seller, error) {
	out := make(map[string]*domain.Seller, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list sellers by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Seller
		if err := rows.Scan(
			&s.ID, &s.BusinessName, &s.Slug, &s.BusinessEmail, &s.BusinessPhone, &s.License,
			&s.AddressLine1, &s.AddressLine2, &s.City, &s.State, &s.Country, &s.PostalCode,
			&s.IsVerified, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan seller row: %w", err)
		}
		out[s.ID] = &s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seller rows: %w", err)
	}

	return out, nil
}
