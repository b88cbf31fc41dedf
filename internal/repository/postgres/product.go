package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/repository"
	"github.com/jince360/styvia/pkg/database"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

const productColumns = `id, main_category_id, sub_category_id, category_id, brand_id, seller_id,
		size_group_id, name, slug, sku, description, color, base_price, sale_price,
		is_active, is_featured, view_count, created_at, updated_at`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.MainCategoryID, p.SubCategoryID, p.CategoryID, p.BrandID, p.SellerID,
		p.SizeGroupID, p.Name, p.Slug, p.SKU, p.Description, p.Color, p.BasePrice, p.SalePrice,
		p.IsActive, p.IsFeatured, p.ViewCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	return r.scanProduct(ctx, query, id)
}

// GetBySlug retrieves a product by its slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1`

	return r.scanProduct(ctx, query, slug)
}

// List returns products matching the given filter with the total count.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	addEq := func(column string, value any) {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.MainCategoryID != nil {
		addEq("main_category_id", *filter.MainCategoryID)
	}
	if filter.SubCategoryID != nil {
		addEq("sub_category_id", *filter.SubCategoryID)
	}
	if filter.CategoryID != nil {
		addEq("category_id", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		addEq("brand_id", *filter.BrandID)
	}
	if filter.SellerID != nil {
		addEq("seller_id", *filter.SellerID)
	}
	if filter.IsActive != nil {
		addEq("is_active", *filter.IsActive)
	}
	if filter.IsFeatured != nil {
		addEq("is_featured", *filter.IsFeatured)
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() gives the total in the same query.
	query := fmt.Sprintf(`
		SELECT `+productColumns+`,
			   count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
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

// Update modifies an existing product in the database. The slug and SKU are
// written as-is; derivation happens once at create time.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET main_category_id = $1, sub_category_id = $2, category_id = $3, brand_id = $4,
		    seller_id = $5, size_group_id = $6, name = $7, description = $8, color = $9,
		    base_price = $10, sale_price = $11, is_active = $12, is_featured = $13, updated_at = $14
		WHERE id = $15`

	ct, err := r.db.Exec(ctx, query,
		p.MainCategoryID, p.SubCategoryID, p.CategoryID, p.BrandID,
		p.SellerID, p.SizeGroupID, p.Name, p.Description, p.Color,
		p.BasePrice, p.SalePrice, p.IsActive, p.IsFeatured, p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", p.ID)
	}

	return nil
}

// Delete removes a product; variants and images cascade via foreign keys.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("product", id)
	}

	return nil
}

// IncrementViewCount bumps the product's view counter.
func (r *ProductRepository) IncrementViewCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE products SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// CreateVariant inserts a new product variant.
func (r *ProductRepository) CreateVariant(ctx context.Context, v *domain.ProductVariant) error {
	query := `
		INSERT INTO product_variants (id, product_id, size_id, sku, stock, price_adjustment, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		v.ID, v.ProductID, v.SizeID, v.SKU, v.Stock, v.PriceAdjustment, v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("variant", "sku", v.SKU)
		}
		return fmt.Errorf("insert variant: %w", err)
	}

	return nil
}

// GetVariantByID retrieves a variant by its ID.
func (r *ProductRepository) GetVariantByID(ctx context.Context, id string) (*domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, size_id, sku, stock, price_adjustment, is_active, created_at, updated_at
		FROM product_variants
		WHERE id = $1`

	var v domain.ProductVariant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProductID, &v.SizeID, &v.SKU, &v.Stock, &v.PriceAdjustment, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan variant: %w", err)
	}

	return &v, nil
}

// UpdateVariantStock sets the stock level of a variant.
func (r *ProductRepository) UpdateVariantStock(ctx context.Context, id string, stock int) error {
	query := `UPDATE product_variants SET stock = $1, updated_at = $2 WHERE id = $3`

	ct, err := r.db.Exec(ctx, query, stock, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update variant stock: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("variant", id)
	}

	return nil
}

// ListVariantsByProductIDs returns active variants for the given products,
// keyed by product ID.
func (r *ProductRepository) ListVariantsByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductVariant, error) {
	out := make(map[string][]domain.ProductVariant, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT id, product_id, size_id, sku, stock, price_adjustment, is_active, created_at, updated_at
		FROM product_variants
		WHERE product_id = ANY($1) AND is_active = true
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SizeID, &v.SKU, &v.Stock, &v.PriceAdjustment, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant row: %w", err)
		}
		out[v.ProductID] = append(out[v.ProductID], v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variant rows: %w", err)
	}

	return out, nil
}

// AddImage inserts a product image. When makePrimary is set the other images
// of the product are demoted first; otherwise the image becomes primary only
// if it is the product's first.
func (r *ProductRepository) AddImage(ctx context.Context, img *domain.ProductImage, makePrimary bool) error {
	if makePrimary {
		if _, err := r.db.Exec(ctx,
			`UPDATE product_images SET is_primary = false WHERE product_id = $1`, img.ProductID,
		); err != nil {
			return fmt.Errorf("demote primary images: %w", err)
		}

		img.IsPrimary = true
		query := `
			INSERT INTO product_images (id, product_id, image_url, alt_text, sort_order, is_primary, created_at)
			VALUES ($1, $2, $3, $4, $5, true, $6)`
		if _, err := r.db.Exec(ctx, query,
			img.ID, img.ProductID, img.ImageURL, img.AltText, img.SortOrder, img.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
		return nil
	}

	// First image of a product is always primary.
	query := `
		INSERT INTO product_images (id, product_id, image_url, alt_text, sort_order, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5,
			NOT EXISTS (SELECT 1 FROM product_images WHERE product_id = $2), $6)
		RETURNING is_primary`

	err := r.db.QueryRow(ctx, query,
		img.ID, img.ProductID, img.ImageURL, img.AltText, img.SortOrder, img.CreatedAt,
	).Scan(&img.IsPrimary)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}

	return nil
}

// SetPrimaryImage promotes an image to primary and demotes all other images
// of the product in a single statement.
func (r *ProductRepository) SetPrimaryImage(ctx context.Context, productID, imageID string) error {
	query := `
		UPDATE product_images
		SET is_primary = (id = $2)
		WHERE product_id = $1`

	ct, err := r.db.Exec(ctx, query, productID, imageID)
	if err != nil {
		return fmt.Errorf("set primary image: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("image", imageID)
	}

	return nil
}

// DeleteImage removes an image. When the primary image is deleted and others
// remain, the lowest (sort_order, created_at) image is promoted.
func (r *ProductRepository) DeleteImage(ctx context.Context, id string) error {
	var (
		productID  string
		wasPrimary bool
	)
	err := r.db.QueryRow(ctx,
		`DELETE FROM product_images WHERE id = $1 RETURNING product_id, is_primary`, id,
	).Scan(&productID, &wasPrimary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("image", id)
		}
		return fmt.Errorf("delete image: %w", err)
	}

	if !wasPrimary {
		return nil
	}

	promote := `
		UPDATE product_images
		SET is_primary = true
		WHERE id = (
			SELECT id FROM product_images
			WHERE product_id = $1
			ORDER BY sort_order, created_at
			LIMIT 1
		)`
	if _, err := r.db.Exec(ctx, promote, productID); err != nil {
		return fmt.Errorf("promote replacement image: %w", err)
	}

	return nil
}

// ListImagesByProductIDs returns images for the given products ordered by
// sort_order, keyed by product ID.
func (r *ProductRepository) ListImagesByProductIDs(ctx context.Context, productIDs []string) (map[string][]domain.ProductImage, error) {
	out := make(map[string][]domain.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT id, product_id, image_url, alt_text, sort_order, is_primary, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.SortOrder, &img.IsPrimary, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		out[img.ProductID] = append(out[img.ProductID], img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}

	return out, nil
}

// ReconcilePrimaryImage repairs a product whose images hold zero or multiple
// primary flags. The existing primary with the lowest (sort_order,
// created_at) wins; when none is primary the lowest image overall is
// promoted. Returns the number of rows changed.
func (r *ProductRepository) ReconcilePrimaryImage(ctx context.Context, productID string) (int, error) {
	var primaries int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM product_images WHERE product_id = $1 AND is_primary`, productID,
	).Scan(&primaries)
	if err != nil {
		return 0, fmt.Errorf("count primary images: %w", err)
	}

	if primaries == 1 {
		return 0, nil
	}

	query := `
		WITH keeper AS (
			SELECT id FROM product_images
			WHERE product_id = $1
			ORDER BY is_primary DESC, sort_order, created_at
			LIMIT 1
		)
		UPDATE product_images
		SET is_primary = (product_images.id = keeper.id)
		FROM keeper
		WHERE product_images.product_id = $1
		  AND product_images.is_primary <> (product_images.id = keeper.id)`

	ct, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return 0, fmt.Errorf("reconcile primary image: %w", err)
	}

	return int(ct.RowsAffected()), nil
}

// scanProduct executes a query expected to return a single product row.
func (r *ProductRepository) scanProduct(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.MainCategoryID, &p.SubCategoryID, &p.CategoryID, &p.BrandID, &p.SellerID,
		&p.SizeGroupID, &p.Name, &p.Slug, &p.SKU, &p.Description, &p.Color, &p.BasePrice, &p.SalePrice,
		&p.IsActive, &p.IsFeatured, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// queryProductsWithTotal runs a product query carrying a trailing
// count(*) OVER() column.
func queryProductsWithTotal(ctx context.Context, db database.DBTX, query string, args ...any) ([]*domain.Product, int, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []*domain.Product
		totalCount int
	)

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.MainCategoryID, &p.SubCategoryID, &p.CategoryID, &p.BrandID, &p.SellerID,
			&p.SizeGroupID, &p.Name, &p.Slug, &p.SKU, &p.Description, &p.Color, &p.BasePrice, &p.SalePrice,
			&p.IsActive, &p.IsFeatured, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []*domain.Product{}
	}

	return products, totalCount, nil
}
