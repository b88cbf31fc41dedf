package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/pkg/database"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

// SellerRepository implements domain.SellerRepository using PostgreSQL.
type SellerRepository struct {
	db database.DBTX
}

// NewSellerRepository creates a new PostgreSQL-backed seller repository.
func NewSellerRepository(db database.DBTX) *SellerRepository {
	return &SellerRepository{db: db}
}

const sellerColumns = `id, business_name, slug, business_email, business_phone, license,
		address_line1, address_line2, city, state, country, postal_code,
		is_verified, is_active, created_at, updated_at`

// Create inserts a new seller.
func (r *SellerRepository) Create(ctx context.Context, s *domain.Seller) error {
	query := `
		INSERT INTO sellers (` + sellerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.BusinessName, s.Slug, s.BusinessEmail, s.BusinessPhone, s.License,
		s.AddressLine1, s.AddressLine2, s.City, s.State, s.Country, s.PostalCode,
		s.IsVerified, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("seller", "business email", s.BusinessEmail)
		}
		return fmt.Errorf("insert seller: %w", err)
	}

	return nil
}

// GetByID retrieves a seller by its ID.
func (r *SellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		WHERE id = $1`

	var s domain.Seller
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.BusinessName, &s.Slug, &s.BusinessEmail, &s.BusinessPhone, &s.License,
		&s.AddressLine1, &s.AddressLine2, &s.City, &s.State, &s.Country, &s.PostalCode,
		&s.IsVerified, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan seller: %w", err)
	}

	return &s, nil
}

// Update modifies an existing seller.
func (r *SellerRepository) Update(ctx context.Context, s *domain.Seller) error {
	s.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE sellers
		SET business_name = $1, business_email = $2, business_phone = $3, license = $4,
		    address_line1 = $5, address_line2 = $6, city = $7, state = $8, country = $9,
		    postal_code = $10, is_verified = $11, is_active = $12, updated_at = $13
		WHERE id = $14`

	ct, err := r.db.Exec(ctx, query,
		s.BusinessName, s.BusinessEmail, s.BusinessPhone, s.License,
		s.AddressLine1, s.AddressLine2, s.City, s.State, s.Country,
		s.PostalCode, s.IsVerified, s.IsActive, s.UpdatedAt, s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("seller", "business email", s.BusinessEmail)
		}
		return fmt.Errorf("update seller: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("seller", s.ID)
	}

	return nil
}

// List returns sellers matching the filter with the total count.
func (r *SellerRepository) List(ctx context.Context, filter domain.SellerFilter) ([]*domain.Seller, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *filter.IsActive)
		argIndex++
	}

	if filter.IsVerified != nil {
		conditions = append(conditions, fmt.Sprintf("is_verified = $%d", argIndex))
		args = append(args, *filter.IsVerified)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT `+sellerColumns+`,
			   count(*) OVER() AS total_count
		FROM sellers
		%s
		ORDER BY business_name
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

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var (
		sellers    []*domain.Seller
		totalCount int
	)

	for rows.Next() {
		var s domain.Seller
		if err := rows.Scan(
			&s.ID, &s.BusinessName, &s.Slug, &s.BusinessEmail, &s.BusinessPhone, &s.License,
			&s.AddressLine1, &s.AddressLine2, &s.City, &s.State, &s.Country, &s.PostalCode,
			&s.IsVerified, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan seller row: %w", err)
		}
		sellers = append(sellers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate seller rows: %w", err)
	}

	if sellers == nil {
		sellers = []*domain.Seller{}
	}

	return sellers, totalCount, nil
}
