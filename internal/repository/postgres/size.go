package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/pkg/database"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

// SizeRepository implements domain.SizeRepository using PostgreSQL.
type SizeRepository struct {
	db database.DBTX
}

// NewSizeRepository creates a new PostgreSQL-backed size repository.
func NewSizeRepository(db database.DBTX) *SizeRepository {
	return &SizeRepository{db: db}
}

// CreateGroup inserts a new size group.
func (r *SizeRepository) CreateGroup(ctx context.Context, g *domain.SizeGroup) error {
	query := `
		INSERT INTO size_groups (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, g.ID, g.Name, g.IsActive, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("size group", "name", g.Name)
		}
		return fmt.Errorf("insert size group: %w", err)
	}

	return nil
}

// GetGroupByID retrieves a size group by its ID.
func (r *SizeRepository) GetGroupByID(ctx context.Context, id string) (*domain.SizeGroup, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM size_groups
		WHERE id = $1`

	var g domain.SizeGroup
	err := r.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan size group: %w", err)
	}

	return &g, nil
}

// ListGroups returns size groups with their sizes nested.
func (r *SizeRepository) ListGroups(ctx context.Context, activeOnly bool) ([]*domain.SizeGroup, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM size_groups`
	if activeOnly {
		query += `
		WHERE is_active = true`
	}
	query += `
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list size groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.SizeGroup
	byID := make(map[string]*domain.SizeGroup)
	for rows.Next() {
		var g domain.SizeGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan size group row: %w", err)
		}
		groups = append(groups, &g)
		byID[g.ID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate size group rows: %w", err)
	}

	if groups == nil {
		return []*domain.SizeGroup{}, nil
	}

	sizeQuery := `
		SELECT id, size_group_id, name, sort_order, is_active, created_at, updated_at
		FROM sizes`
	if activeOnly {
		sizeQuery += `
		WHERE is_active = true`
	}
	sizeQuery += `
		ORDER BY sort_order, name`

	sizeRows, err := r.db.Query(ctx, sizeQuery)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer sizeRows.Close()

	for sizeRows.Next() {
		var s domain.Size
		if err := sizeRows.Scan(&s.ID, &s.SizeGroupID, &s.Name, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan size row: %w", err)
		}
		if g, ok := byID[s.SizeGroupID]; ok {
			g.Sizes = append(g.Sizes, &s)
		}
	}
	if err := sizeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate size rows: %w", err)
	}

	return groups, nil
}

// CreateSize inserts a new size.
func (r *SizeRepository) CreateSize(ctx context.Context, s *domain.Size) error {
	query := `
		INSERT INTO sizes (id, size_group_id, name, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query, s.ID, s.SizeGroupID, s.Name, s.SortOrder, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("size", "name", s.Name)
		}
		return fmt.Errorf("insert size: %w", err)
	}

	return nil
}

// GetSizeByID retrieves a size by its ID.
func (r *SizeRepository) GetSizeByID(ctx context.Context, id string) (*domain.Size, error) {
	query := `
		SELECT id, size_group_id, name, sort_order, is_active, created_at, updated_at
		FROM sizes
		WHERE id = $1`

	var s domain.Size
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.SizeGroupID, &s.Name, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan size: %w", err)
	}

	return &s, nil
}

// DeleteSize removes a size; variant references are nulled by the schema.
func (r *SizeRepository) DeleteSize(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete size: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("size", id)
	}

	return nil
}
