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

// PromoRepository implements domain.PromoRepository using PostgreSQL.
type PromoRepository struct {
	db database.DBTX
}

// NewPromoRepository creates a new PostgreSQL-backed promo repository.
func NewPromoRepository(db database.DBTX) *PromoRepository {
	return &PromoRepository{db: db}
}

// CreateHero inserts a new hero slide.
func (r *PromoRepository) CreateHero(ctx context.Context, h *domain.Hero) error {
	query := `
		INSERT INTO heroes (id, title, desktop_image_url, mobile_image_url, link_url, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		h.ID, h.Title, h.DesktopImageURL, h.MobileImageURL, h.LinkURL, h.SortOrder, h.IsActive, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hero: %w", err)
	}

	return nil
}

// GetHeroByID retrieves a hero by its ID.
func (r *PromoRepository) GetHeroByID(ctx context.Context, id string) (*domain.Hero, error) {
	query := `
		SELECT id, title, desktop_image_url, mobile_image_url, link_url, sort_order, is_active, created_at, updated_at
		FROM heroes
		WHERE id = $1`

	var h domain.Hero
	err := r.db.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Title, &h.DesktopImageURL, &h.MobileImageURL, &h.LinkURL, &h.SortOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan hero: %w", err)
	}

	return &h, nil
}

// UpdateHero modifies an existing hero.
func (r *PromoRepository) UpdateHero(ctx context.Context, h *domain.Hero) error {
	h.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE heroes
		SET title = $1, desktop_image_url = $2, mobile_image_url = $3, link_url = $4,
		    sort_order = $5, is_active = $6, updated_at = $7
		WHERE id = $8`

	ct, err := r.db.Exec(ctx, query,
		h.Title, h.DesktopImageURL, h.MobileImageURL, h.LinkURL, h.SortOrder, h.IsActive, h.UpdatedAt, h.ID,
	)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("hero", h.ID)
	}

	return nil
}

// DeleteHero removes a hero.
func (r *PromoRepository) DeleteHero(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("hero", id)
	}

	return nil
}

// ListHeroes returns heroes ordered by (sort_order, title).
func (r *PromoRepository) ListHeroes(ctx context.Context, activeOnly bool) ([]*domain.Hero, error) {
	query := `
		SELECT id, title, desktop_image_url, mobile_image_url, link_url, sort_order, is_active, created_at, updated_at
		FROM heroes`
	if activeOnly {
		query += `
		WHERE is_active = true`
	}
	query += `
		ORDER BY sort_order, title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	var out []*domain.Hero
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(&h.ID, &h.Title, &h.DesktopImageURL, &h.MobileImageURL, &h.LinkURL, &h.SortOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hero row: %w", err)
		}
		out = append(out, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hero rows: %w", err)
	}

	if out == nil {
		out = []*domain.Hero{}
	}

	return out, nil
}

// CountActiveHeroes returns the number of active heroes, excluding the given
// hero ID when non-empty.
func (r *PromoRepository) CountActiveHeroes(ctx context.Context, excludeID string) (int, error) {
	query := `SELECT count(*) FROM heroes WHERE is_active = true AND id <> $1`

	var count int
	if err := r.db.QueryRow(ctx, query, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active heroes: %w", err)
	}

	return count, nil
}

// CreateBanner inserts a new banner.
func (r *PromoRepository) CreateBanner(ctx context.Context, b *domain.Banner) error {
	query := `
		INSERT INTO banners (id, main_category_id, title, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, b.ID, b.MainCategoryID, b.Title, b.IsActive, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}

	return nil
}

// GetBannerByID retrieves a banner by its ID.
func (r *PromoRepository) GetBannerByID(ctx context.Context, id string) (*domain.Banner, error) {
	query := `
		SELECT id, main_category_id, title, is_active, created_at, updated_at
		FROM banners
		WHERE id = $1`

	var b domain.Banner
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.MainCategoryID, &b.Title, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan banner: %w", err)
	}

	return &b, nil
}

// GetActiveBannerWithImages returns the active banner of a main category with
// its images ordered by sort_order.
func (r *PromoRepository) GetActiveBannerWithImages(ctx context.Context, mainCategoryID string) (*domain.Banner, error) {
	query := `
		SELECT id, main_category_id, title, is_active, created_at, updated_at
		FROM banners
		WHERE main_category_id = $1 AND is_active = true`

	var b domain.Banner
	err := r.db.QueryRow(ctx, query, mainCategoryID).Scan(&b.ID, &b.MainCategoryID, &b.Title, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan banner: %w", err)
	}

	imgQuery := `
		SELECT id, banner_id, image_url, alt_text, sort_order, created_at
		FROM banner_images
		WHERE banner_id = $1
		ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, imgQuery, b.ID)
	if err != nil {
		return nil, fmt.Errorf("list banner images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.BannerImage
		if err := rows.Scan(&img.ID, &img.BannerID, &img.ImageURL, &img.AltText, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan banner image row: %w", err)
		}
		b.Images = append(b.Images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banner image rows: %w", err)
	}

	return &b, nil
}

// UpdateBanner modifies an existing banner.
func (r *PromoRepository) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	b.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE banners
		SET title = $1, is_active = $2, updated_at = $3
		WHERE id = $4`

	ct, err := r.db.Exec(ctx, query, b.Title, b.IsActive, b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", b.ID)
	}

	return nil
}

// DeleteBanner removes a banner; its images cascade.
func (r *PromoRepository) DeleteBanner(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner", id)
	}

	return nil
}

// CountActiveBanners returns the number of active banners for a main
// category, excluding the given banner ID when non-empty.
func (r *PromoRepository) CountActiveBanners(ctx context.Context, mainCategoryID, excludeID string) (int, error) {
	query := `SELECT count(*) FROM banners WHERE main_category_id = $1 AND is_active = true AND id <> $2`

	var count int
	if err := r.db.QueryRow(ctx, query, mainCategoryID, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active banners: %w", err)
	}

	return count, nil
}

// AddBannerImage inserts a new banner slide.
func (r *PromoRepository) AddBannerImage(ctx context.Context, img *domain.BannerImage) error {
	query := `
		INSERT INTO banner_images (id, banner_id, image_url, alt_text, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, img.ID, img.BannerID, img.ImageURL, img.AltText, img.SortOrder, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert banner image: %w", err)
	}

	return nil
}

// DeleteBannerImage removes a banner slide.
func (r *PromoRepository) DeleteBannerImage(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM banner_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner image: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("banner image", id)
	}

	return nil
}
