package domain

import (
	"context"
	"time"
)

// MaxActiveHeroes is the cap on concurrently active hero slides. Activating
// one beyond the cap fails with a conflict.
const MaxActiveHeroes = 6

// Hero is a top-of-storefront promotional slide.
type Hero struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DesktopImageURL string    `json:"desktop_image_url"`
	MobileImageURL  string    `json:"mobile_image_url"`
	LinkURL         *string   `json:"link_url,omitempty"`
	SortOrder       int       `json:"sort_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (h *Hero) SortKey() (int, string) { return h.SortOrder, h.Title }

// Banner is a promotional strip bound to a main category. At most one banner
// per main category is active at a time.
type Banner struct {
	ID             string    `json:"id"`
	MainCategoryID string    `json:"main_category_id"`
	Title          string    `json:"title"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Images []*BannerImage `json:"images,omitempty"`
}

// BannerImage is a single slide of a banner.
type BannerImage struct {
	ID        string    `json:"id"`
	BannerID  string    `json:"banner_id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateHeroInput holds the parameters for creating a hero slide.
type CreateHeroInput struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	DesktopImageURL string  `json:"desktop_image_url" validate:"required,url"`
	MobileImageURL  string  `json:"mobile_image_url" validate:"required,url"`
	LinkURL         *string `json:"link_url" validate:"omitempty,url"`
	SortOrder       int     `json:"sort_order" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

// UpdateHeroInput holds the parameters for updating a hero slide.
type UpdateHeroInput struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=255"`
	DesktopImageURL *string `json:"desktop_image_url" validate:"omitempty,url"`
	MobileImageURL  *string `json:"mobile_image_url" validate:"omitempty,url"`
	LinkURL         *string `json:"link_url" validate:"omitempty,url"`
	SortOrder       *int    `json:"sort_order" validate:"omitempty,gte=0"`
	IsActive        *bool   `json:"is_active"`
}

// CreateBannerInput holds the parameters for creating a main-category banner.
type CreateBannerInput struct {
	MainCategoryID string `json:"main_category_id" validate:"required"`
	Title          string `json:"title" validate:"required,min=1,max=255"`
	IsActive       *bool  `json:"is_active"`
}

// UpdateBannerInput holds the parameters for updating a banner.
type UpdateBannerInput struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	IsActive *bool   `json:"is_active"`
}

// AddBannerImageInput holds the parameters for adding a slide to a banner.
type AddBannerImageInput struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	AltText   string `json:"alt_text" validate:"max=255"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

// PromoRepository defines persistence operations for heroes and banners.
type PromoRepository interface {
	// CreateHero inserts a new hero slide.
	CreateHero(ctx context.Context, h *Hero) error

	// GetHeroByID retrieves a hero by its identifier.
	GetHeroByID(ctx context.Context, id string) (*Hero, error)

	// UpdateHero modifies an existing hero.
	UpdateHero(ctx context.Context, h *Hero) error

	// DeleteHero removes a hero.
	DeleteHero(ctx context.Context, id string) error

	// ListHeroes returns heroes ordered by (sort_order, title).
	ListHeroes(ctx context.Context, activeOnly bool) ([]*Hero, error)

	// CountActiveHeroes returns the number of active heroes, excluding the
	// given hero ID when non-empty.
	CountActiveHeroes(ctx context.Context, excludeID string) (int, error)

	// CreateBanner inserts a new banner.
	CreateBanner(ctx context.Context, b *Banner) error

	// GetBannerByID retrieves a banner by its identifier.
	GetBannerByID(ctx context.Context, id string) (*Banner, error)

	// GetActiveBannerWithImages returns the active banner of a main category
	// with its images ordered by sort_order, or ErrNotFound when none exists.
	GetActiveBannerWithImages(ctx context.Context, mainCategoryID string) (*Banner, error)

	// UpdateBanner modifies an existing banner.
	UpdateBanner(ctx context.Context, b *Banner) error

	// DeleteBanner removes a banner and its images.
	DeleteBanner(ctx context.Context, id string) error

	// CountActiveBanners returns the number of active banners for a main
	// category, excluding the given banner ID when non-empty.
	CountActiveBanners(ctx context.Context, mainCategoryID, excludeID string) (int, error)

	// AddBannerImage inserts a new banner slide.
	AddBannerImage(ctx context.Context, img *BannerImage) error

	// DeleteBannerImage removes a banner slide.
	DeleteBannerImage(ctx context.Context, id string) error
}
