package domain

import (
	"context"
	"time"
)

// Brand represents a product brand.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsPopular bool      `json:"is_popular"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Brand) SortKey() (int, string) { return 0, b.Name }

// CreateBrandInput holds the parameters for creating a brand.
type CreateBrandInput struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	LogoURL   *string `json:"logo_url" validate:"omitempty,url"`
	IsActive  *bool   `json:"is_active"`
	IsPopular bool    `json:"is_popular"`
}

// UpdateBrandInput holds the parameters for updating a brand. The slug is
// never recomputed on rename.
type UpdateBrandInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	LogoURL   *string `json:"logo_url" validate:"omitempty"`
	IsActive  *bool   `json:"is_active"`
	IsPopular *bool   `json:"is_popular"`
}

// BrandFilter defines filter criteria for listing brands.
type BrandFilter struct {
	IsActive  *bool
	IsPopular *bool
}

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create inserts a new brand.
	Create(ctx context.Context, b *Brand) error

	// GetByID retrieves a brand by its identifier.
	GetByID(ctx context.Context, id string) (*Brand, error)

	// Update modifies an existing brand.
	Update(ctx context.Context, b *Brand) error

	// List returns brands matching the filter, ordered by name.
	List(ctx context.Context, filter BrandFilter) ([]*Brand, error)
}
