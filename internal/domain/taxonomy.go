package domain

import (
	"context"
	"time"
)

// MainCategory is the top level of the catalog taxonomy.
type MainCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
	ImageURL  *string   `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SubCategories []*SubCategory `json:"sub_categories,omitempty"`
}

// SubCategory is the middle level of the taxonomy, owned by a main category.
type SubCategory struct {
	ID             string    `json:"id"`
	MainCategoryID string    `json:"main_category_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	SortOrder      int       `json:"sort_order"`
	ImageURL       *string   `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Categories []*Category `json:"categories,omitempty"`
}

// Category is the leaf level of the taxonomy, owned by a subcategory.
type Category struct {
	ID            string    `json:"id"`
	SubCategoryID string    `json:"sub_category_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description,omitempty"`
	SortOrder     int       `json:"sort_order"`
	ImageURL      *string   `json:"image_url,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *MainCategory) SortKey() (int, string) { return m.SortOrder, m.Name }
func (s *SubCategory) SortKey() (int, string)  { return s.SortOrder, s.Name }
func (c *Category) SortKey() (int, string)     { return c.SortOrder, c.Name }

// CreateMainCategoryInput holds the parameters for creating a main category.
type CreateMainCategoryInput struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	SortOrder int     `json:"sort_order" validate:"gte=0"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateMainCategoryInput holds the parameters for updating a main category.
// The slug is never recomputed on rename.
type UpdateMainCategoryInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
	ImageURL  *string `json:"image_url" validate:"omitempty"`
	IsActive  *bool   `json:"is_active"`
}

// CreateSubCategoryInput holds the parameters for creating a subcategory.
type CreateSubCategoryInput struct {
	MainCategoryID string  `json:"main_category_id" validate:"required"`
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	SortOrder      int     `json:"sort_order" validate:"gte=0"`
	ImageURL       *string `json:"image_url" validate:"omitempty,url"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateSubCategoryInput holds the parameters for updating a subcategory.
type UpdateSubCategoryInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
	ImageURL  *string `json:"image_url" validate:"omitempty"`
	IsActive  *bool   `json:"is_active"`
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	SubCategoryID string  `json:"sub_category_id" validate:"required"`
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Description   *string `json:"description"`
	SortOrder     int     `json:"sort_order" validate:"gte=0"`
	ImageURL      *string `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateCategoryInput holds the parameters for updating a category.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,gte=0"`
	ImageURL    *string `json:"image_url" validate:"omitempty"`
	IsActive    *bool   `json:"is_active"`
}

// TaxonomyRepository defines persistence operations for the three-level
// catalog taxonomy.
type TaxonomyRepository interface {
	// CreateMainCategory inserts a new main category.
	CreateMainCategory(ctx context.Context, mc *MainCategory) error

	// GetMainCategoryByID retrieves a main category by its identifier.
	GetMainCategoryByID(ctx context.Context, id string) (*MainCategory, error)

	// GetMainCategoryBySlug retrieves a main category by its slug.
	GetMainCategoryBySlug(ctx context.Context, slug string) (*MainCategory, error)

	// UpdateMainCategory modifies an existing main category.
	UpdateMainCategory(ctx context.Context, mc *MainCategory) error

	// DeleteMainCategory removes a main category; its subcategories and
	// categories are deleted and product references are nulled.
	DeleteMainCategory(ctx context.Context, id string) error

	// ListMainCategories returns main categories ordered by (sort_order, name).
	ListMainCategories(ctx context.Context, activeOnly bool) ([]*MainCategory, error)

	// CreateSubCategory inserts a new subcategory.
	CreateSubCategory(ctx context.Context, sc *SubCategory) error

	// GetSubCategoryByID retrieves a subcategory by its identifier.
	GetSubCategoryByID(ctx context.Context, id string) (*SubCategory, error)

	// UpdateSubCategory modifies an existing subcategory.
	UpdateSubCategory(ctx context.Context, sc *SubCategory) error

	// DeleteSubCategory removes a subcategory and its categories.
	DeleteSubCategory(ctx context.Context, id string) error

	// ListSubCategories returns the subcategories of a main category ordered
	// by (sort_order, name).
	ListSubCategories(ctx context.Context, mainCategoryID string, activeOnly bool) ([]*SubCategory, error)

	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, c *Category) error

	// GetCategoryByID retrieves a category by its identifier.
	GetCategoryByID(ctx context.Context, id string) (*Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, c *Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error

	// ListCategories returns the categories of a subcategory ordered by
	// (sort_order, name).
	ListCategories(ctx context.Context, subCategoryID string, activeOnly bool) ([]*Category, error)

	// ListTree returns all active main categories with their active
	// subcategories and categories nested, each level ordered by
	// (sort_order, name).
	ListTree(ctx context.Context) ([]*MainCategory, error)
}
