package domain

import (
	"time"
)

// Product represents a sellable item in the catalog. Taxonomy, brand, seller,
// and size-group references are nullable: deleting a referenced row nulls the
// pointer rather than removing the product.
type Product struct {
	ID             string    `json:"id"`
	MainCategoryID *string   `json:"main_category_id,omitempty"`
	SubCategoryID  *string   `json:"sub_category_id,omitempty"`
	CategoryID     *string   `json:"category_id,omitempty"`
	BrandID        *string   `json:"brand_id,omitempty"`
	SellerID       *string   `json:"seller_id,omitempty"`
	SizeGroupID    *string   `json:"size_group_id,omitempty"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	SKU            string    `json:"sku"`
	Description    string    `json:"description"`
	Color          *string   `json:"color,omitempty"`
	BasePrice      int64     `json:"base_price"`
	SalePrice      *int64    `json:"sale_price,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsFeatured     bool      `json:"is_featured"`
	ViewCount      int64     `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CurrentPrice returns the price a shopper pays: the sale price when one is
// set, the base price otherwise.
func (p *Product) CurrentPrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.BasePrice
}

// IsOnSale reports whether the product has a sale price strictly below the
// base price.
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.BasePrice
}

// ProductVariant is a purchasable variation of a product, usually a size.
type ProductVariant struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	SizeID          *string   `json:"size_id,omitempty"`
	SKU             string    `json:"sku"`
	Stock           int       `json:"stock"`
	PriceAdjustment int64     `json:"price_adjustment"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Price returns the effective variant price: the product's current price plus
// the variant's adjustment, which may be negative.
func (v *ProductVariant) Price(p *Product) int64 {
	return p.CurrentPrice() + v.PriceAdjustment
}

// InStock reports whether the variant has stock available.
func (v *ProductVariant) InStock() bool {
	return v.Stock > 0
}

// ProductImage represents an image associated with a product. Exactly one
// image per product is primary whenever the product has any image.
type ProductImage struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDetail is an enriched product response containing images, variants,
// brand, and seller information alongside the base product fields.
type ProductDetail struct {
	Product
	Images   []ProductImage   `json:"images"`
	Variants []ProductVariant `json:"variants"`
	Brand    *Brand           `json:"brand,omitempty"`
	Seller   *Seller          `json:"seller,omitempty"`
}

// PrimaryImage returns the product's primary image, or nil when the product
// has no images.
func (d *ProductDetail) PrimaryImage() *ProductImage {
	for i := range d.Images {
		if d.Images[i].IsPrimary {
			return &d.Images[i]
		}
	}
	return nil
}

// CreateProductInput holds the parameters for creating a product. The slug
// and SKU are derived from the name when absent and never recomputed after.
type CreateProductInput struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Description    string  `json:"description"`
	MainCategoryID *string `json:"main_category_id"`
	SubCategoryID  *string `json:"sub_category_id"`
	CategoryID     *string `json:"category_id"`
	BrandID        *string `json:"brand_id"`
	SellerID       *string `json:"seller_id"`
	SizeGroupID    *string `json:"size_group_id"`
	Color          *string `json:"color" validate:"omitempty,max=50"`
	SKU            *string `json:"sku" validate:"omitempty,min=1,max=64"`
	BasePrice      int64   `json:"base_price" validate:"gt=0"`
	SalePrice      *int64  `json:"sale_price" validate:"omitempty,gt=0"`
	IsActive       *bool   `json:"is_active"`
	IsFeatured     bool    `json:"is_featured"`
}

// UpdateProductInput holds the parameters for updating a product.
type UpdateProductInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string `json:"description"`
	MainCategoryID *string `json:"main_category_id"`
	SubCategoryID  *string `json:"sub_category_id"`
	CategoryID     *string `json:"category_id"`
	BrandID        *string `json:"brand_id"`
	SellerID       *string `json:"seller_id"`
	SizeGroupID    *string `json:"size_group_id"`
	Color          *string `json:"color" validate:"omitempty,max=50"`
	BasePrice      *int64  `json:"base_price" validate:"omitempty,gt=0"`
	SalePrice      *int64  `json:"sale_price" validate:"omitempty,gt=0"`
	ClearSalePrice bool    `json:"clear_sale_price"`
	IsActive       *bool   `json:"is_active"`
	IsFeatured     *bool   `json:"is_featured"`
}

// CreateVariantInput holds the parameters for adding a variant to a product.
type CreateVariantInput struct {
	SizeID          *string `json:"size_id"`
	SKU             *string `json:"sku" validate:"omitempty,min=1,max=64"`
	Stock           int     `json:"stock" validate:"gte=0"`
	PriceAdjustment int64   `json:"price_adjustment"`
	IsActive        *bool   `json:"is_active"`
}

// AddImageInput holds the parameters for attaching an image to a product.
// The first image of a product becomes primary regardless of IsPrimary.
type AddImageInput struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	AltText   string `json:"alt_text" validate:"max=255"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsPrimary bool   `json:"is_primary"`
}
