package domain

import (
	"context"
	"time"
)

// Seller represents a merchant selling through the storefront.
type Seller struct {
	ID            string    `json:"id"`
	BusinessName  string    `json:"business_name"`
	Slug          string    `json:"slug"`
	BusinessEmail string    `json:"business_email"`
	BusinessPhone string    `json:"business_phone"`
	License       *string   `json:"license,omitempty"`
	AddressLine1  string    `json:"address_line1"`
	AddressLine2  *string   `json:"address_line2,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	PostalCode    string    `json:"postal_code"`
	IsVerified    bool      `json:"is_verified"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateSellerInput holds the parameters for registering a seller.
type CreateSellerInput struct {
	BusinessName  string  `json:"business_name" validate:"required,min=1,max=255"`
	BusinessEmail string  `json:"business_email" validate:"required,email"`
	BusinessPhone string  `json:"business_phone" validate:"required,max=32"`
	License       *string `json:"license"`
	AddressLine1  string  `json:"address_line1" validate:"required,max=255"`
	AddressLine2  *string `json:"address_line2" validate:"omitempty,max=255"`
	City          string  `json:"city" validate:"required,max=100"`
	State         string  `json:"state" validate:"required,max=100"`
	Country       string  `json:"country" validate:"required,max=100"`
	PostalCode    string  `json:"postal_code" validate:"required,max=20"`
}

// UpdateSellerInput holds the parameters for updating a seller. The slug is
// never recomputed on rename.
type UpdateSellerInput struct {
	BusinessName  *string `json:"business_name" validate:"omitempty,min=1,max=255"`
	BusinessEmail *string `json:"business_email" validate:"omitempty,email"`
	BusinessPhone *string `json:"business_phone" validate:"omitempty,max=32"`
	License       *string `json:"license"`
	AddressLine1  *string `json:"address_line1" validate:"omitempty,max=255"`
	AddressLine2  *string `json:"address_line2" validate:"omitempty,max=255"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Country       *string `json:"country" validate:"omitempty,max=100"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,max=20"`
	IsVerified    *bool   `json:"is_verified"`
	IsActive      *bool   `json:"is_active"`
}

// SellerFilter defines filter criteria for listing sellers.
type SellerFilter struct {
	IsActive   *bool
	IsVerified *bool
	Page       int
	PerPage    int
}

// SellerRepository defines the interface for seller persistence operations.
type SellerRepository interface {
	// Create inserts a new seller.
	Create(ctx context.Context, s *Seller) error

	// GetByID retrieves a seller by its identifier.
	GetByID(ctx context.Context, id string) (*Seller, error)

	// Update modifies an existing seller.
	Update(ctx context.Context, s *Seller) error

	// List returns sellers matching the filter along with the total count.
	List(ctx context.Context, filter SellerFilter) ([]*Seller, int, error)
}
