package domain

import (
	"context"
	"time"
)

// SizeGroup is a named set of sizes (e.g. clothing letters, shoe numbers).
type SizeGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sizes []*Size `json:"sizes,omitempty"`
}

// Size is a single size within a group. Deleting a size nulls the reference
// on any variant using it.
type Size struct {
	ID          string    `json:"id"`
	SizeGroupID string    `json:"size_group_id"`
	Name        string    `json:"name"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Size) SortKey() (int, string) { return s.SortOrder, s.Name }

// CreateSizeGroupInput holds the parameters for creating a size group.
type CreateSizeGroupInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	IsActive *bool  `json:"is_active"`
}

// CreateSizeInput holds the parameters for creating a size within a group.
type CreateSizeInput struct {
	SizeGroupID string `json:"size_group_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=50"`
	SortOrder   int    `json:"sort_order" validate:"gte=0"`
	IsActive    *bool  `json:"is_active"`
}

// SizeRepository defines persistence operations for the size taxonomy.
type SizeRepository interface {
	// CreateGroup inserts a new size group.
	CreateGroup(ctx context.Context, g *SizeGroup) error

	// GetGroupByID retrieves a size group by its identifier.
	GetGroupByID(ctx context.Context, id string) (*SizeGroup, error)

	// ListGroups returns size groups with their sizes nested, sizes ordered
	// by (sort_order, name).
	ListGroups(ctx context.Context, activeOnly bool) ([]*SizeGroup, error)

	// CreateSize inserts a new size.
	CreateSize(ctx context.Context, s *Size) error

	// GetSizeByID retrieves a size by its identifier.
	GetSizeByID(ctx context.Context, id string) (*Size, error)

	// DeleteSize removes a size; variant references are set to null.
	DeleteSize(ctx context.Context, id string) error
}
