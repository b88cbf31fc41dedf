package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jince360/styvia/internal/domain"
	apperrors "github.com/jince360/styvia/pkg/errors"
	"github.com/jince360/styvia/pkg/validator"
)

// SizeService implements the business logic for size groups and sizes.
type SizeService struct {
	repo   domain.SizeRepository
	logger *slog.Logger
}

// NewSizeService creates a new size service.
func NewSizeService(repo domain.SizeRepository, logger *slog.Logger) *SizeService {
	return &SizeService{
		repo:   repo,
		logger: logger,
	}
}

// CreateGroup creates a new size group.
func (s *SizeService) CreateGroup(ctx context.Context, input *domain.CreateSizeGroupInput) (*domain.SizeGroup, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	now := time.Now().UTC()
	group := &domain.SizeGroup{
		ID:        uuid.New().String(),
		Name:      input.Name,
		IsActive:  boolOrDefault(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("create size group: %w", err)
	}

	s.logger.InfoContext(ctx, "size group created",
		slog.String("size_group_id", group.ID),
		slog.String("name", group.Name),
	)

	return group, nil
}

// GetGroup retrieves a size group by its ID.
func (s *SizeService) GetGroup(ctx context.Context, id string) (*domain.SizeGroup, error) {
	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get size group: %w", err)
	}
	domain.SortDisplayables(group.Sizes)
	return group, nil
}

// ListGroups returns size groups with their sizes nested in display order.
func (s *SizeService) ListGroups(ctx context.Context, activeOnly bool) ([]*domain.SizeGroup, error) {
	groups, err := s.repo.ListGroups(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list size groups: %w", err)
	}
	if groups == nil {
		groups = []*domain.SizeGroup{}
	}
	return groups, nil
}

// CreateSize adds a size to an existing group.
func (s *SizeService) CreateSize(ctx context.Context, input *domain.CreateSizeInput) (*domain.Size, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if _, err := s.repo.GetGroupByID(ctx, input.SizeGroupID); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown size group %q", input.SizeGroupID))
	}

	now := time.Now().UTC()
	size := &domain.Size{
		ID:          uuid.New().String(),
		SizeGroupID: input.SizeGroupID,
		Name:        input.Name,
		SortOrder:   input.SortOrder,
		IsActive:    boolOrDefault(input.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateSize(ctx, size); err != nil {
		return nil, fmt.Errorf("create size: %w", err)
	}

	s.logger.InfoContext(ctx, "size created",
		slog.String("size_id", size.ID),
		slog.String("size_group_id", size.SizeGroupID),
	)

	return size, nil
}

// DeleteSize removes a size. Variants referencing it keep existing with the
// reference nulled.
func (s *SizeService) DeleteSize(ctx context.Context, id string) error {
	if err := s.repo.DeleteSize(ctx, id); err != nil {
		return fmt.Errorf("delete size: %w", err)
	}

	s.logger.InfoContext(ctx, "size deleted",
		slog.String("size_id", id),
	)

	return nil
}
