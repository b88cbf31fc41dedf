package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jince360/styvia/internal/domain"
	apperrors "github.com/jince360/styvia/pkg/errors"
	"github.com/jince360/styvia/pkg/slug"
	"github.com/jince360/styvia/pkg/validator"
)

// SellerService implements the business logic for the seller registry.
type SellerService struct {
	repo   domain.SellerRepository
	logger *slog.Logger
}

// NewSellerService creates a new seller service.
func NewSellerService(repo domain.SellerRepository, logger *slog.Logger) *SellerService {
	return &SellerService{
		repo:   repo,
		logger: logger,
	}
}

// CreateSeller registers a new seller. Sellers start unverified; the slug is
// derived from the business name and stays fixed.
func (s *SellerService) CreateSeller(ctx context.Context, input *domain.CreateSellerInput) (*domain.Seller, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	now := time.Now().UTC()
	seller := &domain.Seller{
		ID:            uuid.New().String(),
		BusinessName:  input.BusinessName,
		Slug:          slug.Generate(input.BusinessName),
		BusinessEmail: input.BusinessEmail,
		BusinessPhone: input.BusinessPhone,
		License:       input.License,
		AddressLine1:  input.AddressLine1,
		AddressLine2:  input.AddressLine2,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		PostalCode:    input.PostalCode,
		IsVerified:    false,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, fmt.Errorf("create seller: %w", err)
	}

	s.logger.InfoContext(ctx, "seller created",
		slog.String("seller_id", seller.ID),
		slog.String("slug", seller.Slug),
	)

	return seller, nil
}

// GetSeller retrieves a seller by its ID.
func (s *SellerService) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	seller, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return seller, nil
}

// ListSellers returns a filtered, paginated seller list with the total count.
func (s *SellerService) ListSellers(ctx context.Context, filter domain.SellerFilter) ([]*domain.Seller, int, error) {
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)

	sellers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list sellers: %w", err)
	}
	if sellers == nil {
		sellers = []*domain.Seller{}
	}
	return sellers, total, nil
}

// UpdateSeller applies partial updates to a seller, including verification
// and activation flags. The slug never changes on rename.
func (s *SellerService) UpdateSeller(ctx context.Context, id string, input *domain.UpdateSellerInput) (*domain.Seller, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	seller, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seller for update: %w", err)
	}

	if input.BusinessName != nil {
		seller.BusinessName = *input.BusinessName
	}
	if input.BusinessEmail != nil {
		seller.BusinessEmail = *input.BusinessEmail
	}
	if input.BusinessPhone != nil {
		seller.BusinessPhone = *input.BusinessPhone
	}
	if input.License != nil {
		seller.License = input.License
	}
	if input.AddressLine1 != nil {
		seller.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		seller.AddressLine2 = input.AddressLine2
	}
	if input.City != nil {
		seller.City = *input.City
	}
	if input.State != nil {
		seller.State = *input.State
	}
	if input.Country != nil {
		seller.Country = *input.Country
	}
	if input.PostalCode != nil {
		seller.PostalCode = *input.PostalCode
	}
	if input.IsVerified != nil {
		seller.IsVerified = *input.IsVerified
	}
	if input.IsActive != nil {
		seller.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, fmt.Errorf("update seller: %w", err)
	}

	s.logger.InfoContext(ctx, "seller updated",
		slog.String("seller_id", seller.ID),
	)

	return seller, nil
}
