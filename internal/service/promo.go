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

// PromoService implements the business logic for hero slides and category
// banners, enforcing the hero cap and the one-active-banner-per-category
// rule.
type PromoService struct {
	repo     domain.PromoRepository
	taxonomy domain.TaxonomyRepository
	logger   *slog.Logger
}

// NewPromoService creates a new promo service.
func NewPromoService(repo domain.PromoRepository, taxonomy domain.TaxonomyRepository, logger *slog.Logger) *PromoService {
	return &PromoService{
		repo:     repo,
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// CreateHero creates a new hero slide. Activating it counts against the
// hero cap.
func (s *PromoService) CreateHero(ctx context.Context, input *domain.CreateHeroInput) (*domain.Hero, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	isActive := boolOrDefault(input.IsActive, true)
	if isActive {
		if err := s.checkHeroCap(ctx, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	hero := &domain.Hero{
		ID:              uuid.New().String(),
		Title:           input.Title,
		DesktopImageURL: input.DesktopImageURL,
		MobileImageURL:  input.MobileImageURL,
		LinkURL:         input.LinkURL,
		SortOrder:       input.SortOrder,
		IsActive:        isActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateHero(ctx, hero); err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}

	s.logger.InfoContext(ctx, "hero created",
		slog.String("hero_id", hero.ID),
		slog.Bool("is_active", hero.IsActive),
	)

	return hero, nil
}

// GetHero retrieves a hero by its ID.
func (s *PromoService) GetHero(ctx context.Context, id string) (*domain.Hero, error) {
	hero, err := s.repo.GetHeroByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	return hero, nil
}

// ListHeroes returns heroes in display order.
func (s *PromoService) ListHeroes(ctx context.Context, activeOnly bool) ([]*domain.Hero, error) {
	heroes, err := s.repo.ListHeroes(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	if heroes == nil {
		heroes = []*domain.Hero{}
	}
	return heroes, nil
}

// UpdateHero applies partial updates to a hero. Activating an inactive hero
// counts against the hero cap.
func (s *PromoService) UpdateHero(ctx context.Context, id string, input *domain.UpdateHeroInput) (*domain.Hero, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	hero, err := s.repo.GetHeroByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hero for update: %w", err)
	}

	if input.IsActive != nil && *input.IsActive && !hero.IsActive {
		if err := s.checkHeroCap(ctx, hero.ID); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		hero.Title = *input.Title
	}
	if input.DesktopImageURL != nil {
		hero.DesktopImageURL = *input.DesktopImageURL
	}
	if input.MobileImageURL != nil {
		hero.MobileImageURL = *input.MobileImageURL
	}
	if input.LinkURL != nil {
		hero.LinkURL = input.LinkURL
	}
	if input.SortOrder != nil {
		hero.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		hero.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateHero(ctx, hero); err != nil {
		return nil, fmt.Errorf("update hero: %w", err)
	}

	s.logger.InfoContext(ctx, "hero updated",
		slog.String("hero_id", hero.ID),
		slog.Bool("is_active", hero.IsActive),
	)

	return hero, nil
}

// DeleteHero removes a hero slide.
func (s *PromoService) DeleteHero(ctx context.Context, id string) error {
	if err := s.repo.DeleteHero(ctx, id); err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}

	s.logger.InfoContext(ctx, "hero deleted",
		slog.String("hero_id", id),
	)

	return nil
}

// CreateBanner creates a banner for a main category. Creating it active
// conflicts when that category already has an active banner.
func (s *PromoService) CreateBanner(ctx context.Context, input *domain.CreateBannerInput) (*domain.Banner, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if _, err := s.taxonomy.GetMainCategoryByID(ctx, input.MainCategoryID); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown main category %q", input.MainCategoryID))
	}

	isActive := boolOrDefault(input.IsActive, true)
	if isActive {
		if err := s.checkBannerExclusive(ctx, input.MainCategoryID, ""); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	banner := &domain.Banner{
		ID:             uuid.New().String(),
		MainCategoryID: input.MainCategoryID,
		Title:          input.Title,
		IsActive:       isActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner created",
		slog.String("banner_id", banner.ID),
		slog.String("main_category_id", banner.MainCategoryID),
		slog.Bool("is_active", banner.IsActive),
	)

	return banner, nil
}

// GetBanner retrieves a banner by its ID.
func (s *PromoService) GetBanner(ctx context.Context, id string) (*domain.Banner, error) {
	banner, err := s.repo.GetBannerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return banner, nil
}

// UpdateBanner applies partial updates to a banner. Activating an inactive
// banner conflicts when its category already has another active banner.
func (s *PromoService) UpdateBanner(ctx context.Context, id string, input *domain.UpdateBannerInput) (*domain.Banner, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	banner, err := s.repo.GetBannerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner for update: %w", err)
	}

	if input.IsActive != nil && *input.IsActive && !banner.IsActive {
		if err := s.checkBannerExclusive(ctx, banner.MainCategoryID, banner.ID); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateBanner(ctx, banner); err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner updated",
		slog.String("banner_id", banner.ID),
		slog.Bool("is_active", banner.IsActive),
	)

	return banner, nil
}

// DeleteBanner removes a banner and its slides.
func (s *PromoService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}

	s.logger.InfoContext(ctx, "banner deleted",
		slog.String("banner_id", id),
	)

	return nil
}

// AddBannerImage adds a slide to an existing banner.
func (s *PromoService) AddBannerImage(ctx context.Context, bannerID string, input *domain.AddBannerImageInput) (*domain.BannerImage, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	banner, err := s.repo.GetBannerByID(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("get banner for image: %w", err)
	}

	img := &domain.BannerImage{
		ID:        uuid.New().String(),
		BannerID:  banner.ID,
		ImageURL:  input.ImageURL,
		AltText:   input.AltText,
		SortOrder: input.SortOrder,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddBannerImage(ctx, img); err != nil {
		return nil, fmt.Errorf("add banner image: %w", err)
	}

	s.logger.InfoContext(ctx, "banner image added",
		slog.String("banner_image_id", img.ID),
		slog.String("banner_id", banner.ID),
	)

	return img, nil
}

// DeleteBannerImage removes a banner slide.
func (s *PromoService) DeleteBannerImage(ctx context.Context, id string) error {
	if err := s.repo.DeleteBannerImage(ctx, id); err != nil {
		return fmt.Errorf("delete banner image: %w", err)
	}

	s.logger.InfoContext(ctx, "banner image deleted",
		slog.String("banner_image_id", id),
	)

	return nil
}

// checkHeroCap fails with a conflict when activating one more hero would
// exceed the cap.
func (s *PromoService) checkHeroCap(ctx context.Context, excludeID string) error {
	active, err := s.repo.CountActiveHeroes(ctx, excludeID)
	if err != nil {
		return fmt.Errorf("count active heroes: %w", err)
	}
	if active >= domain.MaxActiveHeroes {
		return apperrors.Conflict(fmt.Sprintf("at most %d heroes may be active at once", domain.MaxActiveHeroes))
	}
	return nil
}

// checkBannerExclusive fails with a conflict when the main category already
// has another active banner.
func (s *PromoService) checkBannerExclusive(ctx context.Context, mainCategoryID, excludeID string) error {
	active, err := s.repo.CountActiveBanners(ctx, mainCategoryID, excludeID)
	if err != nil {
		return fmt.Errorf("count active banners: %w", err)
	}
	if active > 0 {
		return apperrors.Conflict("the main category already has an active banner")
	}
	return nil
}
