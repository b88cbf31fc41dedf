package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jince360/styvia/internal/domain"
	apperrors "github.com/jince360/styvia/pkg/errors"
)

var heroCols = []string{
	"id", "title", "desktop_image_url", "mobile_image_url", "link_url",
	"sort_order", "is_active", "created_at", "updated_at",
}

func sampleHero() domain.Hero {
	return domain.Hero{
		ID:              "hero-1",
		Title:           "New Season",
		DesktopImageURL: "https://cdn.example.com/hero-desktop.jpg",
		MobileImageURL:  "https://cdn.example.com/hero-mobile.jpg",
		LinkURL:         strPtr("/store/women"),
		SortOrder:       0,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func heroRow(h domain.Hero) []any {
	return []any{
		h.ID, h.Title, h.DesktopImageURL, h.MobileImageURL, h.LinkURL,
		h.SortOrder, h.IsActive, h.CreatedAt, h.UpdatedAt,
	}
}

func TestPromoRepository_CreateHero_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	h := sampleHero()
	mock.ExpectExec("INSERT INTO heroes").
		WithArgs(h.ID, h.Title, h.DesktopImageURL, h.MobileImageURL, h.LinkURL, h.SortOrder, h.IsActive, h.CreatedAt, h.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateHero(context.Background(), &h)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_ListHeroes_ActiveOnly(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	h := sampleHero()
	mock.ExpectQuery("SELECT .+ FROM heroes\\s+WHERE is_active = true").
		WillReturnRows(pgxmock.NewRows(heroCols).AddRow(heroRow(h)...))

	heroes, err := repo.ListHeroes(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, heroes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_CountActiveHeroes(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	mock.ExpectQuery("SELECT count").
		WithArgs("hero-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountActiveHeroes(context.Background(), "hero-1")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_GetActiveBannerWithImages(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	bannerCols := []string{"id", "main_category_id", "title", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT .+ FROM banners\\s+WHERE main_category_id").
		WithArgs("main-1").
		WillReturnRows(pgxmock.NewRows(bannerCols).
			AddRow("banner-1", "main-1", "Summer Drop", true, now, now))

	imgCols := []string{"id", "banner_id", "image_url", "alt_text", "sort_order", "created_at"}
	mock.ExpectQuery("SELECT .+ FROM banner_images").
		WithArgs("banner-1").
		WillReturnRows(pgxmock.NewRows(imgCols).
			AddRow("bimg-1", "banner-1", "https://cdn.example.com/slide1.jpg", "slide 1", 0, now).
			AddRow("bimg-2", "banner-1", "https://cdn.example.com/slide2.jpg", "slide 2", 1, now))

	b, err := repo.GetActiveBannerWithImages(context.Background(), "main-1")
	require.NoError(t, err)
	assert.Equal(t, "Summer Drop", b.Title)
	require.Len(t, b.Images, 2)
	assert.Equal(t, "bimg-1", b.Images[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_GetActiveBannerWithImages_None(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM banners\\s+WHERE main_category_id").
		WithArgs("main-2").
		WillReturnError(pgx.ErrNoRows)

	b, err := repo.GetActiveBannerWithImages(context.Background(), "main-2")
	assert.Nil(t, b)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_CountActiveBanners(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	mock.ExpectQuery("SELECT count").
		WithArgs("main-1", "").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountActiveBanners(context.Background(), "main-1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoRepository_DeleteBannerImage_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPromoRepository(mock)

	mock.ExpectExec("DELETE FROM banner_images WHERE").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteBannerImage(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
