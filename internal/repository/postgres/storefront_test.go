package postgres

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jince360/styvia/internal/repository"
)

func TestStorefrontRepository_ListProducts_NoScope(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	p := sampleProduct()
	row := append(productRow(p), 1)

	mock.ExpectQuery("SELECT .+ FROM products\\s+WHERE is_active = true").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(productColsWithCount).AddRow(row...))

	products, total, err := repo.ListProducts(context.Background(), repository.StorefrontFilter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_ListProducts_AllDimensions(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	p := sampleProduct()
	row := append(productRow(p), 1)

	filter := repository.StorefrontFilter{
		MainCategoryID:   strPtr("main-1"),
		SubCategorySlugs: []string{"shirts"},
		CategorySlugs:    []string{"linen", "casual"},
		BrandIDs:         []string{"brand-1"},
		Colors:           []string{"white", "blue"},
		PriceMin:         int64Ptr(1000),
		PriceMax:         int64Ptr(9999),
		Page:             1,
		PerPage:          10,
	}

	// main=$1, sub slugs=$2, cat slugs=$3, brands=$4, colors=$5,
	// price>=$6, price<=$7, LIMIT $8 OFFSET $9
	mock.ExpectQuery("SELECT .+ FROM products").
		WithArgs(
			"main-1",
			[]string{"shirts"},
			[]string{"linen", "casual"},
			[]string{"brand-1"},
			[]string{"white", "blue"},
			int64(1000), int64(9999),
			10, 0,
		).
		WillReturnRows(pgxmock.NewRows(productColsWithCount).AddRow(row...))

	products, total, err := repo.ListProducts(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_ListProducts_PriceFilterUsesEffectivePrice(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	filter := repository.StorefrontFilter{
		PriceMin: int64Ptr(2000),
		PriceMax: int64Ptr(5000),
		Page:     1,
		PerPage:  20,
	}

	// The range must compare against COALESCE(sale_price, base_price).
	mock.ExpectQuery(`COALESCE\(sale_price, base_price\) >= \$1.+COALESCE\(sale_price, base_price\) <= \$2`).
		WithArgs(int64(2000), int64(5000), 20, 0).
		WillReturnRows(pgxmock.NewRows(productColsWithCount))

	products, total, err := repo.ListProducts(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_DistinctColors(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	mock.ExpectQuery("SELECT DISTINCT color").
		WithArgs("main-1").
		WillReturnRows(pgxmock.NewRows([]string{"color"}).AddRow("black").AddRow("white"))

	colors, err := repo.DistinctColors(context.Background(), "main-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"black", "white"}, colors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_PriceRange(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	mock.ExpectQuery(`SELECT min\(base_price\), max\(base_price\)`).
		WithArgs("main-1").
		WillReturnRows(pgxmock.NewRows([]string{"min", "max"}).AddRow(int64Ptr(1999), int64Ptr(14999)))

	pr, err := repo.PriceRange(context.Background(), "main-1")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, int64(1999), pr.Min)
	assert.Equal(t, int64(14999), pr.Max)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_PriceRange_EmptyScope(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	mock.ExpectQuery(`SELECT min\(base_price\), max\(base_price\)`).
		WithArgs("main-empty").
		WillReturnRows(pgxmock.NewRows([]string{"min", "max"}).AddRow((*int64)(nil), (*int64)(nil)))

	pr, err := repo.PriceRange(context.Background(), "main-empty")
	require.NoError(t, err)
	assert.Nil(t, pr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_BrandsInScope(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	cols := []string{"id", "name", "slug", "logo_url", "is_active", "is_popular", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT DISTINCT b.id").
		WithArgs("main-1").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("brand-1", "Acme", "acme", (*string)(nil), true, false, now, now))

	brands, err := repo.BrandsInScope(context.Background(), "main-1")
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Acme", brands[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_BrandsByIDs(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	cols := []string{"id", "name", "slug", "logo_url", "is_active", "is_popular", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT .+ FROM brands").
		WithArgs([]string{"brand-1", "brand-2"}).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("brand-1", "Acme", "acme", (*string)(nil), true, false, now, now).
			AddRow("brand-2", "Globex", "globex", (*string)(nil), true, true, now, now))

	byID, err := repo.BrandsByIDs(context.Background(), []string{"brand-1", "brand-2"})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "Globex", byID["brand-2"].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_BrandsByIDs_EmptyInput(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	byID, err := repo.BrandsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, byID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorefrontRepository_SellersByIDs(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewStorefrontRepository(mock)

	cols := []string{
		"id", "business_name", "slug", "business_email", "business_phone", "license",
		"address_line1", "address_line2", "city", "state", "country", "postal_code",
		"is_verified", "is_active", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT .+ FROM sellers").
		WithArgs([]string{"seller-1"}).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("seller-1", "Styvia Textiles", "styvia-textiles", "ops@styvia.example", "+15550101", (*string)(nil),
				"1 Market St", (*string)(nil), "Lagos", "Lagos", "NG", "100001",
				true, true, now, now))

	byID, err := repo.SellersByIDs(context.Background(), []string{"seller-1"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Styvia Textiles", byID["seller-1"].BusinessName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
