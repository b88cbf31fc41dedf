package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jince360/styvia/internal/repository"
	"github.com/jince360/styvia/internal/service"
	"github.com/jince360/styvia/pkg/httputil"
)

// StorefrontHandler handles the shopper-facing read endpoints.
type StorefrontHandler struct {
	service *service.StorefrontService
	logger  *slog.Logger
}

// NewStorefrontHandler creates a new storefront HTTP handler.
func NewStorefrontHandler(svc *service.StorefrontService, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service: svc,
		logger:  logger,
	}
}

// Home handles GET /api/v1/home
// Returns the active hero slides and the navigation tree.
func (h *StorefrontHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: home})
}

// BrowseAll handles GET /api/v1/store
// Returns one filtered page of the whole active catalog. The same query
// parameters apply as on a category page; facets and banner slides are
// omitted because there is no main-category scope.
func (h *StorefrontHandler) BrowseAll(w http.ResponseWriter, r *http.Request) {
	filter := parseStorefrontFilter(r)

	page, err := h.service.BrowseAll(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
}

// Browse handles GET /api/v1/store/{mainCategorySlug}
// Returns one filtered page of a main category with facet data and banner
// slides. Filter dimensions arrive as repeatable query parameters
// (subcategory, category, brand, color) plus price_range=min-max, page, and
// per_page. Malformed filter values are dropped rather than rejected so a
// stale link still renders the page.
func (h *StorefrontHandler) Browse(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "mainCategorySlug")
	filter := parseStorefrontFilter(r)

	page, err := h.service.Browse(r.Context(), slug, filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
}

// parseStorefrontFilter builds the browse filter from query parameters.
func parseStorefrontFilter(r *http.Request) repository.StorefrontFilter {
	q := r.URL.Query()
	filter := repository.StorefrontFilter{
		Page:    1,
		PerPage: 20,
	}

	filter.SubCategorySlugs = nonEmpty(q["subcategory"])
	filter.CategorySlugs = nonEmpty(q["category"])
	filter.Colors = nonEmpty(q["color"])

	// Brand filters are IDs; tokens that are not UUIDs are dropped.
	for _, v := range q["brand"] {
		if _, err := uuid.Parse(v); err == nil {
			filter.BrandIDs = append(filter.BrandIDs, v)
		}
	}

	if v := q.Get("price_range"); v != "" {
		if min, max, ok := parsePriceRange(v); ok {
			filter.PriceMin = &min
			filter.PriceMax = &max
		}
	}

	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 1 {
			filter.Page = page
		}
	}
	if v := q.Get("per_page"); v != "" {
		if perPage, err := strconv.Atoi(v); err == nil && perPage >= 1 && perPage <= 100 {
			filter.PerPage = perPage
		}
	}

	return filter
}

// parsePriceRange parses a "min-max" pair of minor-unit prices.
func parsePriceRange(v string) (int64, int64, bool) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || min < 0 {
		return 0, 0, false
	}
	max, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || max < min {
		return 0, 0, false
	}

	return min, max, true
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
