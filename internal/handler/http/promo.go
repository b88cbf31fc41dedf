package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/service"
	"github.com/jince360/styvia/pkg/httputil"
	"github.com/jince360/styvia/pkg/validator"
)

// PromoHandler handles HTTP requests for promo heroes and category banners.
type PromoHandler struct {
	service *service.PromoService
	logger  *slog.Logger
}

// NewPromoHandler creates a new promo HTTP handler.
func NewPromoHandler(svc *service.PromoService, logger *slog.Logger) *PromoHandler {
	return &PromoHandler{
		service: svc,
		logger:  logger,
	}
}

// ListHeroes handles GET /api/v1/heroes
func (h *PromoHandler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.service.ListHeroes(r.Context(), parseActiveOnly(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: heroes})
}

// CreateHero handles POST /api/v1/heroes
func (h *PromoHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateHeroInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	hero, err := h.service.CreateHero(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: hero})
}

// GetHero handles GET /api/v1/heroes/{id}
func (h *PromoHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	hero, err := h.service.GetHero(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: hero})
}

// UpdateHero handles PUT /api/v1/heroes/{id}
func (h *PromoHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req domain.UpdateHeroInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	hero, err := h.service.UpdateHero(r.Context(), id.String(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: hero})
}

// DeleteHero handles DELETE /api/v1/heroes/{id}
func (h *PromoHandler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteHero(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}

// CreateBanner handles POST /api/v1/banners
func (h *PromoHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBannerInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: banner})
}

// GetBanner handles GET /api/v1/banners/{id}
func (h *PromoHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	banner, err := h.service.GetBanner(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: banner})
}

// UpdateBanner handles PUT /api/v1/banners/{id}
func (h *PromoHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req domain.UpdateBannerInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	banner, err := h.service.UpdateBanner(r.Context(), id.String(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: banner})
}

// DeleteBanner handles DELETE /api/v1/banners/{id}
func (h *PromoHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteBanner(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}

// AddBannerImage handles POST /api/v1/banners/{id}/images
func (h *PromoHandler) AddBannerImage(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req domain.AddBannerImageInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	img, err := h.service.AddBannerImage(r.Context(), id.String(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: img})
}

// DeleteBannerImage handles DELETE /api/v1/banner-images/{id}
func (h *PromoHandler) DeleteBannerImage(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteBannerImage(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
