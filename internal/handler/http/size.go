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

// SizeHandler handles HTTP requests for size groups and sizes.
type SizeHandler struct {
	service *service.SizeService
	logger  *slog.Logger
}

// NewSizeHandler creates a new size HTTP handler.
func NewSizeHandler(svc *service.SizeService, logger *slog.Logger) *SizeHandler {
	return &SizeHandler{
		service: svc,
		logger:  logger,
	}
}

// ListGroups handles GET /api/v1/sizes
func (h *SizeHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context(), parseActiveOnly(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: groups})
}

// CreateGroup handles POST /api/v1/sizes/groups
func (h *SizeHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSizeGroupInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	group, err := h.service.CreateGroup(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: group})
}

// GetGroup handles GET /api/v1/sizes/groups/{id}
func (h *SizeHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	group, err := h.service.GetGroup(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: group})
}

// CreateSize handles POST /api/v1/sizes
func (h *SizeHandler) CreateSize(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSizeInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	size, err := h.service.CreateSize(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: size})
}

// DeleteSize handles DELETE /api/v1/sizes/{id}
func (h *SizeHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteSize(r.Context(), id.String()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id.String(), "status": "deleted"}})
}
