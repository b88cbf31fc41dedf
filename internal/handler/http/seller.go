package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jince360/styvia/internal/domain"
	"github.com/jince360/styvia/internal/service"
	"github.com/jince360/styvia/pkg/httputil"
	"github.com/jince360/styvia/pkg/validator"
)

// SellerHandler handles HTTP requests for sellers.
type SellerHandler struct {
	service *service.SellerService
	logger  *slog.Logger
}

// NewSellerHandler creates a new seller HTTP handler.
func NewSellerHandler(svc *service.SellerService, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		service: svc,
		logger:  logger,
	}
}

// ListSellers handles GET /api/v1/sellers
func (h *SellerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	filter := domain.SellerFilter{Page: 1, PerPage: 20}

	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "page must be a positive integer"},
			})
			return
		}
		filter.Page = page
	}
	if v := q.Get("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "per_page must be a positive integer"},
			})
			return
		}
		filter.PerPage = perPage
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "is_active must be a boolean"},
			})
			return
		}
		filter.IsActive = &active
	}
	if v := q.Get("is_verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "is_verified must be a boolean"},
			})
			return
		}
		filter.IsVerified = &verified
	}

	sellers, total, err := h.service.ListSellers(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(sellers, total, filter.Page, filter.PerPage))
}

// CreateSeller handles POST /api/v1/sellers
func (h *SellerHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSellerInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	seller, err := h.service.CreateSeller(r.Context(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: seller})
}

// GetSeller handles GET /api/v1/sellers/{id}
func (h *SellerHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	seller, err := h.service.GetSeller(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: seller})
}

// UpdateSeller handles PUT /api/v1/sellers/{id}
func (h *SellerHandler) UpdateSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req domain.UpdateSellerInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validator.Validate(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	seller, err := h.service.UpdateSeller(r.Context(), id.String(), &req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: seller})
}
