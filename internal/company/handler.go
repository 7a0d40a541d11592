package company

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/shared"
)

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := shared.TenantFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrTenantMissing)
		return
	}

	profile, err := h.service.Get(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("get company profile", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := shared.TenantFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrTenantMissing)
		return
	}

	var req SaveProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	profile, err := h.service.Save(r.Context(), tenantID, req)
	if err != nil {
		h.logger.Error("save company profile", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}
