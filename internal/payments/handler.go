package payments

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/parties"
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
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) tenant(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	tenantID, ok := shared.TenantFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrTenantMissing)
	}
	return tenantID, ok
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, parties.ErrNotFound):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Unknown Party", err.Error())
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	req := ListPaymentsRequest{
		DateFrom: r.URL.Query().Get("from"),
		DateTo:   r.URL.Query().Get("to"),
		Page:     page,
		PerPage:  perPage,
	}
	if raw := r.URL.Query().Get("party_id"); raw != "" {
		partyID, err := uuid.Parse(raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Filter", "party_id must be a UUID")
			return
		}
		req.PartyID = &partyID
	}

	items, total, err := h.service.List(r.Context(), tenantID, req)
	if err != nil {
		h.logger.Error("list payments", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"payments":   items,
		"pagination": shared.NewPagination(req.Page, req.PerPage, total),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "payment id must be a UUID")
		return
	}

	payment, err := h.service.Get(r.Context(), tenantID, id)
	if err != nil {
		h.respondServiceError(w, "get payment", err)
		return
	}
	httpx.JSON(w, http.StatusOK, payment)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}

	var req SavePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	payment, err := h.service.Create(r.Context(), tenantID, req)
	if err != nil {
		h.respondServiceError(w, "create payment", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, payment)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "payment id must be a UUID")
		return
	}

	var req SavePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	payment, err := h.service.Update(r.Context(), tenantID, id, req)
	if err != nil {
		h.respondServiceError(w, "update payment", err)
		return
	}
	httpx.JSON(w, http.StatusOK, payment)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "payment id must be a UUID")
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, id); err != nil {
		h.respondServiceError(w, "delete payment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
