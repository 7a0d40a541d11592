package invoices

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
	r.Get("/{id}/print", h.print)
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
	case errors.Is(err, ErrDuplicateNumber):
		httpx.Problem(w, http.StatusConflict, "Duplicate Number", err.Error())
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
	req := ListInvoicesRequest{
		DocumentType: r.URL.Query().Get("type"),
		DateFrom:     r.URL.Query().Get("from"),
		DateTo:       r.URL.Query().Get("to"),
		Page:         page,
		PerPage:      perPage,
	}
	if raw := r.URL.Query().Get("buyer_id"); raw != "" {
		buyerID, err := uuid.Parse(raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Filter", "buyer_id must be a UUID")
			return
		}
		req.BuyerID = &buyerID
	}

	items, total, err := h.service.List(r.Context(), tenantID, req)
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"invoices":   items,
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
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "invoice id must be a UUID")
		return
	}

	invoice, err := h.service.Get(r.Context(), tenantID, id)
	if err != nil {
		h.respondServiceError(w, "get invoice", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}

	var req SaveInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	invoice, err := h.service.Create(r.Context(), tenantID, req)
	if err != nil {
		h.respondServiceError(w, "create invoice", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, invoice)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "invoice id must be a UUID")
		return
	}

	var req SaveInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	invoice, err := h.service.Update(r.Context(), tenantID, id, req)
	if err != nil {
		h.respondServiceError(w, "update invoice", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "invoice id must be a UUID")
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, id); err != nil {
		h.respondServiceError(w, "delete invoice", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) print(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenant(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "invoice id must be a UUID")
		return
	}

	payload, err := h.service.Print(r.Context(), tenantID, id)
	if err != nil {
		h.respondServiceError(w, "print invoice", err)
		return
	}
	httpx.JSON(w, http.StatusOK, payload)
}
