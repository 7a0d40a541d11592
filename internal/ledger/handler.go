package ledger

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the ledger endpoint on the parties subtree.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{id}/ledger", h.reconcile)
}

// parsePeriod reads the inclusive from/to query params. A missing "from"
// opens the period at the beginning of history; a missing "to" closes it
// today.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().UTC()

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, errors.New("from must be formatted YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, errors.New("to must be formatted YYYY-MM-DD")
		}
		to = parsed
	}
	return from, to, nil
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := shared.TenantFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrTenantMissing)
		return
	}
	partyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "party id must be a UUID")
		return
	}
	from, to, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}

	view, err := h.service.Reconcile(r.Context(), tenantID, partyID, from, to)
	if err != nil {
		if errors.Is(err, parties.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("reconcile ledger", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
