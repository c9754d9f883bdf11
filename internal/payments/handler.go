package payments

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/payd-hq/payd/internal/observability"
	"github.com/payd-hq/payd/internal/platform/httpx"
)

// Handler manages payment endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	metrics  *observability.Metrics
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// MountRoutes registers payment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.request)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.decide)
}

// MountCustomerRoutes registers the per-customer payment listing under the
// customers subtree.
func (h *Handler) MountCustomerRoutes(r chi.Router) {
	r.Get("/{id}/payments", h.listForCustomer)
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	var payload PaymentPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := h.service.Request(r.Context(), Payment{
		ID:             payload.ID,
		Amount:         payload.Amount,
		PaymentDateUTC: payload.PaymentDateUTC,
		Comment:        payload.Comment,
		CustomerID:     payload.CustomerID,
		ApproverID:     payload.ApproverID,
	})
	if err != nil {
		h.logger.Error("request payment", slog.Any("error", err), slog.String("customer_id", payload.CustomerID.String()))
		httpx.RespondError(w, err)
		return
	}

	h.metrics.RecordPaymentOutcome(string(created.Status))
	h.logger.Info("payment requested",
		slog.String("payment_id", created.ID.String()),
		slog.String("customer_id", created.CustomerID.String()),
		slog.String("status", string(created.Status)),
		slog.String("amount", created.Amount.String()),
	)
	httpx.JSON(w, http.StatusCreated, toPayload(created))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid payment ID")
		return
	}
	payment, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPayload(payment))
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid payment ID")
		return
	}
	var payload DecidePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	// Path/body mismatch is a client error, rejected before the engine runs.
	if payload.ID != id {
		httpx.ProblemCode(w, http.StatusBadRequest, "Bad Request", "body ID does not match path ID", "id_mismatch")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	updated, err := h.service.Decide(r.Context(), Payment{
		ID:         payload.ID,
		Status:     payload.Status,
		Comment:    payload.Comment,
		CustomerID: payload.CustomerID,
		ApproverID: payload.ApproverID,
	})
	if err != nil {
		h.logger.Error("decide payment", slog.Any("error", err), slog.String("payment_id", id.String()))
		httpx.RespondError(w, err)
		return
	}

	h.metrics.RecordPaymentOutcome(string(updated.Status))
	h.logger.Info("payment decided",
		slog.String("payment_id", updated.ID.String()),
		slog.String("approver_id", updated.ApproverID.String()),
		slog.String("status", string(updated.Status)),
	)
	httpx.JSON(w, http.StatusOK, toPayload(updated))
}

func (h *Handler) listForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid customer ID")
		return
	}
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	take, _ := strconv.Atoi(r.URL.Query().Get("take"))

	page, err := h.service.ListForCustomer(r.Context(), customerID, skip, take)
	if err != nil {
		h.logger.Error("list payments", slog.Any("error", err), slog.String("customer_id", customerID.String()))
		httpx.RespondError(w, err)
		return
	}
	out := make([]PaymentPayload, 0, len(page))
	for i := range page {
		out = append(out, toPayload(&page[i]))
	}
	httpx.JSON(w, http.StatusOK, out)
}
