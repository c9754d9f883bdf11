package staff

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/payd-hq/payd/internal/platform/httpx"
)

// StaffPayload is the wire shape for staff bodies and responses.
type StaffPayload struct {
	ID         uuid.UUID `json:"id"`
	Surname    string    `json:"surname" validate:"required"`
	GivenNames string    `json:"givenNames"`
	Email      string    `json:"email" validate:"omitempty,email"`
	IsDeleted  bool      `json:"isDeleted"`
}

func toPayload(m *Staff) StaffPayload {
	return StaffPayload{
		ID:         m.ID,
		Surname:    m.Surname,
		GivenNames: m.GivenNames,
		Email:      m.Email,
		IsDeleted:  m.IsDeleted,
	}
}

// Handler manages staff endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// MountRoutes registers staff routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list staff", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	out := make([]StaffPayload, 0, len(all))
	for i := range all {
		out = append(out, toPayload(&all[i]))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var payload StaffPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	member, err := h.service.Create(r.Context(), Staff{
		ID:         payload.ID,
		Surname:    payload.Surname,
		GivenNames: payload.GivenNames,
		Email:      payload.Email,
	})
	if err != nil {
		h.logger.Error("create staff", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toPayload(member))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid staff ID")
		return
	}
	member, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPayload(member))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid staff ID")
		return
	}
	var payload StaffPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if payload.ID != id {
		httpx.ProblemCode(w, http.StatusBadRequest, "Bad Request", "body ID does not match path ID", "id_mismatch")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	member, err := h.service.Update(r.Context(), Staff{
		ID:         payload.ID,
		Surname:    payload.Surname,
		GivenNames: payload.GivenNames,
		Email:      payload.Email,
	})
	if err != nil {
		h.logger.Error("update staff", slog.Any("error", err), slog.String("id", id.String()))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPayload(member))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid staff ID")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete staff", slog.Any("error", err), slog.String("id", id.String()))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
