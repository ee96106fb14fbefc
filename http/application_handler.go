package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"phone-loan/domain"
	"phone-loan/service"
)

type ApplicationHandler struct {
	drafts *DraftRegistry
	logger *slog.Logger
}

func NewApplicationHandler(drafts *DraftRegistry, logger *slog.Logger) *ApplicationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationHandler{drafts: drafts, logger: logger}
}

type draftResponse struct {
	ID          string                  `json:"id"`
	Application domain.ApplicationState `json:"application"`
	Warning     string                  `json:"warning,omitempty"`
}

type personalInfoRequest struct {
	FullName   string `json:"full_name"`
	SAIDNumber string `json:"sa_id_number"`
}

type personalInfoResponse struct {
	draftResponse
	Check domain.IdentityCheck `json:"check"`
}

type incomeRequest struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

type proofRequest struct {
	FileName string `json:"file_name"`
}

type deviceRequest struct {
	PhoneID *int64 `json:"phone_id"`
}

type stepResponse struct {
	CurrentStep int `json:"current_step"`
}

// Create opens a draft and loads the device catalog into it.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, draft := h.drafts.Create()

	resp := draftResponse{ID: id}
	if err := draft.LoadDevices(r.Context()); err != nil {
		resp.Warning = "device catalog unavailable"
	}
	resp.Application = draft.Snapshot()
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ApplicationHandler) SetPersonalInformation(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req personalInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	check, err := draft.SetPersonalInformation(r.Context(), req.FullName, req.SAIDNumber)
	resp := personalInfoResponse{Check: check}
	resp.ID = id
	if err != nil {
		resp.Warning = "could not check for an existing application"
	}
	resp.Application = draft.Snapshot()
	writeJSON(w, http.StatusOK, resp)
}

func (h *ApplicationHandler) SetMonthlyIncome(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req incomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := draft.SetMonthlyIncome(req.MonthlyIncome); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
}

func (h *ApplicationHandler) SetProofDocument(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req proofRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.FileName == "" {
		writeError(w, http.StatusBadRequest, "file_name is required")
		return
	}

	draft.SetProofDocumentName(req.FileName)
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
}

func (h *ApplicationHandler) SetSelectedDevice(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req deviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PhoneID == nil {
		writeError(w, http.StatusBadRequest, "phone_id is required")
		return
	}

	draft.SetSelectedDevice(*req.PhoneID)
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
}

// AffordableDevices lists the draft's catalog devices the applicant can afford.
func (h *ApplicationHandler) AffordableDevices(w http.ResponseWriter, r *http.Request) {
	_, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, draft.AffordableDevices())
}

func (h *ApplicationHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	_, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{CurrentStep: draft.NextStep()})
}

func (h *ApplicationHandler) PrevStep(w http.ResponseWriter, r *http.Request) {
	_, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{CurrentStep: draft.PrevStep()})
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}

	// A dropped client must not abort the store write; the draft's call
	// timeout still bounds it.
	err := draft.Submit(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, domain.ErrSubmissionInFlight), errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSubmissionFailed):
		writeJSON(w, http.StatusBadGateway, draftResponse{
			ID:          id,
			Application: draft.Snapshot(),
			Warning:     "submission failed, retry to resubmit",
		})
	case err != nil:
		h.logger.Error("unexpected submission error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
	}
}

func (h *ApplicationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	draft.Reset()
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Application: draft.Snapshot()})
}

func (h *ApplicationHandler) draft(w http.ResponseWriter, r *http.Request) (string, *service.ApplicationDraft, bool) {
	id := chi.URLParam(r, "id")
	draft, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", nil, false
	}
	return id, draft, true
}

// Register mounts the draft endpoints on r.
func (h *ApplicationHandler) Register(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)
			r.Put("/personal", h.SetPersonalInformation)
			r.Put("/income", h.SetMonthlyIncome)
			r.Put("/proof", h.SetProofDocument)
			r.Put("/device", h.SetSelectedDevice)
			r.Get("/devices", h.AffordableDevices)
			r.Post("/steps/next", h.NextStep)
			r.Post("/steps/prev", h.PrevStep)
			r.Post("/submit", h.Submit)
			r.Post("/reset", h.Reset)
		})
	})
}
