package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"phone-loan/domain"
	"phone-loan/service"
)

type EligibilityHandler struct {
	service *service.EligibilityService
	logger  *slog.Logger
}

func NewEligibilityHandler(service *service.EligibilityService, logger *slog.Logger) *EligibilityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EligibilityHandler{service: service, logger: logger}
}

func (h *EligibilityHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input domain.EligibilityInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIncome) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("error evaluating eligibility", "error", err)
		writeError(w, http.StatusServiceUnavailable, "device catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *EligibilityHandler) Register(r chi.Router) {
	r.Post("/eligibility", h.Evaluate)
}
