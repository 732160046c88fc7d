package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	getCalendar "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_calendar"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidPeriod     = "invalid from/to format, expected YYYY-MM-DD"
	msgMissingCategory   = "category query parameter is required"
	msgRangeTooLarge     = "requested range too large"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule/calendar?category=...&from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/calendar - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.logger.Warn("GET /providers/{id}/schedule/calendar - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		ProviderID:   providerID,
		CategorySlug: category,
		From:         from,
		To:           to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrRangeTooLarge):
			h.logger.Warn("GET /providers/{id}/schedule/calendar - Range too large: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedule/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/schedule/calendar - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedule/calendar - Computed %d days: provider_id=%d", len(result.Days), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
