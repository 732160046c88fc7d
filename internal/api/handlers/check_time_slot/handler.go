package check_time_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	checkTimeSlot "github.com/pawfinder/PF-SchedulingService/internal/usecase/check_time_slot"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime       = "invalid time format, expected HH:MM"
	msgMissingCategory   = "category query parameter is required"
)

type Handler struct {
	useCase CheckTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule/slot?category=...&date=...&time=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/slot - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.logger.Warn("GET /providers/{id}/schedule/slot - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/slot - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/slot - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkTimeSlot.Request{
		ProviderID:   providerID,
		CategorySlug: category,
		Date:         date,
		StartTime:    startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkTimeSlot.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedule/slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/schedule/slot - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedule/slot - Checked: provider_id=%d, booked=%t", providerID, result.Booked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
