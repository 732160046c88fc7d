package get_day_status

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	getDayStatus "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_day_status"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgMissingCategory   = "category query parameter is required"
)

type Handler struct {
	useCase GetDayStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetDayStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule/day?category=...&date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/day - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.logger.Warn("GET /providers/{id}/schedule/day - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/day - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayStatus.Request{
		ProviderID:   providerID,
		CategorySlug: category,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayStatus.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedule/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/schedule/day - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedule/day - Computed: provider_id=%d, date=%s, status=%s",
		providerID, result.Date, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
