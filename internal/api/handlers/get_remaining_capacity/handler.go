package get_remaining_capacity

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	getRemainingCapacity "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_remaining_capacity"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidPeriod     = "invalid from/to format, expected YYYY-MM-DD"
	msgMissingCategory   = "category query parameter is required"
	msgNotCapacityBased  = "category is not capacity based"
)

type Handler struct {
	useCase GetRemainingCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetRemainingCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule/capacity?category=...&from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/capacity - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.logger.Warn("GET /providers/{id}/schedule/capacity - Missing category")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/capacity - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule/capacity - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRemainingCapacity.Request{
		ProviderID:   providerID,
		CategorySlug: category,
		From:         from,
		To:           to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRemainingCapacity.ErrNotCapacityBased):
			h.logger.Warn("GET /providers/{id}/schedule/capacity - Not capacity based: category=%s", category)
			handlers.RespondBadRequest(w, msgNotCapacityBased)

		case errors.Is(err, getRemainingCapacity.ErrRangeTooLarge):
			h.logger.Warn("GET /providers/{id}/schedule/capacity - Range too large: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getRemainingCapacity.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedule/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/schedule/capacity - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedule/capacity - Computed: provider_id=%d, remaining=%d", providerID, result.RemainingCapacity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
