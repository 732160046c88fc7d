package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/service/availability"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidCategoryID = "invalid category type ID"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability?from=...&to=...&categoryTypeId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var categoryTypeID *int64
	if raw := r.URL.Query().Get("categoryTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/availability - Invalid category type ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryTypeID = ptr.Ptr(id)
	}

	result, err := h.service.GetRange(r.Context(), providerID, r.URL.Query().Get("from"), r.URL.Query().Get("to"), categoryTypeID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/availability - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/availability - Retrieved %d entries: provider_id=%d", len(result.Entries), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
