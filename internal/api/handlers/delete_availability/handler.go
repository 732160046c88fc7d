package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/service/availability"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidCategoryID = "invalid category type ID"
	msgMissingUserID     = "missing user ID"
	msgAccessDenied      = "access denied"
	msgEntryNotFound     = "availability entry not found"
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

// Handle DELETE /api/v1/providers/{providerId}/availability/{date}?categoryTypeId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/availability/{date} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /providers/{id}/availability/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != providerID {
		h.logger.Warn("DELETE /providers/{id}/availability/{date} - Access denied: user_id=%d, provider_id=%d", userID, providerID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var categoryTypeID *int64
	if raw := r.URL.Query().Get("categoryTypeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("DELETE /providers/{id}/availability/{date} - Invalid category type ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryTypeID = ptr.Ptr(id)
	}

	if err := h.service.DeleteDay(r.Context(), providerID, vars["date"], categoryTypeID); err != nil {
		switch {
		case errors.Is(err, availability.ErrEntryNotFound):
			h.logger.Warn("DELETE /providers/{id}/availability/{date} - Not found: provider_id=%d, date=%s", providerID, vars["date"])
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("DELETE /providers/{id}/availability/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /providers/{id}/availability/{date} - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/availability/{date} - Deleted: provider_id=%d, date=%s", providerID, vars["date"])
	w.WriteHeader(http.StatusNoContent)
}
