package create_collective_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	"github.com/pawfinder/PF-SchedulingService/internal/service/slots"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidBody       = "invalid request body"
	msgMissingUserID     = "missing user ID"
	msgAccessDenied      = "access denied"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if userID != providerID {
		h.logger.Warn("POST /providers/{id}/slots - Access denied: user_id=%d, provider_id=%d", userID, providerID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/slots - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(providerID))
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /providers/{id}/slots - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/slots - Created: slot_id=%d, provider_id=%d", result.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
