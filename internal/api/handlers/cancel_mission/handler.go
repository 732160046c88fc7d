package cancel_mission

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	cancelMission "github.com/pawfinder/PF-SchedulingService/internal/usecase/cancel_mission"
)

const (
	msgInvalidMissionID   = "invalid mission ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "mission not found"
	msgForbidden          = "access denied"
)

type Handler struct {
	useCase CancelMissionUseCase
	logger  Logger
}

func NewHandler(useCase CancelMissionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/missions/{missionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	missionID, err := strconv.ParseInt(vars["missionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /missions/{id}/cancel - Invalid mission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMissionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /missions/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// The body is optional: cancelling without a reason is allowed.
	var req CancelMissionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /missions/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelMission.Request{
		MissionID: missionID,
		UserID:    userID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelMission.ErrMissionNotFound):
			h.logger.Warn("POST /missions/{id}/cancel - Mission not found: mission_id=%d", missionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelMission.ErrAccessDenied):
			h.logger.Warn("POST /missions/{id}/cancel - Access denied: mission_id=%d, user_id=%d", missionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelMission.ErrInvalidTransition):
			h.logger.Warn("POST /missions/{id}/cancel - Invalid transition: mission_id=%d", missionID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, cancelMission.ErrInvalidInput):
			h.logger.Warn("POST /missions/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /missions/{id}/cancel - Failed: mission_id=%d, error=%v", missionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /missions/{id}/cancel - Mission cancelled: mission_id=%d, refund=%d", missionID, result.RefundAmount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
