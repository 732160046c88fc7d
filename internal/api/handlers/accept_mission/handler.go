package accept_mission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	acceptMission "github.com/pawfinder/PF-SchedulingService/internal/usecase/accept_mission"
)

const (
	msgInvalidMissionID = "invalid mission ID"
	msgMissingUserID    = "missing user ID"
	msgNotFound         = "mission not found"
	msgForbidden        = "access denied"
)

type Handler struct {
	useCase AcceptMissionUseCase
	logger  Logger
}

func NewHandler(useCase AcceptMissionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/missions/{missionId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	missionID, err := strconv.ParseInt(vars["missionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /missions/{id}/accept - Invalid mission ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMissionID)
		return
	}

	providerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /missions/{id}/accept - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acceptMission.Request{
		MissionID:  missionID,
		ProviderID: providerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptMission.ErrMissionNotFound):
			h.logger.Warn("POST /missions/{id}/accept - Mission not found: mission_id=%d", missionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, acceptMission.ErrAccessDenied):
			h.logger.Warn("POST /missions/{id}/accept - Access denied: mission_id=%d, user_id=%d", missionID, providerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, acceptMission.ErrInvalidTransition):
			h.logger.Warn("POST /missions/{id}/accept - Invalid transition: mission_id=%d", missionID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, acceptMission.ErrConflict):
			h.logger.Warn("POST /missions/{id}/accept - Schedule conflict: mission_id=%d, error=%v", missionID, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, acceptMission.ErrInvalidInput):
			h.logger.Warn("POST /missions/{id}/accept - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /missions/{id}/accept - Failed: mission_id=%d, error=%v", missionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /missions/{id}/accept - Mission accepted: mission_id=%d, status=%s", missionID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
