package request_mission

import (
	"errors"
	"net/http"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/api/middleware"
	requestBooking "github.com/pawfinder/PF-SchedulingService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateTime      = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID        = "missing user ID"
	msgDayClosed            = "provider is closed on the requested date"
	msgSlotNotAvailable     = "requested time slot is not available"
	msgInsufficientCapacity = "not enough capacity on the requested date"
	msgSlotNotFound         = "collective slot not found"
	msgSlotFull             = "collective slot is full"
	msgInvalidDate          = "booking date must not be in the past"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/missions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /missions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RequestMissionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /missions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /missions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrDayClosed):
			h.logger.Warn("POST /missions - Day closed: provider_id=%d", req.ProviderID)
			handlers.RespondConflict(w, msgDayClosed)

		case errors.Is(err, requestBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /missions - Slot not available: provider_id=%d", req.ProviderID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, requestBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /missions - Insufficient capacity: provider_id=%d", req.ProviderID)
			handlers.RespondConflict(w, msgInsufficientCapacity)

		case errors.Is(err, requestBooking.ErrSlotFull):
			h.logger.Warn("POST /missions - Collective slot full: provider_id=%d", req.ProviderID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, requestBooking.ErrSlotNotFound):
			h.logger.Warn("POST /missions - Collective slot not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, requestBooking.ErrInvalidDate):
			h.logger.Warn("POST /missions - Date in the past: provider_id=%d", req.ProviderID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.logger.Warn("POST /missions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /missions - Failed to request booking: client_id=%d, provider_id=%d, error=%v",
				clientID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /missions - Mission requested: mission_id=%d, client_id=%d, provider_id=%d",
		result.ID, clientID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
