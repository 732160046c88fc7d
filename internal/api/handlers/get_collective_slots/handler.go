package get_collective_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawfinder/PF-SchedulingService/internal/api/handlers"
	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/service/slots"
	"github.com/pawfinder/PF-SchedulingService/internal/service/slots/models"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidVariantID  = "invalid variant ID"
	msgInvalidPeriod     = "invalid from/to format, expected YYYY-MM-DD"
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

// Handle GET /api/v1/providers/{providerId}/slots?from=...&to=...&variantId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/slots - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/slots - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	req := &models.ListSlotsRequest{
		ProviderID: providerID,
		From:       from,
		To:         to,
	}
	if raw := r.URL.Query().Get("variantId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/slots - Invalid variant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVariantID)
			return
		}
		req.VariantID = ptr.Ptr(id)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /providers/{id}/slots - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/slots - Retrieved %d slots: provider_id=%d", len(result.Slots), providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
