package set_availability

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	SetDay(ctx context.Context, req *models.SetDayRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
