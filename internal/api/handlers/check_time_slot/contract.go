package check_time_slot

import (
	"context"

	checkTimeSlot "github.com/pawfinder/PF-SchedulingService/internal/usecase/check_time_slot"
)

type CheckTimeSlotUseCase interface {
	Execute(ctx context.Context, req *checkTimeSlot.Request) (*checkTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
