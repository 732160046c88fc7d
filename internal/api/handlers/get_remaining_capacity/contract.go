package get_remaining_capacity

import (
	"context"

	getRemainingCapacity "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_remaining_capacity"
)

type GetRemainingCapacityUseCase interface {
	Execute(ctx context.Context, req *getRemainingCapacity.Request) (*getRemainingCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
