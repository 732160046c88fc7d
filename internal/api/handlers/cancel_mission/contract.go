package cancel_mission

import (
	"context"

	cancelMission "github.com/pawfinder/PF-SchedulingService/internal/usecase/cancel_mission"
)

type CancelMissionUseCase interface {
	Execute(ctx context.Context, req *cancelMission.Request) (*cancelMission.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
