package accept_mission

import (
	"context"

	acceptMission "github.com/pawfinder/PF-SchedulingService/internal/usecase/accept_mission"
)

type AcceptMissionUseCase interface {
	Execute(ctx context.Context, req *acceptMission.Request) (*acceptMission.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
