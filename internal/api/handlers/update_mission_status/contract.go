package update_mission_status

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

type MissionService interface {
	Refuse(ctx context.Context, missionID int64, req *models.RefuseMissionRequest) error
	Confirm(ctx context.Context, missionID int64, providerID int64) error
	Start(ctx context.Context, missionID int64, providerID int64) error
	Complete(ctx context.Context, missionID int64, req *models.CompleteMissionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
