package get_client_missions

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

type MissionService interface {
	GetClientMissions(ctx context.Context, req *models.GetClientMissionsRequest) (*models.MissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
