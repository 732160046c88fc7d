package get_provider_missions

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

type MissionService interface {
	GetProviderMissions(ctx context.Context, req *models.GetProviderMissionsRequest) (*models.MissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
