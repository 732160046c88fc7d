package get_mission

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

type MissionService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.MissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
