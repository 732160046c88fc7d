package update_category_config

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig/models"
)

type ConfigService interface {
	Update(ctx context.Context, req *models.UpdateCategoryConfigRequest) (*models.CategoryConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
