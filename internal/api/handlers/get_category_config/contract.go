package get_category_config

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig/models"
)

type ConfigService interface {
	Get(ctx context.Context, slug string) (*models.CategoryConfigResponse, error)
	GetAll(ctx context.Context) (*models.CategoryConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
