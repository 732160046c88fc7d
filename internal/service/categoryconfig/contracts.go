package categoryconfig

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

// ConfigRepository is the category config storage contract.
type ConfigRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.CategoryConfig, error)
	GetAll(ctx context.Context) ([]*domain.CategoryConfig, error)
	Upsert(ctx context.Context, cfg *domain.CategoryConfig) (*domain.CategoryConfig, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
