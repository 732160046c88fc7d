package categoryconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
	"github.com/pawfinder/PF-SchedulingService/pkg/psqlbuilder"
)

// Repository stores per-category scheduling configuration.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the category config repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var configColumns = []string{
	"id",
	"category_type_id",
	"category_slug",
	"is_capacity_based",
	"max_animals",
	"buffer_before_minutes",
	"buffer_after_minutes",
	"enable_duration_based_blocking",
	"allowed_price_units",
	"billing_type",
	"created_at",
	"updated_at",
}

// GetBySlug fetches the config for a category slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.CategoryConfig, error) {
	return r.getOne(ctx, "GetBySlug", squirrel.Eq{"category_slug": slug})
}

// GetAll returns every category config, ordered by slug.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.CategoryConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("category_configs").
		OrderBy("category_slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.CategoryConfig, 0)
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert inserts or replaces the config keyed by category type id.
func (r *Repository) Upsert(ctx context.Context, cfg *domain.CategoryConfig) (*domain.CategoryConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	units := make([]string, len(cfg.AllowedPriceUnits))
	for i, u := range cfg.AllowedPriceUnits {
		units[i] = string(u)
	}

	query, args, err := psqlbuilder.Insert("category_configs").
		Columns(
			"category_type_id",
			"category_slug",
			"is_capacity_based",
			"max_animals",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"enable_duration_based_blocking",
			"allowed_price_units",
			"billing_type",
		).
		Values(
			cfg.CategoryTypeID,
			cfg.CategorySlug,
			cfg.IsCapacityBased,
			cfg.MaxAnimals,
			cfg.BufferBeforeMinutes,
			cfg.BufferAfterMinutes,
			cfg.EnableDurationBasedBlocking,
			pq.Array(units),
			cfg.BillingType,
		).
		Suffix(`ON CONFLICT (category_type_id) DO UPDATE SET
			category_slug = EXCLUDED.category_slug,
			is_capacity_based = EXCLUDED.is_capacity_based,
			max_animals = EXCLUDED.max_animals,
			buffer_before_minutes = EXCLUDED.buffer_before_minutes,
			buffer_after_minutes = EXCLUDED.buffer_after_minutes,
			enable_duration_based_blocking = EXCLUDED.enable_duration_based_blocking,
			allowed_price_units = EXCLUDED.allowed_price_units,
			billing_type = EXCLUDED.billing_type,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Eq) (*domain.CategoryConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("category_configs").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.CategoryConfig, error) {
	var cfg domain.CategoryConfig
	var units pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cfg.ID,
		&cfg.CategoryTypeID,
		&cfg.CategorySlug,
		&cfg.IsCapacityBased,
		&cfg.MaxAnimals,
		&cfg.BufferBeforeMinutes,
		&cfg.BufferAfterMinutes,
		&cfg.EnableDurationBasedBlocking,
		&units,
		&cfg.BillingType,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanConfig: %w", ErrScanRow, err)
	}

	cfg.AllowedPriceUnits = make([]domain.PriceUnit, len(units))
	for i, u := range units {
		cfg.AllowedPriceUnits[i] = domain.PriceUnit(u)
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
