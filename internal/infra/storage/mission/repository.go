package mission

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

// Repository stores missions (the booking ledger).
type Repository struct {
	db DBExecutor
}

// NewRepository creates the mission repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var missionColumns = []string{
	"id",
	"provider_id",
	"client_id",
	"category_slug",
	"category_type_id",
	"variant_id",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"animal_count",
	"session_type",
	"collective_slot_ids",
	"status",
	"amount",
	"announcer_earnings",
	"notes",
	"completion_notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create persists a new mission and fills in its id and timestamps.
func (r *Repository) Create(ctx context.Context, m *domain.Mission) (*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !domain.ValidMissionStatus(m.Status) {
		return nil, fmt.Errorf("%w: Create - status %q", ErrInvalidStatus, m.Status)
	}

	query, args, err := psqlbuilder.Insert("missions").
		Columns(
			"provider_id",
			"client_id",
			"category_slug",
			"category_type_id",
			"variant_id",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"animal_count",
			"session_type",
			"collective_slot_ids",
			"status",
			"amount",
			"announcer_earnings",
			"notes",
		).
		Values(
			m.ProviderID,
			m.ClientID,
			m.CategorySlug,
			m.CategoryTypeID,
			m.VariantID,
			m.StartDate,
			m.EndDate,
			m.StartTime,
			m.EndTime,
			m.AnimalCount,
			m.SessionType,
			pq.Array(m.CollectiveSlotIDs),
			m.Status,
			m.Amount,
			m.AnnouncerEarnings,
			m.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID fetches one mission. Inside a transaction the row is locked
// with FOR UPDATE, which serializes concurrent lifecycle transitions on
// the same mission.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMission(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetByProviderWithFilter returns the provider's missions matching the
// filter. Period filters match missions whose date range overlaps the
// period (not only missions starting inside it). Inside a transaction
// with a period filter the rows are locked with FOR UPDATE, which is
// the basis of the check-then-write booking mutations.
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.MissionFilter) ([]*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"provider_id": filter.ProviderID})

	if filter.CategoryTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_type_id": *filter.CategoryTypeID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	// Overlap with the requested period: a mission is relevant when its
	// range touches any day of [StartDate, EndDate].
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC, start_time ASC NULLS FIRST")

	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMissions(rows)
}

// GetByClientID returns the client's missions, newest first, optionally
// filtered by status.
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, status *domain.MissionStatus) ([]*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("start_date DESC, start_time DESC NULLS LAST")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMissions(rows)
}

// UpdateStatus sets the mission status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MissionStatus) error {
	if !domain.ValidMissionStatus(status) {
		return fmt.Errorf("%w: UpdateStatus - status %q", ErrInvalidStatus, status)
	}

	return r.update(ctx, "UpdateStatus", psqlbuilder.Update("missions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Cancel moves the mission to cancelled and records the reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	return r.update(ctx, "Cancel", psqlbuilder.Update("missions").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Refuse moves the mission to refused with an optional reason.
func (r *Repository) Refuse(ctx context.Context, id int64, reason *string) error {
	return r.update(ctx, "Refuse", psqlbuilder.Update("missions").
		Set("status", domain.StatusRefused).
		Set("cancellation_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// Complete moves the mission to completed with optional provider notes.
func (r *Repository) Complete(ctx context.Context, id int64, notes *string) error {
	return r.update(ctx, "Complete", psqlbuilder.Update("missions").
		Set("status", domain.StatusCompleted).
		Set("completion_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrMissionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMission(row rowScanner) (*domain.Mission, error) {
	var m domain.Mission
	var slotIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.ProviderID,
		&m.ClientID,
		&m.CategorySlug,
		&m.CategoryTypeID,
		&m.VariantID,
		&m.StartDate,
		&m.EndDate,
		&m.StartTime,
		&m.EndTime,
		&m.AnimalCount,
		&m.SessionType,
		&slotIDs,
		&m.Status,
		&m.Amount,
		&m.AnnouncerEarnings,
		&m.Notes,
		&m.CompletionNotes,
		&m.CancellationReason,
		&m.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanMission: %w", ErrScanRow, err)
	}

	m.CollectiveSlotIDs = []int64(slotIDs)
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}

func scanMissions(rows *sql.Rows) ([]*domain.Mission, error) {
	missions := make([]*domain.Mission, 0)

	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMissions - rows error: %w", ErrScanRow, err)
	}

	return missions, nil
}
