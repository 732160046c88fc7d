package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
	"github.com/pawfinder/PF-SchedulingService/pkg/psqlbuilder"
)

// Repository stores per-provider, per-date availability entries.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the availability repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var entryColumns = []string{
	"id",
	"provider_id",
	"date",
	"category_type_id",
	"status",
	"time_slots",
	"reason",
	"created_at",
	"updated_at",
}

// Upsert creates or overwrites the entry for the entry's
// (provider, date, category) key. Providers overwrite entries freely
// through the availability editor; the system never creates one itself.
func (r *Repository) Upsert(ctx context.Context, entry *domain.AvailabilityEntry) (*domain.AvailabilityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(entry.TimeSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal time slots: %v", ErrEncodeTimeSlots, err)
	}

	query, args, err := psqlbuilder.Insert("availability_entries").
		Columns(
			"provider_id",
			"date",
			"category_type_id",
			"status",
			"time_slots",
			"reason",
		).
		Values(
			entry.ProviderID,
			entry.Date,
			entry.CategoryTypeID,
			entry.Status,
			slots,
			entry.Reason,
		).
		Suffix(`ON CONFLICT (provider_id, date, COALESCE(category_type_id, 0))
			DO UPDATE SET status = EXCLUDED.status,
			              time_slots = EXCLUDED.time_slots,
			              reason = EXCLUDED.reason,
			              updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetForDay returns the effective entry for one date: a category-scoped
// entry when one exists, otherwise a legacy category-wide (NULL) entry.
// Returns ErrEntryNotFound when neither exists; callers treat that as
// "closed by default", not as a failure.
func (r *Repository) GetForDay(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) (*domain.AvailabilityEntry, error) {
	if categoryTypeID != nil {
		entry, err := r.getExact(ctx, providerID, date, categoryTypeID)
		if err == nil {
			return entry, nil
		}
		if err != ErrEntryNotFound {
			return nil, err
		}
	}

	return r.getExact(ctx, providerID, date, nil)
}

func (r *Repository) getExact(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) (*domain.AvailabilityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From("availability_entries").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"date": date})

	if categoryTypeID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_type_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_type_id": *categoryTypeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getExact - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := r.scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetRange returns every entry of the provider in [from, to], both
// category-scoped and legacy category-wide ones, in one query.
// Precedence between the two is resolved by the caller per day.
func (r *Repository) GetRange(ctx context.Context, providerID int64, from, to time.Time, categoryTypeID *int64) ([]*domain.AvailabilityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From("availability_entries").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC")

	if categoryTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"category_type_id": *categoryTypeID},
			squirrel.Eq{"category_type_id": nil},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_type_id": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AvailabilityEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// Delete clears the entry for the exact (provider, date, category) key.
func (r *Repository) Delete(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("availability_entries").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"date": date})

	if categoryTypeID == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"category_type_id": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"category_type_id": *categoryTypeID})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEntry(row rowScanner) (*domain.AvailabilityEntry, error) {
	var entry domain.AvailabilityEntry
	var slots []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.ProviderID,
		&entry.Date,
		&entry.CategoryTypeID,
		&entry.Status,
		&slots,
		&entry.Reason,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanEntry: %w", ErrScanRow, err)
	}

	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &entry.TimeSlots); err != nil {
			return nil, fmt.Errorf("%w: scanEntry - unmarshal time slots: %v", ErrEncodeTimeSlots, err)
		}
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}
