package collectiveslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/pkg/dbmetrics"
	"github.com/pawfinder/PF-SchedulingService/pkg/psqlbuilder"
)

// Repository stores collective slots and their per-mission bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the collective slot repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var slotColumns = []string{
	"id",
	"provider_id",
	"variant_id",
	"date",
	"start_time",
	"end_time",
	"max_animals",
	"created_at",
	"updated_at",
}

// Create persists a new collective slot and fills in its id and timestamps.
func (r *Repository) Create(ctx context.Context, s *domain.CollectiveSlot) (*domain.CollectiveSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("collective_slots").
		Columns("provider_id", "variant_id", "date", "start_time", "end_time", "max_animals").
		Values(s.ProviderID, s.VariantID, s.Date, s.StartTime, s.EndTime, s.MaxAnimals).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID fetches one slot with its bookings. Inside a transaction the
// slot row is locked with FOR UPDATE so concurrent capacity checks on
// the same slot serialize.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CollectiveSlot, error) {
	slots, err := r.getByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrSlotNotFound
	}
	return slots[0], nil
}

// GetByIDs fetches several slots with their bookings, locking the slot
// rows when called inside a transaction. A missing id yields
// ErrSlotNotFound so callers never book against a phantom slot.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.CollectiveSlot, error) {
	if len(ids) == 0 {
		return []*domain.CollectiveSlot{}, nil
	}

	slots, err := r.getByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(slots) != len(ids) {
		return nil, fmt.Errorf("%w: GetByIDs - requested %d, found %d", ErrSlotNotFound, len(ids), len(slots))
	}
	return slots, nil
}

func (r *Repository) getByIDs(ctx context.Context, ids []int64) ([]*domain.CollectiveSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("collective_slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getByIDs - execute query: %w", ErrExecQuery, err)
	}

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadBookings(ctx, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ListByProvider returns the provider's slots within the period, with
// bookings attached, ordered by date and start time.
func (r *Repository) ListByProvider(ctx context.Context, providerID int64, variantID *int64, from, to time.Time) ([]*domain.CollectiveSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("collective_slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, start_time ASC")

	if variantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"variant_id": *variantID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProvider - execute query: %w", ErrExecQuery, err)
	}

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadBookings(ctx, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// AddBooking reserves animal spots in a slot for a mission. Capacity is
// checked by the caller under the slot's row lock.
func (r *Repository) AddBooking(ctx context.Context, b *domain.SlotBooking) (*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("collective_slot_bookings").
		Columns("slot_id", "mission_id", "animal_count", "status").
		Values(b.SlotID, b.MissionID, b.AnimalCount, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddBooking - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: AddBooking - execute insert: %w", ErrExecQuery, err)
	}

	return b, nil
}

// UpdateBookingStatusByMission moves all of a mission's slot bookings to
// the given status. Used to keep slot bookings in lockstep with the
// mission lifecycle (cancel, complete).
func (r *Repository) UpdateBookingStatusByMission(ctx context.Context, missionID int64, status domain.SlotBookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("collective_slot_bookings").
		Set("status", status).
		Where(squirrel.Eq{"mission_id": missionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatusByMission - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatusByMission - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatusByMission - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) loadBookings(ctx context.Context, slots []*domain.CollectiveSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(slots))
	byID := make(map[int64]*domain.CollectiveSlot, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
		byID[s.ID] = s
		s.Bookings = []domain.SlotBooking{}
	}

	query, args, err := psqlbuilder.Select("id", "slot_id", "mission_id", "animal_count", "status").
		From("collective_slot_bookings").
		Where(squirrel.Eq{"slot_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBookings - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.SlotBooking
		if err := rows.Scan(&b.ID, &b.SlotID, &b.MissionID, &b.AnimalCount, &b.Status); err != nil {
			return fmt.Errorf("%w: loadBookings: %w", ErrScanRow, err)
		}
		if slot, ok := byID[b.SlotID]; ok {
			slot.Bookings = append(slot.Bookings, b)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBookings - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func scanSlots(rows *sql.Rows) ([]*domain.CollectiveSlot, error) {
	defer rows.Close()

	slots := make([]*domain.CollectiveSlot, 0)
	for rows.Next() {
		var s domain.CollectiveSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ProviderID,
			&s.VariantID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.MaxAnimals,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots: %w", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}
