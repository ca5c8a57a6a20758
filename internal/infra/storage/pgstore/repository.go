package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CareSlotService/pkg/ptr"
)

const tableName = "care_slots"

var slotColumns = []string{
	"carer_id",
	"date_time_slot",
	"date",
	"time_slot",
	"availability",
	"booking_person_name",
}

var _ storage.SlotStore = (*Repository)(nil)

// Repository stores slots in PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository wraps db. The connection pool stays owned by the caller.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// PutIfAbsent relies on the primary key: a conflicting insert affects no rows.
func (r *Repository) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	if err := storage.ValidateForWrite(slot); err != nil {
		return fmt.Errorf("PutIfAbsent: %w", err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(slotColumns...).
		Values(
			slot.CarerID,
			slot.DateTimeSlot,
			slot.Date,
			slot.TimeSlot,
			string(slot.Availability),
			slot.BookingPersonName,
		).
		Suffix("ON CONFLICT (carer_id, date_time_slot) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: PutIfAbsent - build insert query: %v", storage.ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: PutIfAbsent - execute insert: %v", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: PutIfAbsent - get rows affected: %v", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return storage.ErrAlreadyExists
	}

	return nil
}

// CompareAndSet is a single conditional UPDATE; zero affected rows means the
// key is missing or its availability moved on.
func (r *Repository) CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	if err := storage.ValidateTransition(key, expected, next); err != nil {
		return fmt.Errorf("CompareAndSet: %w", err)
	}

	query, args, err := psqlbuilder.Update(tableName).
		Set("availability", string(next.Availability)).
		Set("booking_person_name", next.BookingPersonName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"carer_id":       key.CarerID,
			"date_time_slot": key.DateTimeSlot(),
			"availability":   string(expected),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CompareAndSet - build update query: %v", storage.ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CompareAndSet - execute update: %v", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CompareAndSet - get rows affected: %v", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return storage.ErrConditionFailed
	}

	return nil
}

func (r *Repository) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	builder := psqlbuilder.Select(slotColumns...).
		From(tableName).
		Where(squirrel.Eq{"carer_id": carerID}).
		OrderBy("date_time_slot")

	return r.query(ctx, "GetByPartition", builder)
}

func (r *Repository) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	builder := psqlbuilder.Select(slotColumns...).
		From(tableName).
		Where(squirrel.Eq{"carer_id": carerID}).
		Where(squirrel.Like{"date_time_slot": escapeLike(prefix) + "%"}).
		OrderBy("date_time_slot")

	return r.query(ctx, "GetByPartitionAndPrefix", builder)
}

func (r *Repository) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	builder := psqlbuilder.Select(slotColumns...).
		From(tableName).
		OrderBy("carer_id", "date_time_slot")

	return r.query(ctx, "ScanAll", builder)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) query(ctx context.Context, method string, builder squirrel.SelectBuilder) ([]*domain.Slot, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", storage.ErrBuildQuery, method, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", storage.ErrExecQuery, method, err)
	}
	defer rows.Close()

	var slots []*domain.Slot
	for rows.Next() {
		var (
			slot         domain.Slot
			availability string
			personName   sql.NullString
		)
		if err := rows.Scan(
			&slot.CarerID,
			&slot.DateTimeSlot,
			&slot.Date,
			&slot.TimeSlot,
			&availability,
			&personName,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", storage.ErrScanRow, method, err)
		}

		slot.Availability = domain.Availability(availability)
		if personName.Valid {
			slot.BookingPersonName = ptr.Ptr(personName.String)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", storage.ErrScanRow, method, err)
	}

	return slots, nil
}

// escapeLike escapes LIKE wildcards using the default backslash escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
