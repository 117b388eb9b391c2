package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/RIZZA-BookingService/internal/domain"
	"github.com/m04kA/RIZZA-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RIZZA-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального ограничения
const uniqueViolationCode = "23505"

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"service_type",
	"make_id",
	"model_id",
	"make_name",
	"model_name",
	"vehicle_year",
	"booking_date",
	"start_time",
	"customer_name",
	"customer_phone",
	"customer_email",
	"plate",
	"notes",
	"status",
	"confirm_token",
	"token_expires",
	"confirmed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование со статусом PENDING
// ID генерируется вызывающей стороной (UUID).
// Если в контексте передана активная транзакция, запрос выполняется внутри неё —
// проверка занятости слота и вставка должны быть одной атомарной единицей.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_type",
			"make_id",
			"model_id",
			"make_name",
			"model_name",
			"vehicle_year",
			"booking_date",
			"start_time",
			"customer_name",
			"customer_phone",
			"customer_email",
			"plate",
			"notes",
			"status",
			"confirm_token",
			"token_expires",
		).
		Values(
			booking.ID,
			booking.ServiceType,
			booking.MakeID,
			booking.ModelID,
			booking.MakeName,
			booking.ModelName,
			booking.VehicleYear,
			booking.Date,
			booking.StartTime,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.Plate,
			booking.Notes,
			booking.Status,
			booking.ConfirmToken,
			booking.TokenExpires,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByConfirmToken получает бронирование по токену подтверждения
func (r *Repository) GetByConfirmToken(ctx context.Context, token string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirm_token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmToken - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByConfirmToken")
}

// GetOccupyingByDate получает бронирования, занимающие слоты на указанную дату:
// подтвержденные, либо PENDING, созданные не раньше pendingSince (now - окно подтверждения).
// Просроченные PENDING в выборку не попадают и слоты не блокируют.
// Внутри транзакции строки блокируются FOR UPDATE — для атомарной проверки занятости при создании.
func (r *Repository) GetOccupyingByDate(ctx context.Context, date time.Time, pendingSince time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusPending},
				squirrel.GtOrEq{"created_at": pendingSince},
			},
		}).
		OrderBy("start_time ASC")

	// Блокируем строки только внутри транзакции создания бронирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupyingByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupyingByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Confirm подтверждает бронирование: статус CONFIRMED, фиксируется момент
// подтверждения, окно токена очищается. Сам токен сохраняется, чтобы повторное
// нажатие на ссылку из письма оставалось идемпотетным успехом.
func (r *Repository) Confirm(ctx context.Context, id string, confirmedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("confirmed_at", confirmedAt).
		Set("token_expires", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListWithFilter получает бронирования для административного просмотра и экспорта
// Поддерживает фильтрацию по периоду и статусу; сортировка по дате и времени
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingFields(scanner rowScanner, booking *domain.Booking) error {
	var (
		vehicleYear          sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := scanner.Scan(
		&booking.ID,
		&booking.ServiceType,
		&booking.MakeID,
		&booking.ModelID,
		&booking.MakeName,
		&booking.ModelName,
		&vehicleYear,
		&booking.Date,
		&booking.StartTime,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.Plate,
		&booking.Notes,
		&booking.Status,
		&booking.ConfirmToken,
		&booking.TokenExpires,
		&booking.ConfirmedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	if vehicleYear.Valid {
		year := int(vehicleYear.Int64)
		booking.VehicleYear = &year
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return nil
}

func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking

	err := scanBookingFields(row, &booking)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		if err := scanBookingFields(rows, &booking); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
