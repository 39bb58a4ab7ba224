package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/psqlbuilder"
)

// roomColumns колонки таблицы rooms в порядке сканирования
var roomColumns = []string{
	"id",
	"number",
	"floor",
	"room_type_id",
	"status",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с номерами и типами номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByNumber получает номер по человекочитаемому номеру ("101")
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...), "GetByNumber")
}

// GetTypeByID получает тип номера по ID
func (r *Repository) GetTypeByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price",
		"max_occupancy",
		"size_sqm",
		"amenities",
		"bed_configuration",
		"created_at",
		"updated_at",
	).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var roomType domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.BasePrice,
		&roomType.MaxOccupancy,
		&roomType.SizeSqm,
		pq.Array(&roomType.Amenities),
		&roomType.BedConfiguration,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - scan room type: %v", ErrScanRow, err)
	}

	roomType.CreatedAt = createdAt.Time
	roomType.UpdatedAt = updatedAt.Time

	return &roomType, nil
}

// ListBookable получает активные номера в статусе available, тип которых
// вмещает указанное число гостей. Результат отсортирован по цене за ночь
// (возрастание), при равной цене — по номеру комнаты.
//
// Это кандидаты для движка доступности: пересечения с существующими
// удержаниями проверяются отдельно.
func (r *Repository) ListBookable(ctx context.Context, minOccupancy int) ([]*domain.BookableRoom, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.number",
		"r.floor",
		"r.room_type_id",
		"r.status",
		"r.is_active",
		"r.created_at",
		"r.updated_at",
		"rt.id",
		"rt.name",
		"rt.base_price",
		"rt.max_occupancy",
		"rt.size_sqm",
		"rt.amenities",
		"rt.bed_configuration",
	).
		From("rooms r").
		Join("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.is_active": true}).
		Where(squirrel.Eq{"r.status": domain.RoomStatusAvailable}).
		Where(squirrel.GtOrEq{"rt.max_occupancy": minOccupancy}).
		OrderBy("rt.base_price ASC", "r.number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookableRoom, 0)

	for rows.Next() {
		var br domain.BookableRoom
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&br.Room.ID,
			&br.Room.Number,
			&br.Room.Floor,
			&br.Room.RoomTypeID,
			&br.Room.Status,
			&br.Room.IsActive,
			&createdAt,
			&updatedAt,
			&br.Type.ID,
			&br.Type.Name,
			&br.Type.BasePrice,
			&br.Type.MaxOccupancy,
			&br.Type.SizeSqm,
			pq.Array(&br.Type.Amenities),
			&br.Type.BedConfiguration,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListBookable - scan row: %v", ErrScanRow, err)
		}

		br.Room.CreatedAt = createdAt.Time
		br.Room.UpdatedAt = updatedAt.Time

		result = append(result, &br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookable - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListActive получает все активные номера, опционально один по номеру комнаты.
// Используется календарём для построения строк сетки.
func (r *Repository) ListActive(ctx context.Context, roomNumber *string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("number ASC")

	if roomNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"number": *roomNumber})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// UpdateStatus обновляет операционный статус номера
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// scanRoom сканирует одну строку в domain.Room
func (r *Repository) scanRoom(row *sql.Row, op string) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Floor,
		&room.RoomTypeID,
		&room.Status,
		&room.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс номеров
func (r *Repository) scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Floor,
			&room.RoomTypeID,
			&room.Status,
			&room.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
