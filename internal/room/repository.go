package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
)

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

// Params holds the editable fields of a room.
type Params struct {
	Name        string
	Description string
	Number      int
	Price       float64
	Capacity    int
	HotelID     int64
}

const queryRoomCreate = `
INSERT INTO rooms (name, description, number, price, capacity, hotel_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

func (r *SQLRepository) Create(ctx context.Context, params Params) (*Room, error) {
	rm := &Room{
		Name:        params.Name,
		Description: params.Description,
		Number:      params.Number,
		Price:       params.Price,
		Capacity:    params.Capacity,
		HotelID:     params.HotelID,
	}

	row := db.Conn(ctx, r.db).QueryRowContext(ctx, queryRoomCreate,
		params.Name, params.Description, params.Number, params.Price, params.Capacity, params.HotelID)
	if err := row.Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create room %s: %w", params.Name, err)
	}
	return rm, nil
}

const selectRoom = `
SELECT r.id, r.name, r.description, r.number, r.price, r.capacity, r.hotel_id, h.name,
       r.created_at, r.updated_at
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id`

const bookedRooms = `r.id NOT IN (
    SELECT b.room_id FROM bookings b
    WHERE b.arrival_date BETWEEN %s AND %s
       OR b.departure_date BETWEEN %s AND %s
       OR (b.arrival_date <= %s AND b.departure_date >= %s)
)`

func filterWhere(f Filter) *db.Where {
	var w db.Where
	if f.ID != nil {
		w.Add("r.id = %s", *f.ID)
	}
	if f.Name != nil {
		w.Add("r.name LIKE '%%' || %s::text || '%%'", *f.Name)
	}
	switch {
	case f.MinPrice != nil && f.MaxPrice != nil:
		w.Add("r.price BETWEEN %s AND %s", *f.MinPrice, *f.MaxPrice)
	case f.MinPrice != nil:
		w.Add("r.price >= %s", *f.MinPrice)
	case f.MaxPrice != nil:
		w.Add("r.price <= %s", *f.MaxPrice)
	}
	if f.CountGuest != nil {
		w.Add("r.capacity = %s", *f.CountGuest)
	}
	if f.hasDates() {
		from, to := *f.Arrival, *f.Departure
		w.Add(bookedRooms, from, to, from, to, from, to)
	}
	if f.HotelID != nil {
		w.Add("r.hotel_id = %s", *f.HotelID)
	}
	return &w
}

func (r *SQLRepository) List(ctx context.Context, f Filter, page model.Page) ([]Room, error) {
	w := filterWhere(f)
	query := selectRoom + w.String() + " ORDER BY r.id LIMIT " + w.Next(page.Limit()) + " OFFSET " + w.Next(page.Offset())

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *rm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over room rows: %w", err)
	}

	return rooms, nil
}

func (r *SQLRepository) Find(ctx context.Context, roomID int64) (*Room, error) {
	return r.find(ctx, selectRoom+" WHERE r.id = $1", roomID)
}

// FindForUpdate locks the room row until the surrounding transaction ends.
func (r *SQLRepository) FindForUpdate(ctx context.Context, roomID int64) (*Room, error) {
	return r.find(ctx, selectRoom+" WHERE r.id = $1 FOR UPDATE OF r", roomID)
}

func (r *SQLRepository) find(ctx context.Context, query string, roomID int64) (*Room, error) {
	rm, err := scanRoom(db.Conn(ctx, r.db).QueryRowContext(ctx, query, roomID))
	if err != nil {
		return nil, fmt.Errorf("find room with id %d: %w", roomID, err)
	}
	return rm, nil
}

const queryRoomUpdate = `
UPDATE rooms
SET name = $1, description = $2, number = $3, price = $4, capacity = $5, hotel_id = $6, updated_at = NOW()
WHERE id = $7`

func (r *SQLRepository) Update(ctx context.Context, roomID int64, params Params) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, queryRoomUpdate,
		params.Name, params.Description, params.Number, params.Price, params.Capacity, params.HotelID, roomID)
	if err != nil {
		return fmt.Errorf("update room %d: %w", roomID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update room %d: %w", roomID, ErrNotFound)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, roomID int64) error {
	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", roomID); err != nil {
		return fmt.Errorf("delete room %d: %w", roomID, err)
	}
	return nil
}

const queryUnavailableExists = `
SELECT EXISTS (
    SELECT 1 FROM unavailable_dates
    WHERE room_id = $1 AND date BETWEEN $2 AND $3
)`

// IsUnavailable reports whether any day from arrival to departure is taken.
func (r *SQLRepository) IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error) {
	var taken bool
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, queryUnavailableExists, roomID, arrival, departure)
	if err := row.Scan(&taken); err != nil {
		return false, fmt.Errorf("check unavailable dates of room %d: %w", roomID, err)
	}
	return taken, nil
}

const queryUnavailableAdd = "INSERT INTO unavailable_dates (room_id, date) VALUES ($1, $2)"

// AddUnavailableDates marks days as taken. Callers run it inside a transaction.
func (r *SQLRepository) AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error {
	exec := db.Conn(ctx, r.db)
	for _, d := range days {
		if _, err := exec.ExecContext(ctx, queryUnavailableAdd, roomID, d); err != nil {
			return fmt.Errorf("mark %s unavailable for room %d: %w", d, roomID, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(row scanner) (*Room, error) {
	var rm Room
	err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.Number, &rm.Price, &rm.Capacity,
		&rm.HotelID, &rm.HotelName, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}
	return &rm, nil
}
