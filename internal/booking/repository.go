package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

const queryBookingCreate = `
INSERT INTO bookings (arrival_date, departure_date, room_id, user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

func (r *SQLRepository) Create(ctx context.Context, b *Booking) error {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, queryBookingCreate, b.ArrivalDate, b.DepartureDate, b.RoomID, b.UserID)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking of room %d: %w", b.RoomID, err)
	}
	return nil
}

const queryBookingList = `
SELECT b.id, b.arrival_date, b.departure_date, b.created_at,
       r.id, r.name, r.description, r.number, r.price, r.capacity, r.hotel_id, h.name,
       r.created_at, r.updated_at,
       u.id, u.name, u.email, u.created_at, u.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN hotels h ON h.id = r.hotel_id
JOIN users u ON u.id = b.user_id
ORDER BY b.id`

func (r *SQLRepository) List(ctx context.Context) ([]Booking, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, queryBookingList)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]Booking, 0)
	for rows.Next() {
		var (
			b  Booking
			rm room.Room
			u  user.User
		)
		err := rows.Scan(&b.ID, &b.ArrivalDate, &b.DepartureDate, &b.CreatedAt,
			&rm.ID, &rm.Name, &rm.Description, &rm.Number, &rm.Price, &rm.Capacity, &rm.HotelID, &rm.HotelName,
			&rm.CreatedAt, &rm.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		b.RoomID, b.UserID = rm.ID, u.ID
		b.Room, b.User = &rm, &u
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over booking rows: %w", err)
	}

	return bookings, nil
}
