package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
)

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

// Params holds the editable fields of a hotel.
type Params struct {
	Name                   string
	Title                  string
	City                   string
	Address                string
	DistanceFromCityCenter float64
}

const queryHotelCreate = `
INSERT INTO hotels (name, title, city, address, distance_from_city_center, rating, number_of_ratings)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

// Create stores h. Rating fields are taken as given so seeding can preset them.
func (r *SQLRepository) Create(ctx context.Context, h *Hotel) error {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, queryHotelCreate,
		h.Name, h.Title, h.City, h.Address, h.DistanceFromCityCenter, h.Rating, h.NumberOfRatings)
	if err := row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return fmt.Errorf("create hotel %s: %w", h.Name, err)
	}
	return nil
}

const selectHotel = `
SELECT id, name, title, city, address, distance_from_city_center, rating, number_of_ratings,
       created_at, updated_at
FROM hotels`

func filterWhere(f Filter) *db.Where {
	var w db.Where
	if f.ID != nil {
		w.Add("id = %s", *f.ID)
	}
	if f.Name != nil {
		w.Add("name = %s", *f.Name)
	}
	if f.Title != nil {
		w.Add("title = %s", *f.Title)
	}
	if f.City != nil {
		w.Add("city = %s", *f.City)
	}
	if f.Address != nil {
		w.Add("address = %s", *f.Address)
	}
	if f.Distance != nil {
		w.Add("distance_from_city_center <= %s", *f.Distance)
	}
	if f.Rating != nil {
		w.Add("rating >= %s", *f.Rating)
	}
	if f.NumberOfRatings != nil {
		w.Add("number_of_ratings >= %s", *f.NumberOfRatings)
	}
	return &w
}

func (r *SQLRepository) List(ctx context.Context, f Filter, page model.Page) ([]Hotel, error) {
	w := filterWhere(f)
	query := selectHotel + w.String() + " ORDER BY id LIMIT " + w.Next(page.Limit()) + " OFFSET " + w.Next(page.Offset())

	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	hotels := make([]Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over hotel rows: %w", err)
	}

	return hotels, nil
}

func (r *SQLRepository) Count(ctx context.Context, f Filter) (int64, error) {
	w := filterWhere(f)

	var total int64
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, "SELECT COUNT(*) FROM hotels"+w.String(), w.Args()...)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count hotels: %w", err)
	}
	return total, nil
}

func (r *SQLRepository) Find(ctx context.Context, hotelID int64) (*Hotel, error) {
	return r.find(ctx, selectHotel+" WHERE id = $1", hotelID)
}

// FindForUpdate locks the hotel row until the surrounding transaction ends.
func (r *SQLRepository) FindForUpdate(ctx context.Context, hotelID int64) (*Hotel, error) {
	return r.find(ctx, selectHotel+" WHERE id = $1 FOR UPDATE", hotelID)
}

func (r *SQLRepository) find(ctx context.Context, query string, hotelID int64) (*Hotel, error) {
	h, err := scanHotel(db.Conn(ctx, r.db).QueryRowContext(ctx, query, hotelID))
	if err != nil {
		return nil, fmt.Errorf("find hotel with id %d: %w", hotelID, err)
	}
	return h, nil
}

const queryHotelUpdate = `
UPDATE hotels
SET name = $1, title = $2, city = $3, address = $4, distance_from_city_center = $5, updated_at = NOW()
WHERE id = $6`

func (r *SQLRepository) Update(ctx context.Context, hotelID int64, params Params) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, queryHotelUpdate,
		params.Name, params.Title, params.City, params.Address, params.DistanceFromCityCenter, hotelID)
	if err != nil {
		return fmt.Errorf("update hotel %d: %w", hotelID, err)
	}
	return affected(res, hotelID)
}

const queryHotelRating = `
UPDATE hotels
SET rating = $1, number_of_ratings = $2, updated_at = NOW()
WHERE id = $3`

func (r *SQLRepository) UpdateRating(ctx context.Context, h *Hotel) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, queryHotelRating, h.Rating, h.NumberOfRatings, h.ID)
	if err != nil {
		return fmt.Errorf("update rating of hotel %d: %w", h.ID, err)
	}
	return affected(res, h.ID)
}

func (r *SQLRepository) Delete(ctx context.Context, hotelID int64) error {
	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM hotels WHERE id = $1", hotelID); err != nil {
		return fmt.Errorf("delete hotel %d: %w", hotelID, err)
	}
	return nil
}

func affected(res sql.Result, hotelID int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("hotel %d: %w", hotelID, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(row scanner) (*Hotel, error) {
	var h Hotel
	err := row.Scan(&h.ID, &h.Name, &h.Title, &h.City, &h.Address, &h.DistanceFromCityCenter,
		&h.Rating, &h.NumberOfRatings, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}
	return &h, nil
}
