// Package seed fills an empty database with demo users, hotels, rooms and
// bookings.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/booking"
	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

const (
	Users         = 5
	Hotels        = 5
	RoomsPerHotel = 7
	BookedDays    = 4

	Password = "111"
)

type UserRepo interface {
	Create(ctx context.Context, params user.CreateParams) (*user.User, error)
}

type HotelRepo interface {
	Count(ctx context.Context, f hotel.Filter) (int64, error)
	Create(ctx context.Context, h *hotel.Hotel) error
}

type RoomRepo interface {
	Create(ctx context.Context, params room.Params) (*room.Room, error)
	AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error
}

type BookingRepo interface {
	Create(ctx context.Context, b *booking.Booking) error
}

var (
	_ UserRepo    = (*user.SQLRepository)(nil)
	_ HotelRepo   = (*hotel.SQLRepository)(nil)
	_ RoomRepo    = (*room.SQLRepository)(nil)
	_ BookingRepo = (*booking.SQLRepository)(nil)
)

type Deps struct {
	TxManager db.TxManager
	Hasher    hash.Hasher
	Users     UserRepo
	Hotels    HotelRepo
	Rooms     RoomRepo
	Bookings  BookingRepo
}

type Seeder struct {
	txMgr    db.TxManager
	hasher   hash.Hasher
	users    UserRepo
	hotels   HotelRepo
	rooms    RoomRepo
	bookings BookingRepo

	rnd   *rand.Rand
	today func() timex.Date
}

func New(deps *Deps) *Seeder {
	seed := uint64(time.Now().UnixNano())
	return &Seeder{
		txMgr:    deps.TxManager,
		hasher:   deps.Hasher,
		users:    deps.Users,
		hotels:   deps.Hotels,
		rooms:    deps.Rooms,
		bookings: deps.Bookings,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1)),
		today:    timex.Today,
	}
}

// Run seeds the database unless it already has hotels. It reports whether
// anything was written.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	n, err := s.hotels.Count(ctx, hotel.Filter{})
	if err != nil {
		return false, fmt.Errorf("count hotels: %w", err)
	}
	if n > 0 {
		slog.Info("The database already has records!", "hotels", n)
		return false, nil
	}

	slog.Info("Seeding the database...")
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		users, err := s.seedUsers(txCtx)
		if err != nil {
			return err
		}

		for i := 1; i <= Hotels; i++ {
			if err := s.seedHotel(txCtx, i, users[(i-1)%len(users)]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}

	slog.Info("Database seeded.", "users", Users, "hotels", Hotels, "rooms", Hotels*RoomsPerHotel)
	return true, nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, Users)
	for i := 1; i <= Users; i++ {
		passwordHash, err := s.hasher.Hash(Password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}

		role := user.RoleAdmin
		if i%2 == 0 {
			role = user.RoleUser
		}

		u, err := s.users.Create(ctx, user.CreateParams{
			Name:         fmt.Sprintf("User_%d", i),
			Email:        fmt.Sprintf("mail_%d", i),
			PasswordHash: passwordHash,
			Roles:        []user.Role{role},
		})
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) seedHotel(ctx context.Context, i int, guest *user.User) error {
	city := "City_2"
	if i%2 == 0 {
		city = "City_1"
	}

	h := &hotel.Hotel{
		Name:                   fmt.Sprintf("Hotel_%d", i),
		Title:                  fmt.Sprintf("Title Hotel %d", i),
		City:                   city,
		Address:                fmt.Sprintf("Address_%d", i),
		DistanceFromCityCenter: s.between(0.5, 5),
		Rating:                 s.between(0.5, 5),
		NumberOfRatings:        5 + s.rnd.IntN(96),
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return err
	}

	for j := 1; j <= RoomsPerHotel; j++ {
		rm, err := s.rooms.Create(ctx, room.Params{
			Name:        fmt.Sprintf("RoomName_%d%d", i, j),
			Description: fmt.Sprintf("RoomDescription_%d%d", i, j),
			Number:      j,
			Price:       s.between(1000, 5000),
			Capacity:    1 + s.rnd.IntN(5),
			HotelID:     h.ID,
		})
		if err != nil {
			return err
		}

		from := s.today().AddDays(j + 1)
		to := from.AddDays(BookedDays - 1)
		if err := s.rooms.AddUnavailableDates(ctx, rm.ID, room.Days(from, to)); err != nil {
			return err
		}

		b := &booking.Booking{ArrivalDate: from, DepartureDate: to, RoomID: rm.ID, UserID: guest.ID}
		if err := s.bookings.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// between returns a value in [lo, hi) rounded to two decimals.
func (s *Seeder) between(lo, hi float64) float64 {
	return hotel.Round2(lo + (hi-lo)*s.rnd.Float64())
}
