package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/booking"
	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func mustDate(t *testing.T, s string) timex.Date {
	t.Helper()

	d, err := timex.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arrival   string
		departure string
		roomID    int64
		taken     bool
		wantErr   error
		wantDays  int
	}{
		{"free room", "2030-03-01", "2030-03-03", 7, false, nil, 3},
		{"single night", "2030-03-01", "2030-03-01", 7, false, nil, 1},
		{"arrival after departure", "2030-03-05", "2030-03-01", 7, false, booking.ErrInvalidDates, 0},
		{"room taken", "2030-03-01", "2030-03-03", 7, true, booking.ErrRoomUnavailable, 0},
		{"missing room", "2030-03-01", "2030-03-03", 99, false, room.ErrNotFound, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				inTx  bool
				added []timex.Date
			)
			rooms := &booking.StubRoomLocker{
				FindForUpdateFunc: func(_ context.Context, roomID int64) (*room.Room, error) {
					if !inTx {
						t.Error("FindForUpdate() called outside a transaction")
					}
					if roomID != 7 {
						return nil, room.ErrNotFound
					}
					return &room.Room{Model: model.Model{ID: 7}, Name: "RoomName_17", HotelID: 1}, nil
				},
				IsUnavailableFunc: func(_ context.Context, _ int64, _, _ timex.Date) (bool, error) {
					return tc.taken, nil
				},
				AddUnavailableDatesFunc: func(_ context.Context, _ int64, days []timex.Date) error {
					if !inTx {
						t.Error("AddUnavailableDates() called outside a transaction")
					}
					added = days
					return nil
				},
			}
			repo := &booking.StubRepo{
				CreateFunc: func(_ context.Context, b *booking.Booking) error {
					b.ID = 11
					return nil
				},
			}
			users := &booking.StubUserFinder{
				FindFunc: func(_ context.Context, userID int64) (*user.User, error) {
					return &user.User{Model: model.Model{ID: userID}, Name: "User_1"}, nil
				},
			}
			txMgr := &db.StubTxManager{
				RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
					inTx = true
					defer func() { inTx = false }()
					return fn(ctx)
				},
			}
			pub := &event.StubPublisher{}
			m := metrics.New()

			svc := booking.NewService(repo, &booking.ServiceDeps{
				TxManager: txMgr,
				Rooms:     rooms,
				Users:     users,
				Publisher: pub,
				Metrics:   m,
			})

			params := booking.CreateParams{
				ArrivalDate:   mustDate(t, tc.arrival),
				DepartureDate: mustDate(t, tc.departure),
				RoomID:        tc.roomID,
			}
			b, err := svc.Create(context.Background(), 1, params)

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("svc.Create() = %v, want: %v", err, tc.wantErr)
			}

			if tc.wantErr != nil {
				if len(pub.RoomBooked) != 0 {
					t.Errorf("len(pub.RoomBooked) = %d, want: 0", len(pub.RoomBooked))
				}
				if got := testutil.ToFloat64(m.BookingsCreatedTotal); got != 0 {
					t.Errorf("BookingsCreatedTotal = %v, want: 0", got)
				}
				return
			}

			if len(added) != tc.wantDays {
				t.Errorf("len(added) = %d, want: %d", len(added), tc.wantDays)
			}
			if b.ID != 11 || b.Room == nil || b.User == nil || b.User.Name != "User_1" {
				t.Errorf("b = %+v, want booking 11 with room and user", b)
			}
			if len(pub.RoomBooked) != 1 {
				t.Fatalf("len(pub.RoomBooked) = %d, want: 1", len(pub.RoomBooked))
			}
			want := event.RoomBookedEvent{UserID: 1, CheckInDate: tc.arrival, CheckOutDate: tc.departure}
			if pub.RoomBooked[0] != want {
				t.Errorf("pub.RoomBooked[0] = %+v, want: %+v", pub.RoomBooked[0], want)
			}
			if got := testutil.ToFloat64(m.BookingsCreatedTotal); got != 1 {
				t.Errorf("BookingsCreatedTotal = %v, want: 1", got)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	repo := &booking.StubRepo{
		ListFunc: func(_ context.Context) ([]booking.Booking, error) {
			return []booking.Booking{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := booking.NewService(repo, &booking.ServiceDeps{})

	bookings, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 2 {
		t.Errorf("len(bookings) = %d, want: 2", len(bookings))
	}
}
