package hotel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestService_Vote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hotelID int64
		mark    int
		wantErr error
	}{
		{"valid mark", 4, 5, nil},
		{"mark below range", 4, 0, hotel.ErrInvalidMark},
		{"mark above range", 4, 6, hotel.ErrInvalidMark},
		{"negative mark", 4, -1, hotel.ErrInvalidMark},
		{"missing hotel", 9, 3, hotel.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				inTx    bool
				updated *hotel.Hotel
			)
			repo := &hotel.StubRepo{
				FindForUpdateFunc: func(_ context.Context, hotelID int64) (*hotel.Hotel, error) {
					if !inTx {
						t.Error("FindForUpdate() called outside a transaction")
					}
					if hotelID != 4 {
						return nil, hotel.ErrNotFound
					}
					return &hotel.Hotel{Model: model.Model{ID: 4}, Rating: 3.33, NumberOfRatings: 54}, nil
				},
				UpdateRatingFunc: func(_ context.Context, h *hotel.Hotel) error {
					updated = h
					return nil
				},
			}
			txMgr := &db.StubTxManager{
				RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
					inTx = true
					defer func() { inTx = false }()
					return fn(ctx)
				},
			}
			m := metrics.New()
			svc := hotel.NewService(repo, txMgr, m)

			got, err := svc.Vote(context.Background(), tc.hotelID, tc.mark)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("svc.Vote() = %v, want: %v", err, tc.wantErr)
			}

			if tc.wantErr != nil {
				if updated != nil {
					t.Error("rating stored for a rejected vote")
				}
				return
			}

			if got.Rating != 3.36 || got.NumberOfRatings != 55 {
				t.Errorf("got = %v/%d, want: %v/%d", got.Rating, got.NumberOfRatings, 3.36, 55)
			}

			if c := testutil.ToFloat64(m.HotelVotesTotal.WithLabelValues("5")); c != 1 {
				t.Errorf("hotel_votes_total{mark=5} = %v, want: %v", c, 1)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	city := "City_1"
	var gotFilter hotel.Filter
	repo := &hotel.StubRepo{
		ListFunc: func(_ context.Context, f hotel.Filter, page model.Page) ([]hotel.Hotel, error) {
			gotFilter = f
			if page.Offset() != 20 {
				t.Errorf("page.Offset() = %d, want: %d", page.Offset(), 20)
			}
			return []hotel.Hotel{{Name: "Hotel_2", City: city}}, nil
		},
		CountFunc: func(_ context.Context, _ hotel.Filter) (int64, error) {
			return 21, nil
		},
	}
	svc := hotel.NewService(repo, &db.StubTxManager{}, nil)

	res, err := svc.List(context.Background(), hotel.Filter{City: &city}, model.Page{Size: 20, Number: 1})
	if err != nil {
		t.Fatal(err)
	}

	if gotFilter.City == nil || *gotFilter.City != city {
		t.Errorf("gotFilter.City = %v, want: %q", gotFilter.City, city)
	}

	if res.TotalCount != 21 || len(res.Hotels) != 1 {
		t.Errorf("res = %d/%d, want: %d/%d", res.TotalCount, len(res.Hotels), 21, 1)
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	repo := &hotel.StubRepo{
		CreateFunc: func(_ context.Context, h *hotel.Hotel) error {
			if h.Rating != 0 || h.NumberOfRatings != 0 {
				t.Errorf("new hotel rating = %v/%d, want: 0/0", h.Rating, h.NumberOfRatings)
			}
			h.ID = 6
			return nil
		},
	}
	svc := hotel.NewService(repo, &db.StubTxManager{}, nil)

	params := hotel.Params{Name: "Hotel_6", Title: "Title", City: "City_1", Address: "Address_6", DistanceFromCityCenter: 1.5}
	h, err := svc.Create(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}

	if h.ID != 6 {
		t.Errorf("h.ID = %d, want: %d", h.ID, 6)
	}
}
