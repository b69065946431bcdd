//go:build integration

package hotel_test

import (
	"errors"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
)

func TestIntegrationRepository_ListWithFilter(t *testing.T) {
	conn, _ := db.Setup(t, "../../")
	txCtx := db.TxContext(t, conn)
	repo := hotel.NewRepository(conn)

	seed := []hotel.Hotel{
		{Name: "it_hotel_1", Title: "T1", City: "it_city_a", Address: "A1", DistanceFromCityCenter: 1.5, Rating: 4.5, NumberOfRatings: 120},
		{Name: "it_hotel_2", Title: "T2", City: "it_city_a", Address: "A2", DistanceFromCityCenter: 8, Rating: 2, NumberOfRatings: 10},
		{Name: "it_hotel_3", Title: "T3", City: "it_city_b", Address: "A3", DistanceFromCityCenter: 0.7, Rating: 3.9, NumberOfRatings: 150},
	}
	for i := range seed {
		if err := repo.Create(txCtx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	city := "it_city_a"
	distance := 5.0
	rating := 3.5

	tests := []struct {
		name   string
		filter hotel.Filter
		want   []string
	}{
		{"by city", hotel.Filter{City: &city}, []string{"it_hotel_1", "it_hotel_2"}},
		{"by city and distance", hotel.Filter{City: &city, Distance: &distance}, []string{"it_hotel_1"}},
		{"by city and rating", hotel.Filter{City: &city, Rating: &rating}, []string{"it_hotel_1"}},
	}

	for _, tc := range tests {
		hotels, err := repo.List(txCtx, tc.filter, model.DefaultPage())
		if err != nil {
			t.Fatal(err)
		}

		got := make([]string, 0, len(hotels))
		for _, h := range hotels {
			got = append(got, h.Name)
		}

		if len(got) != len(tc.want) {
			t.Fatalf("%s: names = %v, want: %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: names = %v, want: %v", tc.name, got, tc.want)
			}
		}

		total, err := repo.Count(txCtx, tc.filter)
		if err != nil {
			t.Fatal(err)
		}
		if total != int64(len(tc.want)) {
			t.Errorf("%s: repo.Count() = %d, want: %d", tc.name, total, len(tc.want))
		}
	}

	page, err := repo.List(txCtx, hotel.Filter{City: &city}, model.Page{Size: 1, Number: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 1 || page[0].Name != "it_hotel_2" {
		t.Errorf("second page = %+v, want: [it_hotel_2]", page)
	}
}

func TestIntegrationRepository_RatingAndDelete(t *testing.T) {
	conn, _ := db.Setup(t, "../../")
	txCtx := db.TxContext(t, conn)
	repo := hotel.NewRepository(conn)

	h := &hotel.Hotel{Name: "it_hotel_vote", Title: "T", City: "C", Address: "A", DistanceFromCityCenter: 1}
	if err := repo.Create(txCtx, h); err != nil {
		t.Fatal(err)
	}

	locked, err := repo.FindForUpdate(txCtx, h.ID)
	if err != nil {
		t.Fatal(err)
	}

	locked.Vote(4)
	if err := repo.UpdateRating(txCtx, locked); err != nil {
		t.Fatal(err)
	}

	found, err := repo.Find(txCtx, h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found.Rating != 4 || found.NumberOfRatings != 1 {
		t.Errorf("found = %v/%d, want: %v/%d", found.Rating, found.NumberOfRatings, 4, 1)
	}

	if err := repo.Delete(txCtx, h.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Find(txCtx, h.ID); !errors.Is(err, hotel.ErrNotFound) {
		t.Errorf("repo.Find() after delete = %v, want: %v", err, hotel.ErrNotFound)
	}

	err = repo.Update(txCtx, h.ID, hotel.Params{Name: "x", Title: "x", City: "x", Address: "x", DistanceFromCityCenter: 1})
	if !errors.Is(err, hotel.ErrNotFound) {
		t.Errorf("repo.Update() after delete = %v, want: %v", err, hotel.ErrNotFound)
	}
}
