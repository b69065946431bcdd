package hotel_test

import (
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
)

func TestHotel_Vote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rating     float64
		n          int
		mark       int
		wantRating float64
		wantN      int
	}{
		{"first vote", 0, 0, 4, 4, 1},
		{"raises rating", 3.33, 54, 5, 3.36, 55},
		{"max stays max", 5, 100, 5, 5, 101},
		{"min stays min", 1, 100, 1, 1, 101},
	}

	for _, tc := range tests {
		h := &hotel.Hotel{Rating: tc.rating, NumberOfRatings: tc.n}
		h.Vote(tc.mark)

		if h.Rating != tc.wantRating || h.NumberOfRatings != tc.wantN {
			t.Errorf("%s: Vote(%d) = %v/%d, want: %v/%d", tc.name, tc.mark, h.Rating, h.NumberOfRatings, tc.wantRating, tc.wantN)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{3.3609, 3.36},
		{2.125, 2.13},
		{4, 4},
	}

	for _, tc := range tests {
		if got := hotel.Round2(tc.in); got != tc.want {
			t.Errorf("hotel.Round2(%v) = %v, want: %v", tc.in, got, tc.want)
		}
	}
}
