//go:build integration

package event_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/event"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/mongo"
	"github.com/ferdiebergado/gopherkit/env"
)

func TestIntegration_MongoStore(t *testing.T) {
	if err := env.Load("../../.env.testing"); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	cfg := &config.Mongo{
		URI:            os.Getenv("MONGO_URI"),
		Database:       "booking_test",
		ConnectTimeout: timex.Duration{Duration: 5 * time.Second},
	}

	client, db, err := mongo.Connect(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer mongo.Disconnect(ctx, client)
	defer func() {
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test database: %v", err)
		}
	}()

	store := event.NewMongoStore(db)

	if err := store.AddRoomBooked(ctx, event.RoomBookedEvent{UserID: 1, CheckInDate: "2030-01-01", CheckOutDate: "2030-01-02"}); err != nil {
		t.Fatal(err)
	}
	if err := store.AddUserRegistered(ctx, event.UserRegisteredEvent{UserID: 2}); err != nil {
		t.Fatal(err)
	}

	booked, err := store.RoomBooked(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(booked) != 1 || booked[0].UserID != 1 || booked[0].CheckOutDate != "2030-01-02" {
		t.Errorf("store.RoomBooked() = %+v", booked)
	}

	registered, err := store.UserRegistered(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(registered) != 1 || registered[0].UserID != 2 {
		t.Errorf("store.UserRegistered() = %+v", registered)
	}
}
