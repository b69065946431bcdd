package event

import (
	"context"
	"errors"

	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnknownTopic = errors.New("event: unknown topic")

// RoomBookedEvent is emitted after a booking is stored.
type RoomBookedEvent struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID       int64              `json:"userId" bson:"userId"`
	CheckInDate  string             `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate string             `json:"checkOutDate" bson:"checkOutDate"`
}

func NewRoomBookedEvent(userID int64, checkIn, checkOut timex.Date) RoomBookedEvent {
	return RoomBookedEvent{
		UserID:       userID,
		CheckInDate:  checkIn.String(),
		CheckOutDate: checkOut.String(),
	}
}

// UserRegisteredEvent is emitted after a user is created.
type UserRegisteredEvent struct {
	ID     primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID int64              `json:"userId" bson:"userId"`
}

// Publisher sends domain events to the broker. Failures are logged, not returned:
// the operation that raised the event has already been committed.
type Publisher interface {
	PublishRoomBooked(ctx context.Context, e RoomBookedEvent)
	PublishUserRegistered(ctx context.Context, e UserRegisteredEvent)
}

// Store keeps the consumed events for the statistics export.
type Store interface {
	AddRoomBooked(ctx context.Context, e RoomBookedEvent) error
	AddUserRegistered(ctx context.Context, e UserRegisteredEvent) error
	RoomBooked(ctx context.Context) ([]RoomBookedEvent, error)
	UserRegistered(ctx context.Context) ([]UserRegisteredEvent, error)
}
