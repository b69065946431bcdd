package event

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionRoomBooked     = "room_booked_events"
	CollectionUserRegistered = "user_registered_events"
)

type MongoStore struct {
	roomBooked     *mongo.Collection
	userRegistered *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		roomBooked:     db.Collection(CollectionRoomBooked),
		userRegistered: db.Collection(CollectionUserRegistered),
	}
}

func (s *MongoStore) AddRoomBooked(ctx context.Context, e RoomBookedEvent) error {
	if _, err := s.roomBooked.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert into %s: %w", CollectionRoomBooked, err)
	}
	return nil
}

func (s *MongoStore) AddUserRegistered(ctx context.Context, e UserRegisteredEvent) error {
	if _, err := s.userRegistered.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert into %s: %w", CollectionUserRegistered, err)
	}
	return nil
}

func (s *MongoStore) RoomBooked(ctx context.Context) ([]RoomBookedEvent, error) {
	events := make([]RoomBookedEvent, 0)
	if err := findAll(ctx, s.roomBooked, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *MongoStore) UserRegistered(ctx context.Context) ([]UserRegisteredEvent, error) {
	events := make([]UserRegisteredEvent, 0)
	if err := findAll(ctx, s.userRegistered, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// findAll decodes the whole collection in insertion order.
func findAll(ctx context.Context, coll *mongo.Collection, results any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", coll.Name(), err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}
