package db

import (
	"context"
	"fmt"

	"github.com/ukydev/transit-fleet/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStationEventCollection implements StationEventCollection for MongoDB.
type MongoStationEventCollection struct {
	Collection *mongo.Collection
}

// InsertEvent inserts a station event. Events are immutable once recorded.
func (c *MongoStationEventCollection) InsertEvent(ctx context.Context, event models.StationEvent) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if event.Kind != models.EventArrival && event.Kind != models.EventDeparture {
		return fmt.Errorf("invalid event kind %q", event.Kind)
	}
	_, err := c.Collection.InsertOne(ctx, event)
	return err
}

// FindEventsByVehicle returns a vehicle's station events ordered by timestamp.
func (c *MongoStationEventCollection) FindEventsByVehicle(ctx context.Context, vehicleID string) ([]models.StationEvent, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := c.Collection.Find(ctx, bson.M{"vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.StationEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
