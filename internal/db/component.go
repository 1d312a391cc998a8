package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ukydev/transit-fleet/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoComponentCollection implements ComponentCollection for MongoDB.
type MongoComponentCollection struct {
	Collection *mongo.Collection
}

// InsertComponent inserts a component record into the collection.
func (c *MongoComponentCollection) InsertComponent(ctx context.Context, component models.VehicleComponent) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	component.CreatedAt = time.Now()
	component.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, component)
	return err
}

// FindComponentByID finds a component by its ID.
func (c *MongoComponentCollection) FindComponentByID(ctx context.Context, id string) (*models.VehicleComponent, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid component ID: %w", err)
	}

	var component models.VehicleComponent
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&component)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &component, nil
}

// FindComponentsByVehicle returns all components attached to a vehicle.
func (c *MongoComponentCollection) FindComponentsByVehicle(ctx context.Context, vehicleID string) ([]models.VehicleComponent, error) {
	return c.find(ctx, bson.M{"vehicle_id": vehicleID})
}

// FindAllComponents returns every component in the fleet.
func (c *MongoComponentCollection) FindAllComponents(ctx context.Context) ([]models.VehicleComponent, error) {
	return c.find(ctx, bson.M{})
}

func (c *MongoComponentCollection) find(ctx context.Context, filter bson.M) ([]models.VehicleComponent, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var components []models.VehicleComponent
	if err := cursor.All(ctx, &components); err != nil {
		return nil, err
	}
	return components, nil
}

// AddUsage atomically accumulates usage hours on a component. The $inc
// keeps concurrent read-modify-write callers from losing updates.
func (c *MongoComponentCollection) AddUsage(ctx context.Context, id string, hours float64) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid component ID: %w", err)
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$inc": bson.M{"usage_hours": hours},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetUsage zeroes a component's usage counter after a completed replacement.
func (c *MongoComponentCollection) ResetUsage(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid component ID: %w", err)
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{
			"usage_hours": 0.0,
			"status":      models.ComponentStatusOperational,
			"updated_at":  time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets a component's status.
func (c *MongoComponentCollection) UpdateStatus(ctx context.Context, id string, status string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid component ID: %w", err)
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
