package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Component statuses.
const (
	ComponentStatusOperational         = "operational"
	ComponentStatusMaintenanceRequired = "maintenance_required"
)

// VehicleComponent tracks cumulative usage of a replaceable part against its
// rated maximum. UsageHours only grows until a completed replacement resets it.
// MaxHours is a pointer because some parts have no rated lifetime; those are
// excluded from threshold evaluation.
type VehicleComponent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID  string             `bson:"vehicle_id" json:"vehicle_id"`
	Name       string             `bson:"name" json:"name"` // "brake_pads", "engine_oil", "air_filter", ...
	UsageHours float64            `bson:"usage_hours" json:"usage_hours"`
	MaxHours   *float64           `bson:"max_hours,omitempty" json:"max_hours,omitempty"`
	Status     string             `bson:"status" json:"status"` // "operational" or "maintenance_required"
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Evaluable reports whether the component carries enough data for a
// threshold comparison.
func (c *VehicleComponent) Evaluable() bool {
	return c.MaxHours != nil && *c.MaxHours > 0
}

// OverThreshold reports whether cumulative usage has reached the given
// fraction of the rated maximum. The comparison is inclusive. Components
// without a rated maximum are never over threshold.
func (c *VehicleComponent) OverThreshold(threshold float64) bool {
	if !c.Evaluable() {
		return false
	}
	return c.UsageHours >= *c.MaxHours*threshold
}
