package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alert statuses.
const (
	AlertStatusOpen     = "open"
	AlertStatusResolved = "resolved"
)

// Alert types raised by the core.
const (
	AlertTypeMaintenanceDue = "maintenance_due"
	AlertTypeComponentWear  = "component_wear"
	AlertTypeStationAnomaly = "station_anomaly"
	AlertTypeSystem         = "system"
)

// Alert represents an alert record. VehicleID is empty for system-wide
// alerts. Alerts are created by the dispatcher and resolved by an external
// action; notification channels never mutate them.
type Alert struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID  string             `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	Type       string             `bson:"type" json:"type"`
	Message    string             `bson:"message" json:"message"`
	Severity   string             `bson:"severity" json:"severity"` // "low", "medium", "high", "critical"
	Status     string             `bson:"status" json:"status"`     // "open" or "resolved"
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	ResolvedAt *time.Time         `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}
