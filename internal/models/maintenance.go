package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maintenance record statuses.
const (
	MaintenanceStatusScheduled = "scheduled"
	MaintenanceStatusCompleted = "completed"
	MaintenanceStatusCancelled = "cancelled"
)

// MaintenanceRecord represents a single service entry in a vehicle's
// maintenance history. History is append-only and ordered by service date.
type MaintenanceRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID   string             `json:"vehicle_id" bson:"vehicle_id"`
	ServiceType string             `json:"service_type" bson:"service_type"` // "oil_change", "brake_service", "inspection", "component_replacement"
	Description string             `json:"description" bson:"description"`
	ServiceDate time.Time          `json:"service_date" bson:"service_date"`
	Cost        float64            `json:"cost" bson:"cost"` // in USD
	Technician  string             `json:"technician" bson:"technician"`
	Status      string             `json:"status" bson:"status"` // "scheduled", "completed", "cancelled"
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
