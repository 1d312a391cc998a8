package db

import (
	"context"

	"github.com/ukydev/transit-fleet/internal/models"
)

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
}

// MaintenanceCollection defines the interface for maintenance history
// operations. History is returned ordered by service date, most recent last.
type MaintenanceCollection interface {
	InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) error
	FindHistoryByVehicle(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error)
}

// ComponentCollection defines the interface for vehicle component operations.
type ComponentCollection interface {
	InsertComponent(ctx context.Context, component models.VehicleComponent) error
	FindComponentByID(ctx context.Context, id string) (*models.VehicleComponent, error)
	FindComponentsByVehicle(ctx context.Context, vehicleID string) ([]models.VehicleComponent, error)
	FindAllComponents(ctx context.Context) ([]models.VehicleComponent, error)
	AddUsage(ctx context.Context, id string, hours float64) error
	ResetUsage(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status string) error
}

// AlertCollection defines the interface for alert persistence.
type AlertCollection interface {
	InsertAlert(ctx context.Context, alert models.Alert) (string, error)
	FindAlerts(ctx context.Context, vehicleID string, status string) ([]models.Alert, error)
	ResolveAlert(ctx context.Context, id string) error
}

// StationEventCollection defines the interface for GPS station event storage.
type StationEventCollection interface {
	InsertEvent(ctx context.Context, event models.StationEvent) error
	FindEventsByVehicle(ctx context.Context, vehicleID string) ([]models.StationEvent, error)
}
