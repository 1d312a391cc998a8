package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ukydev/transit-fleet/internal/models"
)

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

// MockMaintenanceCollection is a mock implementation of db.MaintenanceCollection
type MockMaintenanceCollection struct {
	mock.Mock
}

func (m *MockMaintenanceCollection) InsertMaintenance(ctx context.Context, record models.MaintenanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) FindHistoryByVehicle(ctx context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceRecord), args.Error(1)
}

// MockComponentCollection is a mock implementation of db.ComponentCollection
type MockComponentCollection struct {
	mock.Mock
}

func (m *MockComponentCollection) InsertComponent(ctx context.Context, component models.VehicleComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockComponentCollection) FindComponentByID(ctx context.Context, id string) (*models.VehicleComponent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleComponent), args.Error(1)
}

func (m *MockComponentCollection) FindComponentsByVehicle(ctx context.Context, vehicleID string) ([]models.VehicleComponent, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VehicleComponent), args.Error(1)
}

func (m *MockComponentCollection) FindAllComponents(ctx context.Context) ([]models.VehicleComponent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VehicleComponent), args.Error(1)
}

func (m *MockComponentCollection) AddUsage(ctx context.Context, id string, hours float64) error {
	args := m.Called(ctx, id, hours)
	return args.Error(0)
}

func (m *MockComponentCollection) ResetUsage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComponentCollection) UpdateStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockAlertCollection is a mock implementation of db.AlertCollection
type MockAlertCollection struct {
	mock.Mock
}

func (m *MockAlertCollection) InsertAlert(ctx context.Context, alert models.Alert) (string, error) {
	args := m.Called(ctx, alert)
	return args.String(0), args.Error(1)
}

func (m *MockAlertCollection) FindAlerts(ctx context.Context, vehicleID string, status string) ([]models.Alert, error) {
	args := m.Called(ctx, vehicleID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockAlertCollection) ResolveAlert(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStationEventCollection is a mock implementation of db.StationEventCollection
type MockStationEventCollection struct {
	mock.Mock
}

func (m *MockStationEventCollection) InsertEvent(ctx context.Context, event models.StationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStationEventCollection) FindEventsByVehicle(ctx context.Context, vehicleID string) ([]models.StationEvent, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StationEvent), args.Error(1)
}
