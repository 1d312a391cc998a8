package maintenance

import (
	"context"
	"sync"

	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// fakeComponents is an in-memory ComponentCollection.
type fakeComponents struct {
	mu         sync.Mutex
	components map[string]*models.VehicleComponent
}

func newFakeComponents() *fakeComponents {
	return &fakeComponents{components: make(map[string]*models.VehicleComponent)}
}

func (f *fakeComponents) put(id string, c models.VehicleComponent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := c
	f.components[id] = &copied
}

func (f *fakeComponents) InsertComponent(_ context.Context, _ models.VehicleComponent) error {
	return nil
}

func (f *fakeComponents) FindComponentByID(_ context.Context, id string) (*models.VehicleComponent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.components[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeComponents) FindComponentsByVehicle(_ context.Context, vehicleID string) ([]models.VehicleComponent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.VehicleComponent
	for _, c := range f.components {
		if c.VehicleID == vehicleID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComponents) FindAllComponents(_ context.Context) ([]models.VehicleComponent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.VehicleComponent
	for _, c := range f.components {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeComponents) AddUsage(_ context.Context, id string, hours float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.components[id]
	if !ok {
		return db.ErrNotFound
	}
	c.UsageHours += hours
	return nil
}

func (f *fakeComponents) ResetUsage(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.components[id]
	if !ok {
		return db.ErrNotFound
	}
	c.UsageHours = 0
	c.Status = models.ComponentStatusOperational
	return nil
}

func (f *fakeComponents) UpdateStatus(_ context.Context, id string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.components[id]
	if !ok {
		return db.ErrNotFound
	}
	c.Status = status
	return nil
}

// fakeVehicles is an in-memory VehicleCollection.
type fakeVehicles struct {
	vehicles map[string]models.Vehicle
}

func (f *fakeVehicles) InsertVehicle(_ context.Context, _ models.Vehicle) error { return nil }

func (f *fakeVehicles) FindVehicleByID(_ context.Context, id string) (*models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &v, nil
}

// fakeHistory is an in-memory MaintenanceCollection.
type fakeHistory struct {
	records map[string][]models.MaintenanceRecord
}

func (f *fakeHistory) InsertMaintenance(_ context.Context, _ models.MaintenanceRecord) error {
	return nil
}

func (f *fakeHistory) FindHistoryByVehicle(_ context.Context, vehicleID string) ([]models.MaintenanceRecord, error) {
	return f.records[vehicleID], nil
}
