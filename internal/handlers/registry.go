package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// RegistryHandler registers vehicles and components. Full fleet CRUD lives
// in the agency's record-keeping application; the core only needs enough
// surface to seed what it evaluates.
type RegistryHandler struct {
	vehicles   db.VehicleCollection
	components db.ComponentCollection
	history    db.MaintenanceCollection
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(vehicles db.VehicleCollection, components db.ComponentCollection, history db.MaintenanceCollection) *RegistryHandler {
	return &RegistryHandler{
		vehicles:   vehicles,
		components: components,
		history:    history,
	}
}

// RegisterVehicle handles POST /api/vehicles.
func (h *RegistryHandler) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var vehicle models.Vehicle
	if err := readJSON(r, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		http.Error(w, "Failed to register vehicle", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// RegisterComponent handles POST /api/components.
func (h *RegistryHandler) RegisterComponent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var component models.VehicleComponent
	if err := readJSON(r, &component); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if component.VehicleID == "" || component.Name == "" {
		http.Error(w, "vehicle_id and name are required", http.StatusBadRequest)
		return
	}
	if component.Status == "" {
		component.Status = models.ComponentStatusOperational
	}

	if err := h.components.InsertComponent(r.Context(), component); err != nil {
		http.Error(w, "Failed to register component", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// RecordMaintenance handles POST /api/maintenance, appending to a vehicle's
// maintenance history.
func (h *RegistryHandler) RecordMaintenance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var record models.MaintenanceRecord
	if err := readJSON(r, &record); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if record.VehicleID == "" || record.ServiceDate.IsZero() {
		http.Error(w, "vehicle_id and service_date are required", http.StatusBadRequest)
		return
	}
	if record.Status == "" {
		record.Status = models.MaintenanceStatusScheduled
	}

	if err := h.history.InsertMaintenance(r.Context(), record); err != nil {
		http.Error(w, "Failed to record maintenance", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}
