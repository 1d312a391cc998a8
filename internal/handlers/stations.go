package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
	"github.com/ukydev/transit-fleet/internal/stations"
)

// StationHandler serves station event recording and dwell interval reports.
type StationHandler struct {
	pairer *stations.Pairer
	events db.StationEventCollection
}

// NewStationHandler creates a new station handler
func NewStationHandler(pairer *stations.Pairer, events db.StationEventCollection) *StationHandler {
	return &StationHandler{
		pairer: pairer,
		events: events,
	}
}

// RecordEvent handles POST /api/stations/events.
func (h *StationHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var event models.StationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if event.VehicleID == "" || event.StationID == "" || event.Timestamp.IsZero() {
		http.Error(w, "vehicle_id, station_id and timestamp are required", http.StatusBadRequest)
		return
	}
	if event.Kind != models.EventArrival && event.Kind != models.EventDeparture {
		http.Error(w, "kind must be ARRIVAL or DEPARTURE", http.StatusBadRequest)
		return
	}

	if err := h.events.InsertEvent(r.Context(), event); err != nil {
		http.Error(w, "Failed to record event", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// DwellIntervals handles GET /api/vehicles/{id}/dwell.
func (h *StationHandler) DwellIntervals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicleID := pathSegment(r.URL.Path, "/api/vehicles/", "/dwell")
	if vehicleID == "" {
		http.Error(w, "Vehicle ID required", http.StatusBadRequest)
		return
	}

	intervals, unmatched, err := h.pairer.ComputeDwellIntervals(r.Context(), vehicleID)
	if err != nil {
		http.Error(w, "Failed to compute dwell intervals", http.StatusInternalServerError)
		return
	}

	if intervals == nil {
		intervals = []models.DwellInterval{}
	}
	if unmatched == nil {
		unmatched = []models.UnmatchedEvent{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id": vehicleID,
		"intervals":  intervals,
		"unmatched":  unmatched,
	})
}
