package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ukydev/transit-fleet/internal/models"
	"github.com/ukydev/transit-fleet/internal/stations"
)

func TestRecordEvent_Valid(t *testing.T) {
	events := &MockStationEventCollection{}
	events.On("InsertEvent", mock.Anything, mock.Anything).Return(nil)

	handler := NewStationHandler(stations.NewPairer(events), events)

	body, _ := json.Marshal(models.StationEvent{
		VehicleID: "v1",
		StationID: "central",
		Kind:      models.EventArrival,
		Timestamp: time.Now(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/stations/events", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.RecordEvent(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	events.AssertExpectations(t)
}

func TestRecordEvent_BadKind(t *testing.T) {
	events := &MockStationEventCollection{}
	handler := NewStationHandler(stations.NewPairer(events), events)

	body, _ := json.Marshal(models.StationEvent{
		VehicleID: "v1",
		StationID: "central",
		Kind:      "LOITERING",
		Timestamp: time.Now(),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/stations/events", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.RecordEvent(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDwellIntervals_PairsEvents(t *testing.T) {
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	events := &MockStationEventCollection{}
	events.On("FindEventsByVehicle", mock.Anything, "v1").Return([]models.StationEvent{
		{VehicleID: "v1", StationID: "central", Kind: models.EventArrival, Timestamp: base},
		{VehicleID: "v1", StationID: "central", Kind: models.EventDeparture, Timestamp: base.Add(time.Minute)},
		{VehicleID: "v1", StationID: "market", Kind: models.EventArrival, Timestamp: base.Add(5 * time.Minute)},
	}, nil)

	handler := NewStationHandler(stations.NewPairer(events), events)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/v1/dwell", nil)
	w := httptest.NewRecorder()
	handler.DwellIntervals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		VehicleID string                  `json:"vehicle_id"`
		Intervals []models.DwellInterval  `json:"intervals"`
		Unmatched []models.UnmatchedEvent `json:"unmatched"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.VehicleID)
	assert.Len(t, resp.Intervals, 1)
	assert.Len(t, resp.Unmatched, 1)
	assert.Equal(t, models.UnmatchedMissingDeparture, resp.Unmatched[0].Reason)
}

func TestDwellIntervals_MethodNotAllowed(t *testing.T) {
	events := &MockStationEventCollection{}
	handler := NewStationHandler(stations.NewPairer(events), events)

	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/v1/dwell", nil)
	w := httptest.NewRecorder()
	handler.DwellIntervals(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
