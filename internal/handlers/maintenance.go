package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/alerts"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/maintenance"
	"github.com/ukydev/transit-fleet/internal/models"
)

// MaintenanceHandler serves maintenance-due evaluations and component usage
// reporting.
type MaintenanceHandler struct {
	evaluator  *maintenance.Evaluator
	selector   *maintenance.Selector
	tracker    *maintenance.UsageTracker
	dispatcher *alerts.Dispatcher
	components db.ComponentCollection
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(evaluator *maintenance.Evaluator, selector *maintenance.Selector, tracker *maintenance.UsageTracker, dispatcher *alerts.Dispatcher, components db.ComponentCollection) *MaintenanceHandler {
	return &MaintenanceHandler{
		evaluator:  evaluator,
		selector:   selector,
		tracker:    tracker,
		dispatcher: dispatcher,
		components: components,
	}
}

// EvaluateDue handles GET /api/vehicles/{id}/maintenance-due?strategy=name.
// When the vehicle is due, a maintenance_due alert is published; a failed
// publication is logged but does not fail the evaluation response.
func (h *MaintenanceHandler) EvaluateDue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicleID := pathSegment(r.URL.Path, "/api/vehicles/", "/maintenance-due")
	if vehicleID == "" {
		http.Error(w, "Vehicle ID required", http.StatusBadRequest)
		return
	}

	kind, err := h.selector.Resolve(r.URL.Query().Get("strategy"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	due, err := h.evaluator.EvaluateDue(r.Context(), vehicleID, kind)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Evaluation failed", http.StatusInternalServerError)
		return
	}

	if due {
		alert := models.Alert{
			VehicleID: vehicleID,
			Type:      models.AlertTypeMaintenanceDue,
			Severity:  "medium",
			Message:   fmt.Sprintf("vehicle %s is due for maintenance (%s strategy)", vehicleID, kind),
		}
		if err := h.dispatcher.Publish(r.Context(), alert); err != nil {
			log.WithField("vehicle_id", vehicleID).WithError(err).Warn("maintenance-due alert not published")
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id": vehicleID,
		"strategy":   kind.String(),
		"due":        due,
	})
}

// SelectStrategy handles PUT /api/strategy with body {"strategy": "time"}.
// An unknown name is rejected and the prior selection stays in effect.
func (h *MaintenanceHandler) SelectStrategy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Strategy string `json:"strategy"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.selector.Select(req.Strategy); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"strategy": h.selector.Current().String()})
}

// ReportUsage handles POST /api/components/{id}/usage with body
// {"hours": 12.5}. When the addition pushes the component over the policy
// threshold its status flips and a component_wear alert goes out.
func (h *MaintenanceHandler) ReportUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	componentID := pathSegment(r.URL.Path, "/api/components/", "/usage")
	if componentID == "" {
		http.Error(w, "Component ID required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Hours float64 `json:"hours"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Hours < 0 {
		http.Error(w, "Hours must be non-negative", http.StatusBadRequest)
		return
	}

	if err := h.tracker.AddUsage(r.Context(), componentID, req.Hours); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Component not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to record usage", http.StatusBadGateway)
		return
	}

	resp := map[string]interface{}{"component_id": componentID}

	threshold := h.evaluator.Policy().UsageThreshold
	over, err := h.tracker.IsOverThreshold(r.Context(), componentID, threshold)
	if err != nil {
		// The usage write succeeded but the check did not; leave the
		// threshold verdict out rather than report an unknown as false.
		log.WithField("component_id", componentID).WithError(err).Warn("threshold check failed after usage report")
	} else {
		resp["over_threshold"] = over
		if over {
			h.flagComponent(r, componentID)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *MaintenanceHandler) flagComponent(r *http.Request, componentID string) {
	component, err := h.components.FindComponentByID(r.Context(), componentID)
	if err != nil {
		log.WithField("component_id", componentID).WithError(err).Warn("component lookup failed")
		return
	}
	if component.Status == models.ComponentStatusMaintenanceRequired {
		return // already flagged, no duplicate alert
	}

	if err := h.components.UpdateStatus(r.Context(), componentID, models.ComponentStatusMaintenanceRequired); err != nil {
		log.WithField("component_id", componentID).WithError(err).Warn("component status update failed")
	}

	alert := models.Alert{
		VehicleID: component.VehicleID,
		Type:      models.AlertTypeComponentWear,
		Severity:  "high",
		Message:   fmt.Sprintf("component %s on vehicle %s reached its usage threshold", component.Name, component.VehicleID),
	}
	if err := h.dispatcher.Publish(r.Context(), alert); err != nil {
		log.WithField("component_id", componentID).WithError(err).Warn("component wear alert not published")
	}
}

// pathSegment extracts the single path segment between prefix and suffix,
// e.g. the vehicle ID in /api/vehicles/{id}/maintenance-due.
func pathSegment(path, prefix, suffix string) string {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	segment := strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix)
	if strings.Contains(segment, "/") {
		return ""
	}
	return segment
}
