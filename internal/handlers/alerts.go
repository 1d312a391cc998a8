package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ukydev/transit-fleet/internal/alerts"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// AlertHandler serves alert publication, resolution and notification channel
// management.
type AlertHandler struct {
	dispatcher *alerts.Dispatcher
	store      db.AlertCollection
	// available is the set of channels built at startup; subscription
	// toggles delivery without reconnecting brokers.
	available map[string]alerts.Notifier
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(dispatcher *alerts.Dispatcher, store db.AlertCollection, available map[string]alerts.Notifier) *AlertHandler {
	return &AlertHandler{
		dispatcher: dispatcher,
		store:      store,
		available:  available,
	}
}

// Alerts handles POST /api/alerts (publish) and GET /api/alerts (list).
func (h *AlertHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.publish(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AlertHandler) publish(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var alert models.Alert
	if err := json.Unmarshal(body, &alert); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if alert.Type == "" || alert.Message == "" {
		http.Error(w, "Type and message are required", http.StatusBadRequest)
		return
	}

	if err := h.dispatcher.Publish(r.Context(), alert); err != nil {
		http.Error(w, "Alert not persisted", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "published"})
}

func (h *AlertHandler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.FindAlerts(r.Context(), r.URL.Query().Get("vehicle_id"), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Failed to query alerts", http.StatusInternalServerError)
		return
	}
	if result == nil {
		result = []models.Alert{}
	}
	writeJSON(w, http.StatusOK, result)
}

// Resolve handles POST /api/alerts/{id}/resolve.
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	alertID := pathSegment(r.URL.Path, "/api/alerts/", "/resolve")
	if alertID == "" {
		http.Error(w, "Alert ID required", http.StatusBadRequest)
		return
	}

	if err := h.store.ResolveAlert(r.Context(), alertID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Alert not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to resolve alert", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": models.AlertStatusResolved})
}

// Channels handles GET /api/channels (list subscribed), POST /api/channels
// (subscribe one of the configured channels) and DELETE /api/channels/{name}.
func (h *AlertHandler) Channels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]interface{}{"subscribed": h.dispatcher.Subscribers()})

	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}
		var req struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		notifier, ok := h.available[req.Name]
		if !ok {
			http.Error(w, "Unknown channel", http.StatusBadRequest)
			return
		}
		h.dispatcher.Subscribe(notifier)
		writeJSON(w, http.StatusOK, map[string]string{"subscribed": req.Name})

	case http.MethodDelete:
		name := strings.TrimPrefix(r.URL.Path, "/api/channels/")
		if name == "" || strings.Contains(name, "/") {
			http.Error(w, "Channel name required", http.StatusBadRequest)
			return
		}
		h.dispatcher.Unsubscribe(name)
		writeJSON(w, http.StatusOK, map[string]string{"unsubscribed": name})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
