package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ukydev/transit-fleet/internal/models"
)

// SMSNotifier posts alerts to an SMS gateway webhook.
type SMSNotifier struct {
	GatewayURL string
	APIKey     string
	Client     *http.Client
}

// NewSMSNotifier creates an SMS channel against the given gateway.
func NewSMSNotifier(gatewayURL, apiKey string) *SMSNotifier {
	return &SMSNotifier{
		GatewayURL: gatewayURL,
		APIKey:     apiKey,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSNotifier) Name() string { return "sms" }

// Notify posts a compact alert payload to the gateway.
func (s *SMSNotifier) Notify(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(map[string]interface{}{
		"vehicle_id":   alert.VehicleID,
		"alert_type":   alert.Type,
		"severity":     alert.Severity,
		"message":      alert.Message,
		"triggered_at": alert.CreatedAt.Unix(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.GatewayURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}
