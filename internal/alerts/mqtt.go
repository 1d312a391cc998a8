package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ukydev/transit-fleet/internal/models"
)

// MQTTNotifier publishes alerts on the fleet alert topic for in-depot
// displays and other subscribed equipment.
type MQTTNotifier struct {
	client mqtt.Client
	topic  string
}

// NewMQTTNotifier connects to the broker and returns the channel.
func NewMQTTNotifier(brokerURL, clientID, topic string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return &MQTTNotifier{client: client, topic: topic}, nil
}

func (m *MQTTNotifier) Name() string { return "mqtt" }

// Notify publishes the alert as JSON at QoS 1.
func (m *MQTTNotifier) Notify(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	token := m.client.Publish(m.topic, 1, false, payload)

	deadline, ok := ctx.Deadline()
	wait := 5 * time.Second
	if ok {
		wait = time.Until(deadline)
	}
	if !token.WaitTimeout(wait) {
		return fmt.Errorf("mqtt publish to %s timed out", m.topic)
	}
	return token.Error()
}

// Close disconnects from the broker.
func (m *MQTTNotifier) Close() {
	m.client.Disconnect(250)
}
