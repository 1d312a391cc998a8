package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/transit-fleet/internal/db"
	"github.com/ukydev/transit-fleet/internal/models"
)

// DefaultNotifyTimeout bounds each notifier invocation so a hung channel
// cannot stall alert publication.
const DefaultNotifyTimeout = 5 * time.Second

// Dispatcher persists alerts and fans them out to subscribed notification
// channels. Persistence is the source of truth: when the store rejects an
// alert, no channel hears about it.
type Dispatcher struct {
	mu      sync.RWMutex
	subs    map[string]Notifier
	store   db.AlertCollection
	timeout time.Duration
}

// NewDispatcher creates a dispatcher over the given alert store.
func NewDispatcher(store db.AlertCollection, notifyTimeout time.Duration) *Dispatcher {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &Dispatcher{
		subs:    make(map[string]Notifier),
		store:   store,
		timeout: notifyTimeout,
	}
}

// Subscribe registers a notification channel. Subscribing a channel with a
// name already registered replaces it; a publish delivers at most once per
// name.
func (d *Dispatcher) Subscribe(n Notifier) {
	d.mu.Lock()
	d.subs[n.Name()] = n
	d.mu.Unlock()
}

// Unsubscribe removes a channel by name. Removing an unknown name is a no-op.
func (d *Dispatcher) Unsubscribe(name string) {
	d.mu.Lock()
	delete(d.subs, name)
	d.mu.Unlock()
}

// Subscribers returns the names of the currently registered channels.
func (d *Dispatcher) Subscribers() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.subs))
	for name := range d.subs {
		names = append(names, name)
	}
	return names
}

// Publish persists the alert and notifies every subscribed channel. The
// subscriber set is snapshotted after persistence succeeds, so channels
// added or removed mid-dispatch neither miss nor double-receive this
// publish. Each channel runs on its own goroutine under a bounded timeout
// and is abandoned at the deadline even if it does not honor cancellation;
// channel failures are logged and never fail the publish.
func (d *Dispatcher) Publish(ctx context.Context, alert models.Alert) error {
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	if alert.Status == "" {
		alert.Status = models.AlertStatusOpen
	}

	id, err := d.store.InsertAlert(ctx, alert)
	if err != nil {
		return fmt.Errorf("persist alert: %w", err)
	}

	d.mu.RLock()
	snapshot := make([]Notifier, 0, len(d.subs))
	for _, n := range d.subs {
		snapshot = append(snapshot, n)
	}
	d.mu.RUnlock()

	var wg sync.WaitGroup
	for _, n := range snapshot {
		wg.Add(1)
		go func(n Notifier) {
			defer wg.Done()
			nctx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- n.Notify(nctx, alert) }()

			var err error
			select {
			case err = <-done:
			case <-nctx.Done():
				// The channel ignored cancellation; abandon it at the
				// deadline so the publish stays bounded.
				err = nctx.Err()
			}
			if err != nil {
				log.WithFields(log.Fields{
					"channel":  n.Name(),
					"alert_id": id,
					"type":     alert.Type,
				}).WithError(err).Warn("alert notification failed")
			}
		}(n)
	}
	wg.Wait()

	log.WithFields(log.Fields{
		"alert_id": id,
		"type":     alert.Type,
		"channels": len(snapshot),
	}).Info("alert published")
	return nil
}
