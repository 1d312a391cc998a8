package alerts

import (
	"context"

	"github.com/ukydev/transit-fleet/internal/models"
)

// Notifier delivers a published alert over one channel. Delivery is
// best-effort: a returned error is logged by the dispatcher, never
// propagated to the publisher.
type Notifier interface {
	// Name identifies the channel. The dispatcher keys its subscriber set
	// by name, so subscribing two notifiers with the same name replaces
	// rather than duplicates.
	Name() string
	Notify(ctx context.Context, alert models.Alert) error
}

// Nop is a no-op notifier useful in tests.
type Nop struct{ ChannelName string }

func (n Nop) Name() string { return n.ChannelName }

func (Nop) Notify(_ context.Context, _ models.Alert) error { return nil }
