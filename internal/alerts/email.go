package alerts

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ukydev/transit-fleet/internal/models"
)

// EmailNotifier delivers alerts to the dispatch office mailbox over SMTP.
type EmailNotifier struct {
	Addr       string // host:port of the SMTP relay
	From       string
	Recipients []string
	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailNotifier creates an email channel for the given relay and recipients.
func NewEmailNotifier(addr, from string, recipients []string) *EmailNotifier {
	return &EmailNotifier{
		Addr:       addr,
		From:       from,
		Recipients: recipients,
		send:       smtp.SendMail,
	}
}

func (e *EmailNotifier) Name() string { return "email" }

// Notify sends the alert as a plain-text email. The SMTP client has no
// context support, so the send runs on its own goroutine and the call
// returns on cancellation even if the relay hangs.
func (e *EmailNotifier) Notify(ctx context.Context, alert models.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("[fleet] %s alert", alert.Type)
	if alert.VehicleID != "" {
		subject = fmt.Sprintf("[fleet] %s alert for vehicle %s", alert.Type, alert.VehicleID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", e.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(e.Recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n\r\n", subject)
	fmt.Fprintf(&b, "%s\r\n\r\nSeverity: %s\r\nCreated: %s\r\n",
		alert.Message, alert.Severity, alert.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	done := make(chan error, 1)
	go func() { done <- e.send(e.Addr, nil, e.From, e.Recipients, []byte(b.String())) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
