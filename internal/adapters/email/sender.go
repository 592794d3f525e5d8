package email

import (
	"context"
	"time"
)

// SendRequest contains the data needed to deliver one email via an
// external provider.
type SendRequest struct {
	To      []string // recipient addresses
	From    string   // sender address (e.g. "Fitness Center <noreply@fitness-center.example>")
	Subject string
	HTML    string // HTML body
}

// SendResult contains the provider's response for a delivered email.
type SendResult struct {
	MessageID string    // provider's message id for tracking
	SentAt    time.Time // when the send was accepted
}

// Sender delivers emails via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
