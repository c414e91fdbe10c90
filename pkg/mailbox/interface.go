// Package mailbox defines the abstraction for fetching recent messages from
// an email inbox provider.
package mailbox

import (
	"context"
	"time"
)

// Message is one inbox message in provider-independent form.
type Message struct {
	// ID is the provider's stable message identifier.
	ID string
	// Subject line; may be empty.
	Subject string
	// Sender is the raw From header value.
	Sender string
	// Snippet is a short plain-text preview of the body.
	Snippet string
	// ReceivedAt is the message date, normalized to UTC.
	ReceivedAt time.Time
}

// Client is the abstraction for inbox providers. Implementations fetch the
// recent messages the scan pipeline classifies.
//
//go:generate mockgen -package mockmailbox -source=interface.go -destination=mock/mockmailbox.go *
type Client interface {
	// FetchRecent returns recent messages within the provider's configured
	// query window, newest first as delivered by the provider.
	FetchRecent(ctx context.Context) ([]Message, error)
}
