package domain

import "time"

// EmailID uniquely identifies a stored email reference.
type EmailID int64

// Email is a lightweight reference to a mailbox message that looked
// job-related. Only headers and a snippet are stored, never the body.
type Email struct {
	ID EmailID `json:"id"`

	// MessageID is the provider's message identifier. Unique per mailbox.
	MessageID string `json:"message_id"`
	// Subject is the message subject line.
	Subject string `json:"subject"`
	// Sender is the From header.
	Sender string `json:"sender"`
	// Snippet is a short plain-text preview of the body.
	Snippet string `json:"snippet"`
	// ReceivedAt is when the mailbox received the message.
	ReceivedAt time.Time `json:"received_at"`

	// ApplicationID links the email to an application; nil while unlinked.
	ApplicationID *ApplicationID `json:"application_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
