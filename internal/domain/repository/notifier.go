package repository

import "context"

// Notification is a structured payload for the external email sink
type Notification struct {
	Type      string                 `json:"type"`
	Recipient string                 `json:"recipient"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Notifier is the fire-and-forget notification sink. Delivery failures must
// never affect the outcome of the operation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
