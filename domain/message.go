// Package domain contains the core concepts of the chat system: users,
// rooms, messages and history traversal. No runtime, network, or UI logic
// should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable delivered chat event as it arrives in a
// recipient's inbox.
type Message struct {
	ID      uuid.UUID // unique identifier
	Sender  string
	Room    string
	Content string
	At      time.Time
}
