package outbox

import "time"

// Message is an outbox row persisted inside the same DB transaction as the
// state change it announces. The relay worker drains pending rows to the bus.
type Message struct {
	OutboxID     int64
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}
