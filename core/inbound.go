package core

import "time"

// Update is one entry of the backend's getUpdates result. Within a single
// fetch the backend delivers updates in strictly increasing ID order.
type Update struct {
	ID      uint64
	Message *InboundMessage
}

// InboundMessage represents a message received from Telegram.
type InboundMessage struct {
	UpdateID  uint64
	ChatID    int64
	Text      string
	Timestamp time.Time
}

// MessageHandler processes an inbound message.
type MessageHandler func(msg InboundMessage)
