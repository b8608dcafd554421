package core

import "context"

// Messenger is the narrow capability the agent needs from the messaging
// backend: fetch pending updates, send a reply. Transport and certificate
// trust live behind this interface.
type Messenger interface {
	// FetchUpdates long-polls for updates at or after offset, preserving
	// backend order. A malformed response body is reported as a *ParseError;
	// any other failure is a transport error.
	FetchUpdates(ctx context.Context, offset uint64) ([]Update, error)

	// SendReply delivers text to the given chat. Best-effort: callers log
	// failures and do not retry.
	SendReply(ctx context.Context, chatID int64, text string) error
}
