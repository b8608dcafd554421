package core

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultPollPause = time.Second

// Poller drives the fetch loop against the messaging backend. It is the sole
// owner of the update offset: nothing else reads or writes it, so the loop
// needs no locking as long as it stays on one goroutine.
type Poller struct {
	messenger Messenger
	handler   MessageHandler
	logger    *slog.Logger
	pause     time.Duration
	offset    uint64
}

// NewPoller creates a poller that feeds each received message to handler.
func NewPoller(m Messenger, handler MessageHandler, logger *slog.Logger) *Poller {
	return &Poller{
		messenger: m,
		handler:   handler,
		logger:    logger,
		pause:     defaultPollPause,
	}
}

// WithPause overrides the fixed inter-cycle pause (for testing).
func (p *Poller) WithPause(d time.Duration) *Poller {
	p.pause = d
	return p
}

// Offset returns the next update ID the poller will request.
func (p *Poller) Offset() uint64 { return p.offset }

// Run executes the poll loop until ctx is cancelled. Every failure inside the
// loop is logged and absorbed; nothing here terminates the process.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started")
	for {
		if ctx.Err() != nil {
			p.logger.Info("poller stopped")
			return nil
		}

		p.logger.Debug("polling", "offset", p.offset)
		updates, err := p.messenger.FetchUpdates(ctx, p.offset)
		switch {
		case err == nil:
			for _, u := range updates {
				// The offset advances for every update seen, whether or not
				// its message dispatches cleanly.
				p.offset = u.ID + 1
				if u.Message != nil {
					p.logger.Info("received message", "update_id", u.ID, "chat_id", u.Message.ChatID, "text", u.Message.Text)
					p.handler(*u.Message)
				}
			}
		case ctx.Err() != nil:
			p.logger.Info("poller stopped")
			return nil
		default:
			var pe *ParseError
			if errors.As(err, &pe) {
				p.logger.Error("malformed fetch response, updates will be redelivered", "offset", p.offset, "error", err)
			} else {
				p.logger.Error("fetch failed", "offset", p.offset, "error", err)
			}
		}

		select {
		case <-time.After(p.pause):
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return nil
		}
	}
}
