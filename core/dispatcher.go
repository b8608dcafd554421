package core

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdelaire/openwake/core/ops"
	"github.com/jdelaire/openwake/core/policy"
)

const (
	opTimeout    = 30 * time.Second
	replyTimeout = 10 * time.Second
)

// Dispatcher authorizes inbound messages and dispatches commands to ops.
// Unauthorized chats and unrecognized commands get no reply: silence on
// rejection means probing gives no confirmation of liveness.
type Dispatcher struct {
	policy    *policy.Policy
	ops       *ops.Registry
	messenger Messenger
	logger    *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(pol *policy.Policy, opsReg *ops.Registry, m Messenger, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		policy:    pol,
		ops:       opsReg,
		messenger: m,
		logger:    logger,
	}
}

// Handle processes an inbound message: authorize, match, execute, reply.
func (d *Dispatcher) Handle(msg InboundMessage) {
	if err := d.policy.Authorize(msg.ChatID, msg.UpdateID, msg.Timestamp); err != nil {
		d.logger.Info("message rejected", "chat_id", msg.ChatID, "error", err)
		return
	}

	// Exact, case-sensitive match on the trimmed text. Anything unrecognized
	// is dropped without a reply.
	op := d.ops.Get(strings.TrimSpace(msg.Text))
	if op == nil {
		return
	}

	id := uuid.New().String()
	d.logger.Info("dispatching command", "id", id, "command", op.Command(), "chat_id", msg.ChatID)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result, err := op.Execute(ctx)
	if err != nil {
		d.logger.Error("op failed", "id", id, "command", op.Command(), "error", err)
		return
	}

	d.reply(msg.ChatID, result)
}

// reply is best-effort: a send failure is logged, never retried, and the
// command's initiator gets no error indication.
func (d *Dispatcher) reply(chatID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	if err := d.messenger.SendReply(ctx, chatID, text); err != nil {
		d.logger.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}
