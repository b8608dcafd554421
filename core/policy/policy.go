package policy

import (
	"fmt"
	"sync"
	"time"
)

const (
	freshnessWindow = 5 * time.Minute
	maxSeenIDs      = 10000
	pruneCount      = 1000
)

// Policy authorizes inbound messages against a fixed chat allowlist, a
// freshness window, and update-id deduplication. The allowlist is the
// authorization gate; the window and dedup exist because the poll offset
// resets to zero on restart, so the backend may replay old updates.
type Policy struct {
	mu        sync.Mutex
	allowed   map[int64]bool
	seen      map[uint64]bool
	seenOrder []uint64
	now       func() time.Time
}

// New creates a Policy that authorizes only the given chat IDs.
func New(chatIDs []int64) *Policy {
	allowed := make(map[int64]bool, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = true
	}
	return &Policy{
		allowed: allowed,
		seen:    make(map[uint64]bool),
		now:     time.Now,
	}
}

// Authorize checks whether a message should be processed.
func (p *Policy) Authorize(chatID int64, updateID uint64, timestamp time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.allowed[chatID] {
		return fmt.Errorf("unauthorized chat: %d", chatID)
	}

	if !timestamp.IsZero() && p.now().Sub(timestamp) > freshnessWindow {
		return fmt.Errorf("stale message: %v old", p.now().Sub(timestamp).Truncate(time.Second))
	}

	if p.seen[updateID] {
		return fmt.Errorf("duplicate update: %d", updateID)
	}

	// Prune oldest entries if at capacity.
	if len(p.seen) >= maxSeenIDs {
		for i := 0; i < pruneCount && i < len(p.seenOrder); i++ {
			delete(p.seen, p.seenOrder[i])
		}
		p.seenOrder = p.seenOrder[pruneCount:]
	}

	p.seen[updateID] = true
	p.seenOrder = append(p.seenOrder, updateID)

	return nil
}
