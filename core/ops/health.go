package ops

import "context"

// HealthOp answers a liveness probe.
type HealthOp struct{}

func (h *HealthOp) Command() string     { return "/health" }
func (h *HealthOp) Description() string { return "Check that the agent is alive" }

func (h *HealthOp) Execute(_ context.Context) (string, error) {
	return "Ready!", nil
}
