package ops

import (
	"context"
	"log/slog"
	"net"
)

// Waker broadcasts a Wake-on-LAN magic packet for a hardware address.
type Waker interface {
	Send(mac net.HardwareAddr) error
}

// WakeOp broadcasts a magic packet to the configured target. The reply
// confirms the attempt was issued, not that the target actually woke, so a
// failed send is logged but does not change the result.
type WakeOp struct {
	Waker  Waker
	Target net.HardwareAddr
	Logger *slog.Logger
}

func (w *WakeOp) Command() string     { return "/wake" }
func (w *WakeOp) Description() string { return "Wake the target machine" }

func (w *WakeOp) Execute(_ context.Context) (string, error) {
	if err := w.Waker.Send(w.Target); err != nil {
		w.Logger.Error("wake packet send failed", "target", w.Target.String(), "error", err)
	} else {
		w.Logger.Info("wake packet sent", "target", w.Target.String())
	}
	return "Success!", nil
}
