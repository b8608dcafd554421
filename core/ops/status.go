package ops

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

var startTime = time.Now()

// StatusOp reports agent uptime and host resource usage.
type StatusOp struct{}

func (s *StatusOp) Command() string     { return "/status" }
func (s *StatusOp) Description() string { return "Show agent and host status" }

func (s *StatusOp) Execute(_ context.Context) (string, error) {
	uptime := time.Since(startTime).Truncate(time.Second)

	var b strings.Builder
	fmt.Fprintf(&b, "Status: OK\nUptime: %s\nGo: %s\nGoroutines: %d",
		uptime, runtime.Version(), runtime.NumGoroutine())

	// Host figures are best-effort; a probe failure just drops the line.
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		fmt.Fprintf(&b, "\nCPU: %.1f%%", pct[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		fmt.Fprintf(&b, "\nMemory: %.1f%%", vm.UsedPercent)
	}
	if du, err := disk.Usage("/"); err == nil && du != nil {
		fmt.Fprintf(&b, "\nDisk: %.1f%%", du.UsedPercent)
	}

	return b.String(), nil
}
