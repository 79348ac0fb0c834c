//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// countInstructions runs f under a hardware instruction counter, running it uncounted when perf events are
// unavailable to this process
func countInstructions(f func() error) (err error) {
	var (
		ran  bool
		fErr error
	)
	pv, err := perf.CPUInstructions(func() error {
		ran = true
		fErr = f()
		return fErr
	})
	if !ran {
		fmt.Printf("perf counters unavailable: %v\n", err)
		return f()
	}
	if fErr != nil {
		return fErr
	}
	if err != nil {
		fmt.Printf("perf counters unavailable: %v\n", err)
		return nil
	}
	fmt.Printf("CPU instructions = %d, time enabled = %d ns, time running = %d ns\n",
		pv.Value, pv.TimeEnabled, pv.TimeRunning)
	return
}
