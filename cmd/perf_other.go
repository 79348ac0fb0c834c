//go:build !linux

package cmd

import "fmt"

func countInstructions(f func() error) error {
	fmt.Println("perf counters are only available on linux")
	return f()
}
