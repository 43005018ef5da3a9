//go:build arm64

package clmul

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// Feature detection is unreliable on darwin; every Apple Silicon
	// core has PMULL.
	hasPMULL = cpu.ARM64.HasPMULL || runtime.GOOS == "darwin"
	initCapabilities()
}
