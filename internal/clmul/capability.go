package clmul

import "os"

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// available is true when this host qualifies for the folding engine.
	available bool

	// CPU feature flags (set by platform-specific init)
	hasPCLMULQDQ bool // x86-64 carry-less multiply
	hasSSE2      bool // x86-64 baseline 128-bit vectors
	hasSSE41     bool // x86-64 extract/insert lane ops
	hasPMULL     bool // ARM64 polynomial multiply
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	// FASTCRC32_NOCLMUL forces the scalar engine, mainly so the
	// fallback path can be exercised on capable hosts.
	if os.Getenv("FASTCRC32_NOCLMUL") != "" {
		available = false
		return
	}
	available = (hasPCLMULQDQ && hasSSE2 && hasSSE41) || hasPMULL
}

// Available reports whether the folding engine may be constructed on
// this host. A false result is not an error: callers fall back to the
// scalar engine.
func Available() bool {
	return available
}
