//go:build amd64

package clmul

import "golang.org/x/sys/cpu"

func init() {
	hasPCLMULQDQ = cpu.X86.HasPCLMULQDQ
	hasSSE2 = cpu.X86.HasSSE2
	hasSSE41 = cpu.X86.HasSSE41
	initCapabilities()
}
