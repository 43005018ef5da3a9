//go:build !amd64 && !arm64

package clmul

func init() {
	// No carry-less multiply on this target; stay on the scalar engine.
	initCapabilities()
}
