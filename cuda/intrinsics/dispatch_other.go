//go:build (!amd64 && !arm64) || purego

package intrinsics

func init() {
	// Other architectures, and purego builds, always use the faux loops.
	setFauxMode()
}
