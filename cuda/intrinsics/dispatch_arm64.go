//go:build arm64 && !purego

package intrinsics

import "golang.org/x/sys/cpu"

func init() {
	if NoNativeEnv() {
		setFauxMode()
		return
	}

	// ARMv8-A always has ASIMD (CNT) as well as CLZ and RBIT in the base ISA.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNative
		currentName = "arm64-asimd"
		return
	}
	setFauxMode()
}
