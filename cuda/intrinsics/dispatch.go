package intrinsics

import (
	"os"
	"strconv"
)

// Level represents which implementation of the builtins is in use.
type Level int

const (
	// LevelFaux indicates the portable pure Go loops from package faux.
	LevelFaux Level = iota

	// LevelNative indicates math/bits lowered to hardware instructions.
	LevelNative
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelFaux:
		return "faux"
	case LevelNative:
		return "native"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentName is a human-readable name of the current target,
// for example "amd64-popcnt". Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the implementation level being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current target.
// For example: "amd64-popcnt", "arm64-asimd", "faux".
func CurrentName() string {
	return currentName
}

// NoNativeEnv checks if the GIDDY_NO_NATIVE environment variable is set.
// When set, the faux fallbacks are used regardless of CPU capabilities.
// This is useful for exercising the host fallbacks on machines that would
// otherwise never run them.
func NoNativeEnv() bool {
	val := os.Getenv("GIDDY_NO_NATIVE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setFauxMode() {
	currentLevel = LevelFaux
	currentName = "faux"
}
