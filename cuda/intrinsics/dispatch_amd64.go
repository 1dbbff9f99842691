// Copyright 2025 libgiddy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !purego

package intrinsics

import "golang.org/x/sys/cpu"

func init() {
	if NoNativeEnv() {
		setFauxMode()
		return
	}

	// Without POPCNT the compiler falls back to a software sequence for
	// bits.OnesCount, which is no better than the faux loops.
	if cpu.X86.HasPOPCNT {
		currentLevel = LevelNative
		currentName = "amd64-popcnt"
		return
	}
	setFauxMode()
}
