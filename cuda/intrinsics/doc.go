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

// Package intrinsics is the target-agnostic entry point for device-style
// builtins. Shared code calls intrinsics.PopulationCount, intrinsics.BitReverse
// and friends once; which implementation runs is decided when the package is
// built and initialized, never at the call site.
//
// # Dispatch
//
// Two levels exist:
//   - LevelNative: math/bits, which the compiler lowers to hardware
//     instructions (POPCNT/LZCNT/TZCNT on amd64, CNT/CLZ/RBIT on arm64).
//   - LevelFaux: the portable loops from package faux.
//
// The level is chosen in init():
//   - amd64 with POPCNT, or arm64 with ASIMD: LevelNative
//   - any other GOARCH, or built with -tags purego: LevelFaux
//   - GIDDY_NO_NATIVE=1 in the environment forces LevelFaux at runtime
//
// Both levels return identical results for every input. Warp vote builtins
// always use the faux stubs since no Go target runs inside a warp.
//
// # Lanes
//
// The *Lanes functions apply an operation element-wise over slices, the way
// a device kernel applies it across the threads of a block.
package intrinsics
