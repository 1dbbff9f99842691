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

package faux

import (
	"os"
	"strconv"
)

// WarpSize is the number of threads in a device warp, and the number of
// meaningful bits in a WarpBallot result on the device.
const WarpSize = 32

// strictStubs makes the warp vote stubs panic instead of returning 0.
// Set by init() from GIDDY_FAUX_STRICT.
var strictStubs bool

func init() {
	strictStubs = StrictEnv()
}

// StrictEnv checks if the GIDDY_FAUX_STRICT environment variable is set.
// When set, calling any warp vote stub panics. This is useful for proving
// in tests that host code never depends on a vote result.
func StrictEnv() bool {
	val := os.Getenv("GIDDY_FAUX_STRICT")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func stub(name string) {
	if strictStubs {
		panic("faux: " + name + " called on the host; warp vote results are meaningless outside a warp")
	}
}

// WarpBallot stands in for __ballot. On the device bit i of the result is
// set when thread i of the warp passed a true cond. The host has no warp,
// so it always returns 0.
func WarpBallot(cond int) uint32 {
	stub("WarpBallot")
	return 0
}

// AllInWarpSatisfy stands in for __all. Always returns 0 on the host.
func AllInWarpSatisfy(cond int) int {
	stub("AllInWarpSatisfy")
	return 0
}

// AnyInWarpSatisfies stands in for __any. Always returns 0 on the host.
func AnyInWarpSatisfies(cond int) int {
	stub("AnyInWarpSatisfies")
	return 0
}
