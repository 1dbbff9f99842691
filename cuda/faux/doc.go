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

// Package faux provides host-side stand-ins for CUDA device builtins.
//
// Code shared between device kernels and the host calls builtins such as
// __popc, __ffs, __clz, __brev and the warp vote functions. This package
// gives those calls semantically-valid, possibly slow, pure Go bodies so the
// shared code builds and runs on any GOARCH. They are expected to be
// compiled far more often than they are executed.
//
// # Operations
//
//   - PopulationCount: number of set bits (__popc, __popcll)
//   - FindFirstSet: 1-based index of the lowest set bit, 0 for zero (__ffs, __ffsll)
//   - CountLeadingZeros: leading zero bits, full width for zero (__clz, __clzll)
//   - BitReverse: bit order reversed within the type's width (__brev, __brevll)
//   - Minimum, Maximum: two-value min and max (min, max)
//   - WarpBallot, AllInWarpSatisfy, AnyInWarpSatisfies: warp vote stubs
//
// # Warp vote stubs
//
// A host thread is not part of a warp, so the vote functions have no
// meaningful answer. They return 0 unconditionally. Results that depend on
// them are wrong on the host; callers must only reach them from code paths
// that never execute there. Setting GIDDY_FAUX_STRICT=1 turns every stub
// call into a panic, which makes such paths easy to find in tests.
//
// Callers that want the fastest implementation available on the running
// CPU should use package intrinsics, which dispatches between these
// fallbacks and compiler intrinsics.
package faux
