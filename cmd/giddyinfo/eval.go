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

package main

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zeta1999/libgiddy/cuda/faux"
	"github.com/zeta1999/libgiddy/cuda/intrinsics"
	"github.com/zeta1999/libgiddy/util/builtins"
)

// row is one line of the builtin table: the result of a single operation
// through the faux fallbacks and through the dispatching facade.
type row struct {
	Name  string
	Faux  string
	Intr  string
	Agree bool
}

func newRow(name, fauxResult, intrResult string) row {
	return row{
		Name:  cases.Title(language.English).String(name),
		Faux:  fauxResult,
		Intr:  intrResult,
		Agree: fauxResult == intrResult,
	}
}

// parseValue parses a uint64 in decimal or with a 0x, 0o or 0b prefix and
// checks that it fits in width bits.
func parseValue(s string, width int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	if width < 64 && v>>width != 0 {
		return 0, fmt.Errorf("value %#x does not fit in %d bits", v, width)
	}
	return v, nil
}

func checkWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	default:
		return fmt.Errorf("invalid width %d: must be 8, 16, 32 or 64", width)
	}
}

// evaluate runs every builtin on x and y at the given width.
func evaluate(width int, x, y uint64, withWarp bool) ([]row, error) {
	switch width {
	case 8:
		return evaluateT(uint8(x), uint8(y), withWarp), nil
	case 16:
		return evaluateT(uint16(x), uint16(y), withWarp), nil
	case 32:
		return evaluateT(uint32(x), uint32(y), withWarp), nil
	case 64:
		return evaluateT(x, y, withWarp), nil
	default:
		return nil, checkWidth(width)
	}
}

func evaluateT[T builtins.UnsignedInts](x, y T, withWarp bool) []row {
	digits := builtins.BitWidth[T]() / 4
	hex := func(v T) string { return fmt.Sprintf("0x%0*x", digits, uint64(v)) }
	dec := strconv.Itoa

	rows := []row{
		newRow("population count", dec(faux.PopulationCount(x)), dec(intrinsics.PopulationCount(x))),
		newRow("find first set", dec(faux.FindFirstSet(x)), dec(intrinsics.FindFirstSet(x))),
		newRow("count leading zeros", dec(faux.CountLeadingZeros(x)), dec(intrinsics.CountLeadingZeros(x))),
		newRow("bit reverse", hex(faux.BitReverse(x)), hex(intrinsics.BitReverse(x))),
		newRow("minimum", hex(faux.Minimum(x, y)), hex(intrinsics.Minimum(x, y))),
		newRow("maximum", hex(faux.Maximum(x, y)), hex(intrinsics.Maximum(x, y))),
	}
	if !withWarp {
		return rows
	}

	cond := 0
	if x != 0 {
		cond = 1
	}
	rows = append(rows,
		newRow("warp ballot", hex32(faux.WarpBallot(cond)), hex32(intrinsics.WarpBallot(cond))),
		newRow("all in warp satisfy", dec(faux.AllInWarpSatisfy(cond)), dec(intrinsics.AllInWarpSatisfy(cond))),
		newRow("any in warp satisfies", dec(faux.AnyInWarpSatisfies(cond)), dec(intrinsics.AnyInWarpSatisfies(cond))),
	)
	return rows
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}
