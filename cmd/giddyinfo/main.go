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

// Command giddyinfo prints how device builtins are dispatched on this host
// and evaluates them on a value.
//
// Usage:
//
//	giddyinfo                                 # dispatch level and CPU features
//	giddyinfo -value 0b00010110 -width 8      # evaluate every builtin
//	giddyinfo -value 0xff00 -other 7 -width 16 -features=false
//
// Each builtin is run through both the faux fallbacks and the dispatching
// intrinsics package; any disagreement is flagged and makes the command
// exit with status 2.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/zeta1999/libgiddy/cuda/faux"
	"github.com/zeta1999/libgiddy/cuda/intrinsics"
)

var (
	value    = flag.String("value", "", "Value to evaluate the builtins on (decimal, 0x, 0o or 0b prefix)")
	other    = flag.String("other", "0", "Second operand for minimum and maximum")
	width    = flag.Int("width", 32, "Integer width in bits (8, 16, 32 or 64)")
	features = flag.Bool("features", true, "Print CPU features relevant to dispatch")
)

func main() {
	flag.Parse()

	if err := checkWidth(*width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	printDispatch(os.Stdout)
	if *features {
		fmt.Println()
		switch runtime.GOARCH {
		case "arm64":
			printARM64Features(os.Stdout)
		case "amd64":
			printAMD64Features(os.Stdout)
		}
	}

	if *value == "" {
		return
	}

	x, err := parseValue(*value, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	y, err := parseValue(*other, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -other: %v\n", err)
		os.Exit(1)
	}

	// In strict mode the vote stubs panic, so leave them out of the table.
	rows, err := evaluate(*width, x, y, !faux.StrictEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Builtins for %#x (%d bits):\n", x, *width)
	if !printRows(os.Stdout, rows) {
		fmt.Fprintf(os.Stderr, "Error: faux and %s implementations disagree\n", intrinsics.CurrentLevel())
		os.Exit(2)
	}
}

func printDispatch(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "Dispatch level: %s\n", intrinsics.CurrentLevel())
	fmt.Fprintf(w, "Dispatch name: %s\n", intrinsics.CurrentName())
	fmt.Fprintf(w, "GIDDY_NO_NATIVE: %v\n", intrinsics.NoNativeEnv())
	fmt.Fprintf(w, "GIDDY_FAUX_STRICT: %v\n", faux.StrictEnv())
	fmt.Fprintf(w, "Warp size: %d\n", faux.WarpSize)
}

// printRows writes the table and reports whether every row agreed.
func printRows(w io.Writer, rows []row) bool {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Builtin\tFaux\tIntrinsics\t")
	ok := true
	for _, r := range rows {
		mark := ""
		if !r.Agree {
			mark = "MISMATCH"
			ok = false
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", r.Name, r.Faux, r.Intr, mark)
	}
	tw.Flush()
	return ok
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (CNT, NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasPOPCNT:  %v\n", cpu.X86.HasPOPCNT)
	fmt.Fprintf(w, "  HasBMI1:    %v (TZCNT)\n", cpu.X86.HasBMI1)
	fmt.Fprintf(w, "  HasBMI2:    %v\n", cpu.X86.HasBMI2)
	fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
