package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		width   int
		want    uint64
		wantErr bool
	}{
		{"decimal", "22", 8, 22, false},
		{"hex", "0xff", 8, 0xff, false},
		{"binary", "0b00010110", 8, 0x16, false},
		{"octal", "0o17", 16, 15, false},
		{"max64", "0xffffffffffffffff", 64, 0xffffffffffffffff, false},
		{"too_wide", "0x100", 8, 0, true},
		{"negative", "-1", 32, 0, true},
		{"garbage", "abc", 32, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValue(tt.input, tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue(%q, %d): err = %v, wantErr %v", tt.input, tt.width, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseValue(%q, %d): got %#x, want %#x", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestCheckWidth(t *testing.T) {
	for _, w := range []int{8, 16, 32, 64} {
		if err := checkWidth(w); err != nil {
			t.Errorf("width %d: unexpected error %v", w, err)
		}
	}
	for _, w := range []int{0, 1, 24, 128} {
		if err := checkWidth(w); err == nil {
			t.Errorf("width %d: expected error", w)
		}
	}
	if _, err := evaluate(24, 0, 0, false); err == nil {
		t.Error("evaluate(24): expected error")
	}
}

func TestEvaluate(t *testing.T) {
	rows, err := evaluate(8, 0b00010110, 0x40, true)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"Population Count":      "3",
		"Find First Set":        "2",
		"Count Leading Zeros":   "3",
		"Bit Reverse":           "0x68",
		"Minimum":               "0x16",
		"Maximum":               "0x40",
		"Warp Ballot":           "0x00000000",
		"All In Warp Satisfy":   "0",
		"Any In Warp Satisfies": "0",
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for _, r := range rows {
		w, ok := want[r.Name]
		if !ok {
			t.Errorf("unexpected row %q", r.Name)
			continue
		}
		if r.Faux != w {
			t.Errorf("%s: faux got %s, want %s", r.Name, r.Faux, w)
		}
		if !r.Agree {
			t.Errorf("%s: faux %s disagrees with intrinsics %s", r.Name, r.Faux, r.Intr)
		}
	}
}

func TestEvaluateWithoutWarp(t *testing.T) {
	rows, err := evaluate(64, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if strings.Contains(r.Name, "Warp") {
			t.Errorf("unexpected warp row %q", r.Name)
		}
	}
	if rows[3].Faux != "0x0000000000000000" {
		t.Errorf("Bit Reverse of 0: got %s", rows[3].Faux)
	}
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	ok := printRows(&buf, []row{
		newRow("population count", "3", "3"),
		newRow("bit reverse", "0x68", "0x16"),
	})
	if ok {
		t.Error("printRows reported agreement for a mismatching row")
	}
	out := buf.String()
	if !strings.Contains(out, "Population Count") || !strings.Contains(out, "MISMATCH") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestPrintDispatch(t *testing.T) {
	var buf bytes.Buffer
	printDispatch(&buf)
	for _, want := range []string{"GOARCH:", "Dispatch level:", "Warp size: 32"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}
