package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DranikiRobotics/arc/internal/golden"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NoArgs", nil},
		{"Unknown", []string{"bogus"}},
		{"RecordWithoutOutput", []string{"record", "-funcs", "sin"}},
		{"VerifyWithoutInput", []string{"verify"}},
		{"BadFlag", []string{"digest", "-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCmd(t, tt.args...); !errors.Is(err, errUsage) {
				t.Errorf("run(%q) error = %v, want %v", tt.args, err, errUsage)
			}
		})
	}
}

func TestUnknownFunction(t *testing.T) {
	_, err := runCmd(t, "digest", "-funcs", "sin,nosuch")
	if !errors.Is(err, golden.ErrUnknownFunction) {
		t.Errorf("digest error = %v, want %v", err, golden.ErrUnknownFunction)
	}
}

func TestRecordVerifyDigest(t *testing.T) {
	file := filepath.Join(t.TempDir(), "vectors.l2gv")
	out, err := runCmd(t, "record", "-funcs", "sin,frexpf,jn", "-n", "64", "-seed", "7", "-workers", "2", "-o", file)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(out, "wrote ") {
		t.Errorf("record output = %q", out)
	}

	out, err = runCmd(t, "verify", "-in", file)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.HasPrefix(out, "ok: ") {
		t.Errorf("verify output = %q", out)
	}

	live, err := runCmd(t, "digest", "-funcs", "sin,frexpf,jn", "-n", "64", "-seed", "7")
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	recorded, err := runCmd(t, "digest", "-in", file)
	if err != nil {
		t.Fatalf("digest -in: %v", err)
	}
	if live != recorded {
		t.Errorf("live digest\n%s\ndiffers from recorded digest\n%s", live, recorded)
	}
	if n := strings.Count(live, "\n"); n != 3 {
		t.Errorf("digest printed %d lines, want 3", n)
	}

	other, err := runCmd(t, "digest", "-funcs", "sin,frexpf,jn", "-n", "64", "-seed", "8")
	if err != nil {
		t.Fatal(err)
	}
	if other == live {
		t.Error("digest did not change with the seed")
	}
}

func TestVerifyMissingFile(t *testing.T) {
	if _, err := runCmd(t, "verify", "-in", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("verify of a missing file succeeded")
	}
}

func TestList(t *testing.T) {
	out, err := runCmd(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(golden.Names()) {
		t.Errorf("list printed %d lines, want %d", len(lines), len(golden.Names()))
	}
	if !strings.Contains(out, "remquo       (f64, f64) -> (f64, i32)") {
		t.Errorf("list output missing remquo:\n%s", out)
	}
}
