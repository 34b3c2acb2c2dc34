package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteMissingCommand(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-command-xyz")
	if err == nil {
		t.Error("Execute() should fail for a missing command")
	}
}

func TestStderrTail(t *testing.T) {
	if got := stderrTail("  short  "); got != "short" {
		t.Errorf("stderrTail() = %q, want short", got)
	}

	long := strings.Repeat("x", stderrTailBytes*2)
	got := stderrTail(long)
	if len(got) != stderrTailBytes+3 {
		t.Errorf("stderrTail() length = %d, want %d", len(got), stderrTailBytes+3)
	}
	if !strings.HasPrefix(got, "...") {
		t.Errorf("stderrTail() should mark truncation")
	}
}
