package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestWaitForEnterPrintsPrompt(t *testing.T) {
	in := strings.NewReader("\n")
	var out bytes.Buffer
	if err := WaitForEnter(in, &out); err != nil {
		t.Fatalf("WaitForEnter: %v", err)
	}
	if !strings.Contains(out.String(), startPrompt) {
		t.Fatalf("prompt not printed, got %q", out.String())
	}
}

func TestWaitForEnterClosedInput(t *testing.T) {
	var out bytes.Buffer
	if err := WaitForEnter(strings.NewReader(""), &out); err != nil {
		t.Fatalf("WaitForEnter on closed input: %v", err)
	}
}
