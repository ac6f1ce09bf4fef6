package debug

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestDebugOutputDisabled(t *testing.T) {
	buf := captureLog(t)

	DebugHeader(false)
	DebugOutput(false, "value %d", 42)
	DebugTiming(false, "parse")()
	DebugFooter(false)

	if buf.Len() != 0 {
		t.Errorf("disabled debug wrote %q", buf.String())
	}
}

func TestDebugOutputEnabled(t *testing.T) {
	buf := captureLog(t)

	DebugHeader(true)
	DebugOutput(true, "value %d", 42)
	done := DebugTiming(true, "parse")
	done()
	DebugFooter(true)

	out := buf.String()
	for _, want := range []string{"DEBUG START", "value 42", "Starting: parse", "Completed: parse", "DEBUG END"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugTokens(t *testing.T) {
	buf := captureLog(t)

	DebugTokens(false, "Tokens", []string{"forty", "two"})
	if buf.Len() != 0 {
		t.Fatalf("disabled token trace wrote %q", buf.String())
	}

	DebugTokens(true, "Tokens", []string{"forty", "two"})
	DebugTokens(true, "Empty", nil)

	out := buf.String()
	for _, want := range []string{`Tokens (2): [0]"forty" [1]"two"`, "Empty (0): "} {
		if !strings.Contains(out, want) {
			t.Errorf("token trace missing %q:\n%s", want, out)
		}
	}
}
