package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info("should be suppressed")
	assert.Empty(t, buf.String())

	l.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestLoggerIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf})

	l.Error("decode failed", String("stage", "dwt"), Int("errors", 3), Err(assertError{"boom"}))

	out := buf.String()
	assert.Contains(t, out, "stage=dwt")
	assert.Contains(t, out, "errors=3")
	assert.Contains(t, out, "error=boom")
}

func TestWithComponentPrefixesLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf}).WithComponent("embedder")

	l.Info("starting")
	assert.True(t, strings.Contains(buf.String(), "[embedder]"))
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "nonsense", Output: &buf})
	l.Debug("hidden")
	l.Info("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
