package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	console.Banner("🔎", "linter", "cargo clippy")
	console.Skip("docs", "Cargo.toml")
	console.Pass("clippy", "crates/a")
	console.Fail("clippy", "crates/b", "out", "error: foo")
	console.FailureSummary([]string{"clippy"})

	want := "🔎 Running linter (cargo clippy)...\n" +
		"Skipping docs: Cargo.toml not found (not a project root).\n" +
		"✅ Clippy checks passed in crates/a.\n" +
		"❌ Clippy issues in crates/b:\nout\nerror: foo\n" +
		"\n💥 The following tools failed: clippy\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_SuccessAndInfo(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	console.Info("No modified files found.")
	console.Success("formatting")

	assert.Equal(t, "No modified files found.\n\n🎉 All formatting completed successfully!\n", buf.String())
}

func TestConsole_NoColorHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf, true)

	console.Fail("fmt", ".", "", "")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewConsole_NilWriterPanics(t *testing.T) {
	assert.Panics(t, func() { NewConsole(nil, false) })
}
