package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RenderBanner renders the line printed before a run, e.g.
// "🔎 Running linter (cargo clippy)...".
func RenderBanner(st Styles, icon, noun, command string) string {
	if command == "" {
		return st.Info.Render(fmt.Sprintf("%s Running %s...", icon, noun))
	}
	return st.Info.Render(fmt.Sprintf("%s Running %s (%s)...", icon, noun, command))
}

// RenderSkip renders the line for a directory without a manifest.
func RenderSkip(st Styles, dir, marker string) string {
	return st.Info.Render(fmt.Sprintf("Skipping %s: %s not found (not a project root).", dir, marker))
}

// RenderPass renders the line for a tool that succeeded in dir.
func RenderPass(st Styles, name, dir string) string {
	return st.Success.Render(fmt.Sprintf("✅ %s checks passed in %s.", Capitalize(name), dir))
}

// RenderFail renders the header and captured output for a tool that failed
// in dir. Stderr is omitted when empty.
func RenderFail(st Styles, name, dir, stdout, stderr string) string {
	lines := []string{
		st.Failure.Render(fmt.Sprintf("❌ %s issues in %s:", Capitalize(name), dir)),
		stdout,
	}
	if stderr != "" {
		lines = append(lines, stderr)
	}
	return strings.Join(lines, "\n")
}

// RenderFailureSummary renders the consolidated list of failed tools.
func RenderFailureSummary(st Styles, failed []string) string {
	return "\n" + st.Failure.Render(fmt.Sprintf("💥 The following tools failed: %s", strings.Join(failed, ", ")))
}

// RenderSuccess renders the final banner naming the completed action.
func RenderSuccess(st Styles, action string) string {
	return "\n" + st.Success.Render(fmt.Sprintf("🎉 All %s completed successfully!", action))
}

// RenderInfo renders a neutral informational line.
func RenderInfo(st Styles, msg string) string {
	return st.Info.Render(msg)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
