// Package payload renders opaque backend payloads. The analytics and
// prediction shapes belong to the backend; the client pretty-prints them
// without interpreting their fields.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	missingStyle = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// Section renders one named sub-result. A nil payload renders as absent so
// partial aggregates still produce output for every expected field.
func Section(name string, raw json.RawMessage) string {
	heading := headingStyle.Render(title(name))
	if len(raw) == 0 {
		return heading + "\n" + missingStyle.Render("  (unavailable)")
	}

	return heading + "\n" + indent(Pretty(raw))
}

// Pretty re-indents a raw JSON payload, falling back to the raw bytes when
// the payload is not valid JSON.
func Pretty(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// ErrorBanner renders the aggregate error line shown above partial views.
func ErrorBanner(message string) string {
	return errorStyle.Render("Error: " + message)
}

func title(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("  %s", line)
	}
	return strings.Join(lines, "\n")
}
