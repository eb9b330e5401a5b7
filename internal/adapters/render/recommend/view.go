// Package recommend renders recommendation payloads. Each recommendation's
// title and description are composed into a markdown document so the
// advisory prose reads well in the terminal.
package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
)

type recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type listPayload struct {
	TotalRecommendations int              `json:"total_recommendations"`
	Recommendations      []recommendation `json:"recommendations"`
}

// Render turns a personalized or per-category payload into terminal
// output, falling back to pretty JSON when the shape is unfamiliar.
func Render(heading string, raw json.RawMessage) string {
	var list listPayload
	if err := json.Unmarshal(raw, &list); err != nil || len(list.Recommendations) == 0 {
		return payload.Section(heading, raw)
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", heading)
	for _, rec := range list.Recommendations {
		title := rec.Title
		if title == "" {
			title = "Recommendation"
		}
		if rec.Category != "" {
			title = fmt.Sprintf("%s (%s)", title, rec.Category)
		}
		fmt.Fprintf(&doc, "## %s\n\n%s\n\n", title, rec.Description)
	}

	rendered, err := glamour.Render(doc.String(), "dark")
	if err != nil {
		return payload.Section(heading, raw)
	}
	return strings.TrimRight(rendered, "\n")
}
