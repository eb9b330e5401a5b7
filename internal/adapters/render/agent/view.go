// Package agent renders the multi-agent view: system status, execution
// history, and task results. Result text is rendered as markdown so the
// coaching agents' prose reads well in the terminal.
package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fincoach/fincoach-cli/internal/adapters/render/payload"
	"github.com/fincoach/fincoach-cli/internal/domain"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	agent   lipgloss.Style
	detail  lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	failed  lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		agent:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func RenderStatus(status *domain.SystemStatus, history *domain.AgentHistory, errMessage string) string {
	s := newStyles()
	lines := []string{s.title.Render("Multi-Agent System")}

	if errMessage != "" {
		lines = append(lines, s.failed.Render("Error: "+errMessage))
	}

	if status == nil {
		lines = append(lines, s.empty.Render("System status unavailable."))
	} else {
		lines = append(lines,
			s.header.Render(fmt.Sprintf("status: %s, agents: %d", status.Status, status.TotalAgents)),
		)
		for _, name := range status.RegisteredAgents {
			lines = append(lines, "  "+s.agent.Render(name))
		}
		if len(status.CollaborationRules) > 0 {
			lines = append(lines, s.detail.Render("collaboration: "+strings.Join(status.CollaborationRules, ", ")))
		}
	}

	lines = append(lines, s.section.Render(renderHistory(history, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderHistory(history *domain.AgentHistory) string {
	s := newStyles()
	return renderHistory(history, s)
}

func renderHistory(history *domain.AgentHistory, s styles) string {
	lines := []string{s.title.Render("Recent Executions")}

	if history == nil || len(history.History) == 0 {
		lines = append(lines, s.empty.Render("  No executions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range history.History {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			statusBadge(record.Status, s),
			s.detail.Render(string(record.TaskType)),
			s.header.Render(record.Timestamp.Format("2006-01-02 15:04")),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusBadge(status domain.TaskStatus, s styles) string {
	switch status {
	case domain.TaskCompleted:
		return s.done.Render("ok")
	case domain.TaskFailed:
		return s.failed.Render("fail")
	default:
		return s.pending.Render("...")
	}
}

// RenderResult shows a task's raw outcome. When the payload carries a
// message it is rendered as markdown; otherwise the payload is shown as
// indented JSON.
func RenderResult(taskType domain.TaskType, raw json.RawMessage) string {
	s := newStyles()
	heading := s.title.Render(fmt.Sprintf("Task %s", taskType))

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		markdown := envelope.Message
		if envelope.Status != "" {
			markdown = fmt.Sprintf("**%s**: %s", envelope.Status, envelope.Message)
		}
		if rendered, err := glamour.Render(markdown, "dark"); err == nil {
			return heading + "\n" + strings.TrimRight(rendered, "\n")
		}
	}

	return heading + "\n" + payload.Pretty(raw)
}
