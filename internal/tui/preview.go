package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
)

// reportRenderedMsg is sent when an async report render completes.
type reportRenderedMsg struct {
	label   string
	content string
}

func renderReport(msgs []parse.Message, f stats.Filter, opts stats.Options, width int) string {
	var b strings.Builder
	render.Report(&b, stats.Build(msgs, f, opts), width)
	return b.String()
}

// renderReportCmd builds and renders one entry's report off the update loop.
func renderReportCmd(msgs []parse.Message, e entry, opts stats.Options, width int) tea.Cmd {
	return func() tea.Msg {
		return reportRenderedMsg{
			label:   e.label,
			content: renderReport(msgs, e.filter, opts, width),
		}
	}
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = panel(false)
	return vp
}
