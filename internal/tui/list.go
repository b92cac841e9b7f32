package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/chat-analyzer/internal/render"
)

// linesPerItem is the number of terminal lines each entry occupies.
const linesPerItem = 2

// renderList renders the left panel: the entry list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return styleMuted.
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No senders")
	}

	total := 0
	if len(m.entries) > 0 {
		total = m.entries[0].count
	}

	var lines []string
	for i, e := range m.visible {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatEntry(e, total, width, i == m.cursor)...)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// formatEntry formats one entry as two lines:
//
//	line 1: [>] label
//	line 2:     count and share bar (dimmed)
func formatEntry(e entry, total, width int, selected bool) []string {
	style := styleEntry
	switch {
	case e.filter.System:
		style = styleEntrySystem
	case e.filter.Sender == "":
		style = styleEntryOverall
	}

	label := runewidth.Truncate(e.label, max(width-2, 0), "…")
	line1 := "  " + style.Render(label)
	if selected {
		line1 = styleEntrySelected.Render("> " + label)
	}

	stat := fmt.Sprintf("%d msgs", e.count)
	barW := max(width-4-runewidth.StringWidth(stat)-1, 0)
	line2 := "    " + styleMuted.Render(stat+" "+render.Bar(e.count, total, barW))

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := max(listHeight/linesPerItem, 1)
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
