package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
)

// entry is one selectable row: the whole chat, one sender, or the group
// notifications.
type entry struct {
	label  string
	filter stats.Filter
	count  int
}

type model struct {
	msgs        []parse.Message
	opts        stats.Options
	entries     []entry
	visible     []entry
	query       string
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewKey  string // label of the report on screen
	content     string
	width       int
	height      int
	ready       bool
	quitting    bool
	chosen      *entry
}

func buildEntries(msgs []parse.Message) []entry {
	entries := []entry{{label: stats.Filter{}.String(), count: len(msgs)}}
	for _, c := range stats.BusyUsers(msgs, 0) {
		entries = append(entries, entry{label: c.Key, filter: stats.Filter{Sender: c.Key}, count: c.Count})
	}
	system := stats.Filter{System: true}
	if n := len(system.Apply(msgs)); n > 0 {
		entries = append(entries, entry{label: system.String(), filter: system, count: n})
	}
	return entries
}

func newModel(msgs []parse.Message, opts stats.Options) model {
	ti := textinput.New()
	ti.Placeholder = "Filter senders..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleFilter
	ti.TextStyle = styleFilter
	ti.CharLimit = 256

	entries := buildEntries(msgs)
	return model{
		msgs:        msgs,
		opts:        opts,
		entries:     entries,
		visible:     entries,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
}

// Run starts the sender browser and blocks until it exits. If the user
// picks an entry with Enter, that entry's report is copied to the clipboard.
func Run(msgs []parse.Message, opts stats.Options, out io.Writer) error {
	m := newModel(msgs, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.chosen != nil {
		return copyReport(fm.reportText(*fm.chosen), fm.chosen.label, out)
	}
	return nil
}

// copyReport puts the plain-text report on the clipboard, or prints it when
// no clipboard is available.
func copyReport(report, label string, out io.Writer) error {
	plain := ansi.Strip(report)
	if err := clipboard.WriteAll(plain); err != nil {
		_, err := io.WriteString(out, plain)
		return err
	}
	_, err := fmt.Fprintf(out, "Copied %s report to clipboard\n", label)
	return err
}

func (m model) reportText(e entry) string {
	if e.label == m.previewKey && m.content != "" {
		return m.content
	}
	return renderReport(m.msgs, e.filter, m.opts, 0)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCurrentReport())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewKey = ""
		return m, m.loadCurrentReport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Copy):
			if e, ok := m.current(); ok {
				m.chosen = &e
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Prev):
			return m, m.moveTo(m.cursor - 1)

		case key.Matches(msg, keys.Next):
			return m, m.moveTo(m.cursor + 1)

		case key.Matches(msg, keys.First):
			return m, m.moveTo(0)

		case key.Matches(msg, keys.Last):
			return m, m.moveTo(len(m.visible) - 1)

		case key.Matches(msg, keys.ScrollUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.ScrollDown):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if q := m.filterInput.Value(); q != m.query {
			m.query = q
			m.applyFilter()
			cmds = append(cmds, m.loadCurrentReport())
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.visible) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			maxOffset := max(len(m.visible)-m.panelHeight()/linesPerItem, 0)
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				return m, m.loadCurrentReport()
			}
			return m, nil

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			return m, vpCmd
		}
		return m, nil

	case reportRenderedMsg:
		// drop reports for an entry that is no longer selected
		if e, ok := m.current(); !ok || e.label != msg.label || msg.label == m.previewKey {
			return m, nil
		}
		m.content = msg.content
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		m.previewKey = msg.label
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m *model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.query))
	m.visible = lo.Filter(m.entries, func(e entry, _ int) bool {
		return q == "" || strings.Contains(strings.ToLower(e.label), q)
	})
	m.cursor = 0
	m.listOffset = 0
	if len(m.visible) == 0 {
		m.preview.SetContent("")
		m.previewKey = ""
		m.content = ""
	}
}

func (m model) current() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return entry{}, false
	}
	return m.visible[m.cursor], true
}

// moveTo selects entry i if it exists and is not already selected.
func (m *model) moveTo(i int) tea.Cmd {
	if i < 0 || i >= len(m.visible) || i == m.cursor {
		return nil
	}
	m.cursor = i
	m.adjustListScroll(m.panelHeight())
	return m.loadCurrentReport()
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	listPanel := panel(false).
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := panel(true).
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)
	return lipgloss.JoinVertical(lipgloss.Left, m.filterInput.View(), panels, m.statusBar())
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	// 30% for the list, minus border padding
	return max(m.width*30/100-4, 20)
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 70
	}
	return max(m.width*70/100-4, 20)
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	return max(m.height-6, 5)
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + m.panelHeight() - 1
	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY/linesPerItem
	}
	// col 0 = border, 1..lw = content, lw+1 = border
	if x > lw+2 {
		return regionPreview, -1
	}
	return regionNone, -1
}

func (m model) statusBar() string {
	parts := []string{fmt.Sprintf("%d/%d entries", len(m.visible), len(m.entries))}
	for _, b := range []key.Binding{keys.Prev, keys.Next, keys.ScrollUp, keys.ScrollDown, keys.Copy, keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadCurrentReport() tea.Cmd {
	e, ok := m.current()
	if !ok || e.label == m.previewKey {
		return nil
	}
	return renderReportCmd(m.msgs, e, m.opts, m.previewWidth())
}
