package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

const (
	defaultWidth = 80
	labelWidth   = 16
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	heatShades = []string{"  ", "░░", "▒▒", "▓▓", "██"}
	heatColors = []lipgloss.Color{"238", "22", "28", "34", "46"}
)

// Report writes every section of r as plain text tables and bar charts.
func Report(w io.Writer, r stats.Report, width int) {
	if width <= 0 {
		width = defaultWidth
	}
	barWidth := max(width-labelWidth-12, 10)

	heading(w, "Statistics: "+r.Filter)
	basicTable(w, r.Basic)

	if len(r.BusyUsers) > 0 {
		heading(w, "Most busy users")
		Bars(w, r.BusyUsers, identity, barWidth)
	}
	if len(r.Contributions) > 0 {
		heading(w, "Contribution")
		table := newTable(w, "Sender", "Share")
		for _, s := range r.Contributions {
			table.Append([]string{s.Sender, fmt.Sprintf("%.2f%%", s.Percent)})
		}
		table.Render()
	}

	heading(w, "Most common words")
	frequencyTable(w, "Word", r.CommonWords)

	heading(w, "Emoji")
	if len(r.Emoji) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		frequencyTable(w, "Emoji", r.Emoji.Top(10))
	}

	heading(w, "Monthly timeline")
	Bars(w, r.MonthlyTimeline, stats.YearMonth.String, barWidth)

	heading(w, "Daily timeline")
	fmt.Fprintf(w, "  %d days, busiest: %s\n", len(r.Timeline), busiest(r.Timeline))

	heading(w, "Activity by hour")
	Bars(w, r.DailyActivity, hourLabel, barWidth)

	heading(w, "Activity by weekday")
	Bars(w, r.WeeklyActivity, identity, barWidth)

	heading(w, "Weekly activity heatmap")
	fmt.Fprint(w, Heatmap(r.Heatmap))

	heading(w, "Most active")
	fmt.Fprintf(w, "  %s\n", PeakText(r.MostActive))

	heading(w, "Sentiment")
	sentiment(w, r.Sentiment, barWidth)

	if r.Language != nil {
		heading(w, "Language")
		fmt.Fprintf(w, "  %s (%s), confidence %.2f\n", r.Language.Name, r.Language.Code, r.Language.Confidence)
	}
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", styleHeading.Render(title))
}

func identity(s string) string { return s }

func hourLabel(h int) string { return fmt.Sprintf("%02d:00", h) }

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func basicTable(w io.Writer, b stats.Basic) {
	table := newTable(w, "Messages", "Words", "Media", "Links")
	table.Append([]string{
		strconv.Itoa(b.Messages),
		strconv.Itoa(b.Words),
		strconv.Itoa(b.Media),
		strconv.Itoa(b.Links),
	})
	table.Render()
}

func frequencyTable(w io.Writer, keyHeader string, freq stats.Frequency[string]) {
	table := newTable(w, keyHeader, "Count")
	for _, c := range freq {
		table.Append([]string{c.Key, strconv.Itoa(c.Count)})
	}
	table.Render()
}

// Bar is a horizontal bar of n relative to peak, at most width cells wide.
// Any non-zero count gets at least one cell.
func Bar(n, peak, width int) string {
	if n <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	cells := max(n*width/peak, 1)
	return strings.Repeat("█", min(cells, width))
}

// Bars draws one labelled bar per bucket.
func Bars[S ~[]stats.Count[K], K comparable](w io.Writer, counts S, label func(K) string, width int) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "  (no messages)")
		return
	}
	peak := 0
	for _, c := range counts {
		peak = max(peak, c.Count)
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s %s %d\n",
			padRight(label(c.Key), labelWidth),
			styleBar.Render(Bar(c.Count, peak, width)),
			c.Count)
	}
}

func busiest(series stats.Series[string]) string {
	best := -1
	for i, c := range series {
		if best < 0 || c.Count > series[best].Count {
			best = i
		}
	}
	if best < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%s (%d)", series[best].Key, series[best].Count)
}

// Heatmap draws the weekday x hour table as shaded cells, one row per
// weekday, with the row total at the end.
func Heatmap(t stats.Table[string, int]) string {
	var b strings.Builder
	rowLabel := 0
	for _, r := range t.Rows {
		rowLabel = max(rowLabel, runewidth.StringWidth(r))
	}

	b.WriteString("  " + strings.Repeat(" ", rowLabel))
	for _, c := range t.Cols {
		fmt.Fprintf(&b, " %2d", c)
	}
	b.WriteString("\n")

	peak := t.Max()
	for i, r := range t.Rows {
		b.WriteString("  " + runewidth.FillRight(r, rowLabel))
		total := 0
		for _, n := range t.Cells[i] {
			level := heatLevel(n, peak)
			b.WriteString(" " + lipgloss.NewStyle().Foreground(heatColors[level]).Render(heatShades[level]))
			total += n
		}
		fmt.Fprintf(&b, "  %d\n", total)
	}
	return b.String()
}

func heatLevel(n, peak int) int {
	if n <= 0 || peak <= 0 {
		return 0
	}
	top := len(heatShades) - 1
	return max(1, (n*top+peak-1)/peak)
}

// PeakText describes the busiest weekday and hour, or "N/A".
func PeakText(p stats.Peak) string {
	if !p.Available {
		return "N/A"
	}
	return fmt.Sprintf("%s at %s", p.Day, hourLabel(p.Hour))
}

func sentiment(w io.Writer, h stats.Histogram, width int) {
	if h.N == 0 {
		fmt.Fprintln(w, "  (no messages)")
		return
	}
	counts := make(stats.Series[string], len(h.Counts))
	for i, n := range h.Counts {
		counts[i] = stats.Count[string]{Key: fmt.Sprintf("%+.1f..%+.1f", h.Edges[i], h.Edges[i+1]), Count: n}
	}
	Bars(w, counts, identity, width)
	fmt.Fprintf(w, "  mean %+.2f over %d messages\n", h.Mean, h.N)
}
