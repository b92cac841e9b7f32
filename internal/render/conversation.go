package render

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

type Options struct {
	Title   string // shown in the header, usually the transcript path
	Hit     int    // message id to centre on; -1 shows everything
	Context int    // messages before/after hit to show
	Width   int    // wrap width (0 = no wrap)
	Query   string // search query for keyword highlighting
}

const separator = colorDim + "--------------------------------------------------" + colorReset

// Conversation renders the messages around opts.Hit and returns the content
// and the 0-based output line of the hit header (-1 if no hit).
func Conversation(db *index.DB, opts Options) (string, int, error) {
	if opts.Context == 0 {
		opts.Context = 10
	}
	if opts.Context < 0 {
		opts.Context = 1 << 30
	}

	rows, hitIdx, total, err := db.Window(opts.Hit, opts.Context)
	if err != nil {
		return "", -1, fmt.Errorf("get messages: %w", err)
	}
	if total == 0 {
		return "(empty transcript)", -1, nil
	}

	var b strings.Builder
	hitLine := -1
	lineCount := 0
	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
			lineCount++
		}
	}

	writeLine(fmt.Sprintf("%s--- %s (%d messages) ---%s", colorDim, opts.Title, total, colorReset))

	before := rows[0].ID
	after := total - rows[len(rows)-1].ID - 1
	if before > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages before) ...%s", colorDim, before, colorReset))
	}

	for i, r := range rows {
		if i > 0 {
			writeLine(separator)
		}

		label, color := r.Sender, colorSender
		if r.Kind == parse.KindSystem.String() {
			label, color = parse.SystemLabel, colorSystem
		}
		ts := strings.Replace(r.Ts, "T", " ", 1)

		if i == hitIdx {
			hitLine = lineCount
			writeLine(fmt.Sprintf("%s>> #%d %s > %s <<%s", colorHit, r.ID, label, ts, colorReset))
		} else {
			writeLine(fmt.Sprintf("%s#%d %s >%s %s%s%s", color, r.ID, label, colorReset, colorDim, ts, colorReset))
		}

		text := highlightKeywords(r.Body, opts.Query)
		for _, tl := range strings.Split(indentLines(text, "  "), "\n") {
			writeLine(tl)
		}
		writeLine("")
	}

	if after > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages after) ...%s", colorDim, after, colorReset))
	}

	return b.String(), hitLine, nil
}
