package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorSender  = "\033[1;34m" // bold blue
	colorSystem  = "\033[2;35m" // dim magenta for notifications
	colorDim     = "\033[2m"
	colorHit     = "\033[43m"   // yellow background
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
)

// ftsOperators are query words that are never highlighted.
var ftsOperators = map[string]bool{
	"AND": true, "OR": true, "NOT": true, "NEAR": true,
}

// highlightKeywords wraps case-insensitive matches of query terms in bold red.
func highlightKeywords(text, query string) string {
	for _, term := range strings.Fields(query) {
		term = strings.Trim(term, `"`)
		if term == "" || ftsOperators[term] {
			continue
		}
		lower := strings.ToLower(term)
		var b strings.Builder
		rest := text
		for {
			idx := strings.Index(strings.ToLower(rest), lower)
			// ToLower can change byte lengths; only trust ASCII-stable hits
			if idx < 0 || idx+len(term) > len(rest) || !strings.EqualFold(rest[idx:idx+len(term)], term) {
				break
			}
			b.WriteString(rest[:idx])
			b.WriteString(colorBoldRed + rest[idx:idx+len(term)] + colorReset)
			rest = rest[idx+len(term):]
		}
		b.WriteString(rest)
		text = b.String()
	}
	return text
}

func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// wrapLine breaks line into pieces of at most maxWidth visible columns.
// ANSI escape sequences take no width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var out []string
	var cur strings.Builder
	width := 0

	for i := 0; i < len(line); {
		if line[i] == '\033' && i+1 < len(line) && line[i+1] == '[' {
			j := strings.IndexByte(line[i:], 'm')
			if j < 0 {
				j = len(line) - i - 1
			}
			cur.WriteString(line[i : i+j+1])
			i += j + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth && width > 0 {
			out = append(out, cur.String())
			cur.Reset()
			width = 0
		}
		cur.WriteRune(r)
		width += rw
		i += size
	}
	if cur.Len() > 0 || len(out) == 0 {
		out = append(out, cur.String())
	}
	return out
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
