package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/index"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []parse.Message {
	ts := func(d, h int) time.Time { return time.Date(2023, 1, d, h, 0, 0, 0, time.UTC) }
	return []parse.Message{
		parse.NewMessage(ts(2, 9), "Alice", "good morning"),
		parse.NewMessage(ts(2, 10), "Bob", "morning! lunch later?"),
		parse.NewNotification(ts(3, 11), "Carol joined"),
		parse.NewMessage(ts(3, 12), "Alice", "lunch at\ntwo"),
		parse.NewMessage(ts(4, 13), "Bob", "ok"),
	}
}

func TestWrapLine(t *testing.T) {
	assert.Equal(t, []string{"abc", "def", "g"}, wrapLine("abcdefg", 3))
	assert.Equal(t, []string{"abcdefg"}, wrapLine("abcdefg", 0))
	assert.Equal(t, []string{""}, wrapLine("", 5))
	// wide runes take two columns
	assert.Equal(t, []string{"午饭", "吧"}, wrapLine("午饭吧", 4))
	// escape sequences take none
	assert.Equal(t, []string{colorDim + "ab", "cd" + colorReset}, wrapLine(colorDim+"abcd"+colorReset, 2))
}

func TestHighlightKeywords(t *testing.T) {
	got := highlightKeywords("Lunch and lunch", "lunch AND")
	assert.Equal(t, colorBoldRed+"Lunch"+colorReset+" and "+colorBoldRed+"lunch"+colorReset, got)
	assert.Equal(t, "plain", highlightKeywords("plain", ""))
}

func TestIndentLines(t *testing.T) {
	assert.Equal(t, "  a\n  b", indentLines("a\nb", "  "))
}

func TestConversation(t *testing.T) {
	db, err := index.Open()
	require.NoError(t, err)
	defer db.Close()
	_, err = index.Load(db, sample())
	require.NoError(t, err)

	out, hitLine, err := Conversation(db, Options{Title: "chat.txt", Hit: 2, Context: 1, Query: "lunch"})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, hitLine, 0)
	assert.Contains(t, lines[hitLine], ">> #2 "+parse.SystemLabel)
	assert.Contains(t, lines[0], "chat.txt (5 messages)")
	assert.Contains(t, out, "(1 messages before)")
	assert.Contains(t, out, "(1 messages after)")
	assert.Contains(t, out, "#1 Bob")
	assert.Contains(t, out, "  "+colorBoldRed+"lunch"+colorReset+" at\n  two")
	assert.NotContains(t, out, "good morning")

	out, hitLine, err = Conversation(db, Options{Hit: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, hitLine)
	assert.Contains(t, out, "good morning")
	assert.NotContains(t, out, "messages before")
}

func TestConversation_Empty(t *testing.T) {
	db, err := index.Open()
	require.NoError(t, err)
	defer db.Close()

	out, hitLine, err := Conversation(db, Options{Hit: 0})
	require.NoError(t, err)
	assert.Equal(t, "(empty transcript)", out)
	assert.Equal(t, -1, hitLine)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 10, 10))
	assert.Equal(t, "█", Bar(1, 100, 10))
	assert.Equal(t, strings.Repeat("█", 5), Bar(5, 10, 10))
	assert.Equal(t, strings.Repeat("█", 10), Bar(10, 10, 10))
}

func TestHeatmap(t *testing.T) {
	out := Heatmap(stats.Heatmap(sample(), stats.Filter{}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	for i, day := range parse.WeekdayOrder {
		assert.Contains(t, lines[i+1], day)
	}
	assert.True(t, strings.HasSuffix(lines[1], "  2"), lines[1])
	assert.True(t, strings.HasSuffix(lines[7], "  0"), lines[7])

	// no messages still draws all seven days
	out = Heatmap(stats.Heatmap(nil, stats.Filter{}))
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 8)
}

func TestHeatLevel(t *testing.T) {
	assert.Equal(t, 0, heatLevel(0, 10))
	assert.Equal(t, 1, heatLevel(1, 10))
	assert.Equal(t, 4, heatLevel(10, 10))
	assert.Equal(t, 0, heatLevel(3, 0))
}

func TestPeakText(t *testing.T) {
	assert.Equal(t, "N/A", PeakText(stats.Peak{}))
	assert.Equal(t, "Monday at 09:00", PeakText(stats.Peak{Available: true, Day: "Monday", Hour: 9}))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, stats.Build(sample(), stats.Filter{}, stats.Options{TopN: 5}), 80)
	out := buf.String()

	for _, want := range []string{
		"Statistics: Overall",
		"Most busy users",
		"Contribution",
		"50.00%",
		"Most common words",
		"January-2023",
		"Activity by weekday",
		"Weekly activity heatmap",
		"Sentiment",
	} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	Report(&buf, stats.Build(sample(), stats.Filter{Sender: "nobody"}, stats.Options{}), 80)
	out = buf.String()
	assert.Contains(t, out, "Statistics: nobody")
	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "Most busy users")
}
