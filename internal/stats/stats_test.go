package stats

import (
	"testing"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2023-01-02 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2023, 1, day, hour, minute, 0, 0, time.UTC)
}

func sample() []parse.Message {
	return []parse.Message{
		parse.NewMessage(at(2, 9, 0), "Alice", "good morning 😀"),
		parse.NewMessage(at(2, 9, 5), "Bob", "morning https://example.com"),
		parse.NewNotification(at(2, 9, 6), "Carol joined"),
		parse.NewMessage(at(3, 21, 0), "Alice", "<Media omitted>"),
		parse.NewMessage(at(4, 21, 30), "Alice", "good night 👍🏽 😀"),
		parse.NewMessage(at(8, 9, 0), "Bob", "sunday is boring"),
	}
}

func TestFilter(t *testing.T) {
	msgs := sample()
	assert.Len(t, Filter{}.Apply(msgs), 6)
	assert.Len(t, Filter{Sender: "Alice"}.Apply(msgs), 3)
	assert.Len(t, Filter{System: true}.Apply(msgs), 1)
	// notifications never match a sender name, not even the display label
	assert.Empty(t, Filter{Sender: parse.SystemLabel}.Apply(msgs))

	assert.Equal(t, "Overall", Filter{}.String())
	assert.Equal(t, "Bob", Filter{Sender: "Bob"}.String())
	assert.Equal(t, parse.SystemLabel, Filter{System: true}.String())
}

func TestCountBy(t *testing.T) {
	msgs := sample()

	freq := CountBy(msgs, Filter{}, SenderKey)
	assert.Equal(t, Frequency[string]{
		{Key: "Alice", Count: 3},
		{Key: "Bob", Count: 2},
		{Key: parse.SystemLabel, Count: 1},
	}, freq)
	assert.Equal(t, len(msgs), freq.Total())

	for _, f := range []Filter{{}, {Sender: "Alice"}, {Sender: "Bob"}, {System: true}, {Sender: "nobody"}} {
		assert.Equal(t, len(f.Apply(msgs)), CountBy(msgs, f, HourKey).Total(), f.String())
	}
}

func TestCountBy_StableTies(t *testing.T) {
	msgs := []parse.Message{
		parse.NewMessage(at(2, 1, 0), "Zed", "a"),
		parse.NewMessage(at(2, 1, 0), "Amy", "a"),
		parse.NewMessage(at(2, 1, 0), "Amy", "a"),
		parse.NewMessage(at(2, 1, 0), "Zed", "a"),
		parse.NewMessage(at(2, 1, 0), "Bo", "a"),
	}
	freq := CountBy(msgs, Filter{}, SenderKey)
	assert.Equal(t, []string{"Zed", "Amy", "Bo"}, []string{freq[0].Key, freq[1].Key, freq[2].Key})
}

func TestCountEach(t *testing.T) {
	freq := CountEach(sample(), Filter{Sender: "Alice"}, Words)
	require.NotEmpty(t, freq)
	assert.Equal(t, Count[string]{Key: "good", Count: 2}, freq[0])
	assert.Len(t, freq.Top(2), 2)
	assert.Len(t, freq.Top(0), len(freq))
}

func TestBucketSeries_Weekdays(t *testing.T) {
	series := WeeklyActivity(sample(), Filter{})
	require.Len(t, series, 7)
	assert.Equal(t, "Monday", series[0].Key)
	assert.Equal(t, 3, series[0].Count)
	assert.Equal(t, "Tuesday", series[1].Key)
	assert.Equal(t, 1, series[1].Count)
	assert.Equal(t, "Friday", series[4].Key)
	assert.Equal(t, 0, series[4].Count)
	assert.Equal(t, "Sunday", series[6].Key)
	assert.Equal(t, 1, series[6].Count)
	assert.Equal(t, 6, series.Total())
}

func TestBucketSeries_Dates(t *testing.T) {
	msgs := []parse.Message{
		parse.NewMessage(time.Date(2023, 3, 1, 1, 0, 0, 0, time.UTC), "A", "x"),
		parse.NewMessage(time.Date(2022, 12, 31, 1, 0, 0, 0, time.UTC), "A", "x"),
		parse.NewMessage(time.Date(2023, 3, 1, 2, 0, 0, 0, time.UTC), "A", "x"),
	}
	assert.Equal(t, Series[string]{
		{Key: "2022-12-31", Count: 1},
		{Key: "2023-03-01", Count: 2},
	}, Timeline(msgs, Filter{}))

	monthly := MonthlyTimeline(msgs, Filter{})
	require.Len(t, monthly, 2)
	assert.Equal(t, "December-2022", monthly[0].Key.String())
	assert.Equal(t, "March-2023", monthly[1].Key.String())
}

func TestBucketSeries_Hours(t *testing.T) {
	series := DailyActivity(sample(), Filter{Sender: "Bob"})
	require.Len(t, series, 24)
	assert.Equal(t, 2, series[9].Count)
	assert.Equal(t, 2, series.Total())
}

func TestBucketSeries_UnknownKeysKept(t *testing.T) {
	order := FixedOrder("Monday", "Tuesday")
	series := BucketSeries(sample(), Filter{}, WeekdayKey, order)
	assert.Equal(t, Series[string]{
		{Key: "Monday", Count: 3},
		{Key: "Tuesday", Count: 1},
		{Key: "Wednesday", Count: 1},
		{Key: "Sunday", Count: 1},
	}, series)
}

func TestHeatmap_AlwaysSevenRows(t *testing.T) {
	tests := []struct {
		name string
		msgs []parse.Message
	}{
		{"empty", nil},
		{"sample", sample()},
		{"sunday only", []parse.Message{parse.NewMessage(at(8, 23, 0), "A", "x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Heatmap(tt.msgs, Filter{})
			assert.Equal(t, parse.WeekdayOrder, tbl.Rows)
			require.Len(t, tbl.Cells, 7)
			require.Len(t, tbl.Cols, 24)
			total := 0
			for _, row := range tbl.Cells {
				require.Len(t, row, 24)
				for _, c := range row {
					total += c
				}
			}
			assert.Equal(t, len(tt.msgs), total)
		})
	}

	tbl := Heatmap(sample(), Filter{})
	assert.Equal(t, 3, tbl.At("Monday", 9))
	assert.Equal(t, 1, tbl.At("Sunday", 9))
	assert.Equal(t, 0, tbl.At("Friday", 12))
	assert.Equal(t, 0, tbl.At("Caturday", 1))
	assert.Equal(t, 3, tbl.Max())
}

func TestPivot_SparseColumns(t *testing.T) {
	tbl := Pivot(sample(), Filter{}, SenderKey, HourKey,
		SortedBy(func(a, b string) bool { return a < b }),
		SortedBy(func(a, b int) bool { return a < b }))
	assert.Equal(t, []string{"Alice", "Bob", parse.SystemLabel}, tbl.Rows)
	assert.Equal(t, []int{9, 21}, tbl.Cols)
	assert.Equal(t, [][]int{{1, 2}, {2, 0}, {1, 0}}, tbl.Cells)
}

func TestMode(t *testing.T) {
	day, ok := Mode(sample(), Filter{}, WeekdayKey)
	require.True(t, ok)
	assert.Equal(t, "Monday", day)

	hour, ok := Mode(sample(), Filter{Sender: "Alice"}, HourKey)
	require.True(t, ok)
	assert.Equal(t, 21, hour)
}

func TestMode_Empty(t *testing.T) {
	day, ok := Mode(sample(), Filter{Sender: "nobody"}, WeekdayKey)
	assert.False(t, ok)
	assert.Empty(t, day)

	_, ok = Mode(nil, Filter{}, HourKey)
	assert.False(t, ok)

	assert.Equal(t, Peak{}, MostActive(nil, Filter{}))
	assert.Equal(t, Peak{Available: true, Day: "Monday", Hour: 9}, MostActive(sample(), Filter{}))
}

func TestBasicStats(t *testing.T) {
	media, err := NewMediaMatcher(DefaultMediaMarkers)
	require.NoError(t, err)

	b := BasicStats(sample(), Filter{}, media)
	assert.Equal(t, Basic{Messages: 6, Words: 16, Media: 1, Links: 1}, b)

	b = BasicStats(sample(), Filter{Sender: "Bob"}, nil)
	assert.Equal(t, Basic{Messages: 2, Words: 5, Media: 0, Links: 1}, b)
}

func TestMediaMatcher(t *testing.T) {
	m, err := NewMediaMatcher([]string{"<Media omitted>", "", "<Media omitted>", "<sticker omitted>"})
	require.NoError(t, err)
	assert.True(t, m.Match("<sticker omitted>"))
	assert.True(t, m.Match("look <Media omitted>"))
	assert.False(t, m.Match("<media omitted>"))
	assert.False(t, m.Match(""))

	empty, err := NewMediaMatcher(nil)
	require.NoError(t, err)
	assert.False(t, empty.Match("<Media omitted>"))
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, []string{"😀", "👍🏽", "🇫🇷"}, EmojiOf("hi 😀 ok 👍🏽 🇫🇷!"))
	assert.Empty(t, EmojiOf("plain text 123"))

	freq := Emoji(sample(), Filter{})
	assert.Equal(t, Frequency[string]{
		{Key: "😀", Count: 2},
		{Key: "👍🏽", Count: 1},
	}, freq)
}

func TestBusyUsersAndContributions(t *testing.T) {
	msgs := sample()
	assert.Equal(t, Frequency[string]{
		{Key: "Alice", Count: 3},
		{Key: "Bob", Count: 2},
	}, BusyUsers(msgs, 5))
	assert.Len(t, BusyUsers(msgs, 1), 1)

	shares := Contributions(msgs)
	require.Len(t, shares, 2)
	assert.Equal(t, "Alice", shares[0].Sender)
	assert.InDelta(t, 60.0, shares[0].Percent, 0.001)
	assert.InDelta(t, 40.0, shares[1].Percent, 0.001)

	assert.Empty(t, Contributions(nil))
	assert.Equal(t, []string{"Alice", "Bob"}, Senders(msgs))
}

func TestLexicon(t *testing.T) {
	assert.InDelta(t, 0.7, DefaultLexicon.Score("Good!"), 0.001)
	assert.InDelta(t, -0.35, DefaultLexicon.Score("not good"), 0.001)
	assert.InDelta(t, 0.0, DefaultLexicon.Score("the table"), 0.001)
	assert.InDelta(t, -1.0, DefaultLexicon.Score("terrible, awful"), 0.001)
}

type fixedScorer map[string]float64

func (s fixedScorer) Score(text string) float64 { return s[text] }

func TestSentiment(t *testing.T) {
	msgs := []parse.Message{
		parse.NewMessage(at(2, 1, 0), "A", "neg"),
		parse.NewMessage(at(2, 1, 0), "A", "zero"),
		parse.NewMessage(at(2, 1, 0), "A", "pos"),
		parse.NewMessage(at(2, 1, 0), "B", "pos"),
	}
	scorer := fixedScorer{"neg": -1, "zero": 0, "pos": 1}

	h := Sentiment(msgs, Filter{}, scorer)
	require.Len(t, h.Counts, 20)
	require.Len(t, h.Edges, 21)
	assert.InDelta(t, -1.0, h.Edges[0], 0.0001)
	assert.InDelta(t, 1.0, h.Edges[20], 0.0001)
	assert.Equal(t, 1, h.Counts[0])
	assert.Equal(t, 1, h.Counts[10])
	assert.Equal(t, 2, h.Counts[19])
	assert.Equal(t, 4, h.N)
	assert.InDelta(t, 0.25, h.Mean, 0.0001)

	h = Sentiment(msgs, Filter{Sender: "nobody"}, scorer)
	assert.Equal(t, 0, h.N)
	assert.Equal(t, 0.0, h.Mean)
}

func TestLanguage(t *testing.T) {
	msgs := []parse.Message{
		parse.NewMessage(at(2, 1, 0), "A", "Bonjour à tous, comment allez-vous aujourd'hui ? Je suis très content de vous voir."),
		parse.NewMessage(at(2, 1, 0), "B", "Nous allons au marché demain matin avec les enfants."),
	}
	info, ok := Language(msgs, Filter{}, nil)
	require.True(t, ok)
	assert.Equal(t, "fr", info.Code)

	_, ok = Language(nil, Filter{}, nil)
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	media, err := NewMediaMatcher(DefaultMediaMarkers)
	require.NoError(t, err)
	msgs := sample()

	r := Build(msgs, Filter{}, Options{TopN: 3, Media: media})
	assert.Equal(t, "Overall", r.Filter)
	assert.Equal(t, 6, r.Basic.Messages)
	assert.Len(t, r.CommonWords, 3)
	assert.Len(t, r.BusyUsers, 2)
	assert.Len(t, r.WeeklyActivity, 7)
	assert.Len(t, r.DailyActivity, 24)
	assert.Len(t, r.Heatmap.Rows, 7)
	assert.True(t, r.MostActive.Available)
	assert.Equal(t, 6, r.Sentiment.N)

	r = Build(msgs, Filter{Sender: "Bob"}, Options{TopN: 3, Media: media})
	assert.Equal(t, "Bob", r.Filter)
	assert.Nil(t, r.BusyUsers)
	assert.Nil(t, r.Contributions)
	assert.Equal(t, 2, r.Basic.Messages)

	r = Build(msgs, Filter{Sender: "nobody"}, Options{})
	assert.Equal(t, 0, r.Basic.Messages)
	assert.False(t, r.MostActive.Available)
	assert.Nil(t, r.Language)
	assert.Len(t, r.WeeklyActivity, 7)
}
