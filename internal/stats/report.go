package stats

import (
	"regexp"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/samber/lo"
)

var linkRe = regexp.MustCompile(`https?://`)

type Basic struct {
	Messages int `json:"messages"`
	Words    int `json:"words"`
	Media    int `json:"media"`
	Links    int `json:"links"`
}

// BasicStats counts messages, words, messages carrying media and messages
// carrying links.
func BasicStats(msgs []parse.Message, f Filter, media *MediaMatcher) Basic {
	var b Basic
	for _, m := range msgs {
		if !f.Match(m) {
			continue
		}
		b.Messages++
		b.Words += len(strings.Fields(m.Body))
		if media.Match(m.Body) {
			b.Media++
		}
		if linkRe.MatchString(m.Body) {
			b.Links++
		}
	}
	return b
}

func personal(msgs []parse.Message) []parse.Message {
	return lo.Filter(msgs, func(m parse.Message, _ int) bool {
		return m.Kind == parse.KindPersonal
	})
}

// BusyUsers ranks participants by message count. Notifications are not
// attributed to anyone and are left out.
func BusyUsers(msgs []parse.Message, n int) Frequency[string] {
	return CountBy(personal(msgs), Filter{}, SenderKey).Top(n)
}

type Share struct {
	Sender  string  `json:"sender"`
	Percent float64 `json:"percent"`
}

// Contributions is each participant's share of all personal messages.
func Contributions(msgs []parse.Message) []Share {
	freq := CountBy(personal(msgs), Filter{}, SenderKey)
	total := freq.Total()
	return lo.Map(freq, func(c Count[string], _ int) Share {
		return Share{Sender: c.Key, Percent: float64(c.Count) * 100 / float64(total)}
	})
}

func CommonWords(msgs []parse.Message, f Filter, n int) Frequency[string] {
	return CountEach(msgs, f, Words).Top(n)
}

func Emoji(msgs []parse.Message, f Filter) Frequency[string] {
	return CountEach(msgs, f, messageEmoji)
}

func Timeline(msgs []parse.Message, f Filter) Series[string] {
	return BucketSeries(msgs, f, DateKey, DateOrder)
}

func MonthlyTimeline(msgs []parse.Message, f Filter) Series[YearMonth] {
	return BucketSeries(msgs, f, MonthKey, MonthOrder)
}

// DailyActivity has one bucket per hour of the day, 0 through 23.
func DailyActivity(msgs []parse.Message, f Filter) Series[int] {
	return BucketSeries(msgs, f, HourKey, HourOrder)
}

// WeeklyActivity has one bucket per weekday, Monday first.
func WeeklyActivity(msgs []parse.Message, f Filter) Series[string] {
	return BucketSeries(msgs, f, WeekdayKey, WeekdayOrder)
}

// Heatmap is the weekday x hour pivot: always 7 rows Monday to Sunday and
// 24 hour columns.
func Heatmap(msgs []parse.Message, f Filter) Table[string, int] {
	return Pivot(msgs, f, WeekdayKey, HourKey, WeekdayOrder, HourOrder)
}

// Peak is the busiest weekday and hour. Available is false when there are
// no messages to look at.
type Peak struct {
	Available bool   `json:"available"`
	Day       string `json:"day,omitempty"`
	Hour      int    `json:"hour"`
}

func MostActive(msgs []parse.Message, f Filter) Peak {
	day, ok := Mode(msgs, f, WeekdayKey)
	if !ok {
		return Peak{}
	}
	hour, _ := Mode(msgs, f, HourKey)
	return Peak{Available: true, Day: day, Hour: hour}
}

type Options struct {
	TopN   int
	Media  *MediaMatcher
	Scorer Scorer
}

type Report struct {
	Filter          string             `json:"filter"`
	Basic           Basic              `json:"basic"`
	BusyUsers       Frequency[string]  `json:"busy_users,omitempty"`
	Contributions   []Share            `json:"contributions,omitempty"`
	CommonWords     Frequency[string]  `json:"common_words"`
	Emoji           Frequency[string]  `json:"emoji"`
	Timeline        Series[string]     `json:"timeline"`
	MonthlyTimeline Series[YearMonth]  `json:"monthly_timeline"`
	DailyActivity   Series[int]        `json:"daily_activity"`
	WeeklyActivity  Series[string]     `json:"weekly_activity"`
	Heatmap         Table[string, int] `json:"heatmap"`
	MostActive      Peak               `json:"most_active"`
	Sentiment       Histogram          `json:"sentiment"`
	Language        *LanguageInfo      `json:"language,omitempty"`
}

// Build computes every statistic for one filter. Participant rankings are
// only included for the unfiltered view.
func Build(msgs []parse.Message, f Filter, opts Options) Report {
	if opts.Scorer == nil {
		opts.Scorer = DefaultLexicon
	}

	r := Report{
		Filter:          f.String(),
		Basic:           BasicStats(msgs, f, opts.Media),
		CommonWords:     CommonWords(msgs, f, opts.TopN),
		Emoji:           Emoji(msgs, f),
		Timeline:        Timeline(msgs, f),
		MonthlyTimeline: MonthlyTimeline(msgs, f),
		DailyActivity:   DailyActivity(msgs, f),
		WeeklyActivity:  WeeklyActivity(msgs, f),
		Heatmap:         Heatmap(msgs, f),
		MostActive:      MostActive(msgs, f),
		Sentiment:       Sentiment(msgs, f, opts.Scorer),
	}
	if f == (Filter{}) {
		r.BusyUsers = BusyUsers(msgs, 5)
		r.Contributions = Contributions(msgs)
	}
	if lang, ok := Language(msgs, f, opts.Media); ok {
		r.Language = &lang
	}
	return r
}

// Senders lists the participants in order of first appearance.
func Senders(msgs []parse.Message) []string {
	return lo.Uniq(lo.Map(personal(msgs), func(m parse.Message, _ int) string {
		return SenderKey(m)
	}))
}
