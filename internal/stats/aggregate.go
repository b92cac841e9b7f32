package stats

import (
	"sort"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/samber/lo"
)

// Filter selects the messages an aggregation runs over.
// The zero value selects everything.
type Filter struct {
	Sender string // exact participant name, "" = all
	System bool   // only group notifications
}

func (f Filter) Match(m parse.Message) bool {
	if f.System {
		return m.Kind == parse.KindSystem
	}
	if f.Sender == "" {
		return true
	}
	name, ok := m.Sender()
	return ok && name == f.Sender
}

func (f Filter) Apply(msgs []parse.Message) []parse.Message {
	return lo.Filter(msgs, func(m parse.Message, _ int) bool {
		return f.Match(m)
	})
}

func (f Filter) String() string {
	switch {
	case f.System:
		return parse.SystemLabel
	case f.Sender != "":
		return f.Sender
	default:
		return "Overall"
	}
}

type Count[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// Frequency is sorted by count descending; equal counts keep the order in
// which their keys were first seen.
type Frequency[K comparable] []Count[K]

// Series is a list of bucket counts in an explicit bucket order.
type Series[K comparable] []Count[K]

func (f Frequency[K]) Total() int { return total([]Count[K](f)) }

func (s Series[K]) Total() int { return total([]Count[K](s)) }

// Top returns at most n entries; n <= 0 returns all of them.
func (f Frequency[K]) Top(n int) Frequency[K] {
	if n <= 0 || n >= len(f) {
		return f
	}
	return f[:n]
}

func total[K comparable](counts []Count[K]) int {
	return lo.SumBy(counts, func(c Count[K]) int { return c.Count })
}

// tally counts keys while remembering first-seen order.
type tally[K comparable] struct {
	index  map[K]int
	counts []Count[K]
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{index: make(map[K]int)}
}

func (t *tally[K]) add(k K) {
	i, ok := t.index[k]
	if !ok {
		i = len(t.counts)
		t.index[k] = i
		t.counts = append(t.counts, Count[K]{Key: k})
	}
	t.counts[i].Count++
}

func (t *tally[K]) get(k K) int {
	if i, ok := t.index[k]; ok {
		return t.counts[i].Count
	}
	return 0
}

func (t *tally[K]) keys() []K {
	return lo.Map(t.counts, func(c Count[K], _ int) K { return c.Key })
}

// CountBy groups the filtered messages by key. The counts sum to the number
// of filtered messages.
func CountBy[K comparable](msgs []parse.Message, f Filter, key func(parse.Message) K) Frequency[K] {
	t := newTally[K]()
	for _, m := range msgs {
		if f.Match(m) {
			t.add(key(m))
		}
	}
	return byCount(t)
}

// CountEach is CountBy for keys that occur many times per message, such as
// words or emoji.
func CountEach[K comparable](msgs []parse.Message, f Filter, keys func(parse.Message) []K) Frequency[K] {
	t := newTally[K]()
	for _, m := range msgs {
		if !f.Match(m) {
			continue
		}
		for _, k := range keys(m) {
			t.add(k)
		}
	}
	return byCount(t)
}

func byCount[K comparable](t *tally[K]) Frequency[K] {
	out := Frequency[K](t.counts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Ordering decides bucket order. A fixed ordering is dense: every listed
// bucket appears, zero or not. Otherwise the keys present are sorted by Less.
type Ordering[K comparable] struct {
	Fixed []K
	Less  func(a, b K) bool
}

func FixedOrder[K comparable](keys ...K) Ordering[K] {
	return Ordering[K]{Fixed: keys}
}

func SortedBy[K comparable](less func(a, b K) bool) Ordering[K] {
	return Ordering[K]{Less: less}
}

// arrange lists the buckets for the keys in t. Keys missing from a fixed
// ordering are appended in first-seen order so no count is lost.
func (o Ordering[K]) arrange(t *tally[K]) []K {
	if o.Fixed != nil {
		out := append([]K(nil), o.Fixed...)
		known := lo.Keyify(o.Fixed)
		for _, k := range t.keys() {
			if _, ok := known[k]; !ok {
				out = append(out, k)
			}
		}
		return out
	}
	keys := t.keys()
	if o.Less != nil {
		sort.SliceStable(keys, func(i, j int) bool { return o.Less(keys[i], keys[j]) })
	}
	return keys
}

// BucketSeries counts the filtered messages per bucket in the given order.
func BucketSeries[K comparable](msgs []parse.Message, f Filter, key func(parse.Message) K, order Ordering[K]) Series[K] {
	t := newTally[K]()
	for _, m := range msgs {
		if f.Match(m) {
			t.add(key(m))
		}
	}
	return lo.Map(order.arrange(t), func(k K, _ int) Count[K] {
		return Count[K]{Key: k, Count: t.get(k)}
	})
}

// Table is a two-axis count table. Every (row, col) cell is present.
type Table[R, C comparable] struct {
	Rows  []R     `json:"rows"`
	Cols  []C     `json:"cols"`
	Cells [][]int `json:"cells"`
}

func (t Table[R, C]) At(r R, c C) int {
	i := lo.IndexOf(t.Rows, r)
	j := lo.IndexOf(t.Cols, c)
	if i < 0 || j < 0 {
		return 0
	}
	return t.Cells[i][j]
}

func (t Table[R, C]) Max() int {
	best := 0
	for _, row := range t.Cells {
		best = max(best, lo.Max(row))
	}
	return best
}

// Pivot counts the filtered messages on two axes.
func Pivot[R, C comparable](
	msgs []parse.Message,
	f Filter,
	row func(parse.Message) R,
	col func(parse.Message) C,
	rows Ordering[R],
	cols Ordering[C],
) Table[R, C] {
	rt, ct := newTally[R](), newTally[C]()
	filtered := f.Apply(msgs)
	for _, m := range filtered {
		rt.add(row(m))
		ct.add(col(m))
	}

	tbl := Table[R, C]{
		Rows: rows.arrange(rt),
		Cols: cols.arrange(ct),
	}
	ri := indexOf(tbl.Rows)
	ci := indexOf(tbl.Cols)
	tbl.Cells = make([][]int, len(tbl.Rows))
	for i := range tbl.Cells {
		tbl.Cells[i] = make([]int, len(tbl.Cols))
	}
	for _, m := range filtered {
		tbl.Cells[ri[row(m)]][ci[col(m)]]++
	}
	return tbl
}

func indexOf[K comparable](keys []K) map[K]int {
	idx := make(map[K]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}

// Mode returns the most frequent key; ties go to the key seen first.
// ok is false when the filter matches nothing.
func Mode[K comparable](msgs []parse.Message, f Filter, key func(parse.Message) K) (K, bool) {
	freq := CountBy(msgs, f, key)
	if len(freq) == 0 {
		var zero K
		return zero, false
	}
	return freq[0].Key, true
}
