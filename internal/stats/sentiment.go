package stats

import (
	"strings"
	"unicode"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
)

// Scorer maps a message body to a polarity in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// Lexicon scores text as the mean polarity of the words it knows.
// A negator flips the polarity of the word after it.
type Lexicon map[string]float64

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "dont": true, "don't": true,
	"isnt": true, "isn't": true, "cant": true, "can't": true, "wont": true, "won't": true,
}

var DefaultLexicon = Lexicon{
	"good": 0.7, "great": 0.8, "awesome": 1, "amazing": 0.9, "love": 0.5,
	"nice": 0.6, "happy": 0.8, "thanks": 0.4, "thank": 0.4, "cool": 0.35,
	"best": 1, "excellent": 1, "fun": 0.3, "glad": 0.5, "beautiful": 0.85,
	"perfect": 1, "wonderful": 1, "yay": 0.6, "congrats": 0.6, "lol": 0.8,
	"bad": -0.7, "worst": -1, "terrible": -1, "awful": -1, "hate": -0.8,
	"sad": -0.5, "angry": -0.5, "sorry": -0.5, "annoying": -0.8, "boring": -1,
	"ugly": -0.7, "sick": -0.7, "tired": -0.4, "wrong": -0.5, "poor": -0.4,
	"horrible": -1, "stupid": -0.8, "upset": -0.6, "miss": -0.2, "ugh": -0.4,
}

func (l Lexicon) Score(text string) float64 {
	var sum float64
	var hits int
	negate := false
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.TrimFunc(w, func(r rune) bool { return unicode.IsPunct(r) && r != '\'' })
		if negators[w] {
			negate = true
			continue
		}
		if p, ok := l[w]; ok {
			if negate {
				p = -p * 0.5
			}
			sum += p
			hits++
		}
		negate = false
	}
	if hits == 0 {
		return 0
	}
	return clamp(sum/float64(hits), -1, 1)
}

func clamp(v, lower, upper float64) float64 {
	return max(lower, min(upper, v))
}

const sentimentBins = 20

// Histogram buckets polarity scores into equal-width bins over [-1, 1].
type Histogram struct {
	Edges  []float64 `json:"edges"` // len(Counts)+1 bin boundaries
	Counts []int     `json:"counts"`
	Mean   float64   `json:"mean"`
	N      int       `json:"n"`
}

func Sentiment(msgs []parse.Message, f Filter, scorer Scorer) Histogram {
	h := Histogram{
		Edges:  make([]float64, sentimentBins+1),
		Counts: make([]int, sentimentBins),
	}
	width := 2.0 / sentimentBins
	for i := range h.Edges {
		h.Edges[i] = -1 + float64(i)*width
	}

	var sum float64
	for _, m := range msgs {
		if !f.Match(m) {
			continue
		}
		s := clamp(scorer.Score(m.Body), -1, 1)
		bin := min(int((s+1)/width), sentimentBins-1)
		h.Counts[bin]++
		sum += s
		h.N++
	}
	if h.N > 0 {
		h.Mean = sum / float64(h.N)
	}
	return h
}
