package stats

import (
	"slices"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// DefaultMediaMarkers are the placeholders exports write instead of
// attachments.
var DefaultMediaMarkers = []string{
	"<Media omitted>",
	"<image omitted>",
	"<video omitted>",
}

// MediaMatcher finds media placeholders in message bodies.
type MediaMatcher struct {
	machine *goahocorasick.Machine
}

// NewMediaMatcher builds an Aho-Corasick automaton over the given markers.
// Empty and duplicate markers are ignored.
func NewMediaMatcher(markers []string) (*MediaMatcher, error) {
	markers = lo.Uniq(lo.Compact(markers))
	if len(markers) == 0 {
		return &MediaMatcher{}, nil
	}
	slices.Sort(markers)

	patterns := lo.Map(markers, func(s string, _ int) []rune { return []rune(s) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &MediaMatcher{machine: m}, nil
}

func (m *MediaMatcher) Match(body string) bool {
	if m == nil || m.machine == nil || body == "" {
		return false
	}
	return len(m.machine.MultiPatternSearch([]rune(body), true)) > 0
}
