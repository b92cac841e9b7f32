package parse

import (
	"regexp"
	"strings"
)

// space matches the separators exports put between stamp fields: ASCII
// space or tab, no-break space, narrow no-break space, figure space, thin space.
const space = `[ \t\x{00a0}\x{202f}\x{2007}\x{2009}]`

// stampPattern is "D/M/Y, H:MM am - " with a 2 to 4 digit year.
const stampPattern = `\d{1,2}/\d{1,2}/\d{2,4},` + space + `\d{1,2}:\d{2}` + space + `(?i:am|pm)` + space + `-` + space

var (
	stampRe    = regexp.MustCompile(stampPattern)
	boundaryRe = regexp.MustCompile(`(?m)^` + stampPattern)
)

// Split cuts a transcript into segments. Each segment starts at a timestamp
// at the beginning of a line and runs until the next one; text before the
// first timestamp is discarded.
//
// A timestamp-shaped substring anywhere else means the bodies can no longer
// be trusted to line up with their stamps, and Split fails with an
// *AlignmentError instead of returning a partial result.
func Split(text string) ([]Segment, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	bounds := boundaryRe.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return nil, ErrNoMessages
	}

	stamps := len(stampRe.FindAllStringIndex(text[bounds[0][0]:], -1))
	if stamps != len(bounds) {
		return nil, &AlignmentError{Stamps: stamps, Bodies: len(bounds)}
	}

	segments := make([]Segment, 0, len(bounds))
	line := 1 + strings.Count(text[:bounds[0][0]], "\n")
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		segments = append(segments, Segment{
			Stamp: text[b[0]:b[1]],
			Body:  text[b[1]:end],
			Line:  line,
		})
		line += strings.Count(text[b[0]:end], "\n")
	}
	return segments, nil
}
