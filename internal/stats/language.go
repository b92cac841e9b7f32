package stats

import (
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/abadojack/whatlanggo"
)

// maxLanguageSample bounds how much text is handed to the detector.
const maxLanguageSample = 64 * 1024

type LanguageInfo struct {
	Code       string  `json:"code"` // ISO 639-1
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Language detects the dominant language of the filtered personal messages.
// Media placeholders are skipped. ok is false when there is no text to go on.
func Language(msgs []parse.Message, f Filter, media *MediaMatcher) (LanguageInfo, bool) {
	var b strings.Builder
	for _, m := range msgs {
		if b.Len() >= maxLanguageSample {
			break
		}
		if m.Kind != parse.KindPersonal || !f.Match(m) || media.Match(m.Body) {
			continue
		}
		b.WriteString(m.Body)
		b.WriteByte('\n')
	}
	if strings.TrimSpace(b.String()) == "" {
		return LanguageInfo{}, false
	}

	info := whatlanggo.Detect(b.String())
	if info.Lang < 0 {
		return LanguageInfo{}, false
	}
	return LanguageInfo{
		Code:       info.Lang.Iso6391(),
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
	}, true
}
