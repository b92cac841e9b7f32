package parse

import (
	"regexp"
	"strings"
)

// senderRe matches the shortest "name: " prefix on the first line of a body.
var senderRe = regexp.MustCompile(`^([^\n]+?):[ \x{00a0}\x{202f}]`)

// SplitSender separates "name: text" into its parts. When the body has no
// sender prefix it is a group notification: ok is false and text is the body
// trimmed of surrounding whitespace.
func SplitSender(body string) (sender, text string, ok bool) {
	loc := senderRe.FindStringSubmatchIndex(body)
	if loc == nil {
		return "", strings.TrimSpace(body), false
	}
	return body[loc[2]:loc[3]], strings.TrimRight(body[loc[1]:], "\r\n"), true
}
