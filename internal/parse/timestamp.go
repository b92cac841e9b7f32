package parse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearPivot resolves two-digit years: yy < 69 is 20yy, otherwise 19yy.
// This is the same rule Go's time package applies to the "06" layout.
const yearPivot = 69

var stampFieldsRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4}), +(\d{1,2}):(\d{2}) +([aApP][mM])(?: +-)?$`)

var specialSpaces = strings.NewReplacer(
	"\u00a0", " ",
	"\u202f", " ",
	"\u2007", " ",
	"\u2009", " ",
	"\t", " ",
)

// NormalizeStamp replaces exotic space characters with ASCII spaces and trims.
func NormalizeStamp(stamp string) string {
	return strings.TrimSpace(specialSpaces.Replace(stamp))
}

// ParseTimestamp parses "day/month/year, hour:minute am -" into a naive
// local time (carried in time.UTC).
func ParseTimestamp(stamp string) (time.Time, error) {
	s := NormalizeStamp(stamp)
	m := stampFieldsRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: "does not match day/month/year, hour:minute am|pm"}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	year, err := resolveYear(m[3])
	if err != nil {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: err.Error()}
	}

	if hour < 1 || hour > 12 {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: "hour out of range"}
	}
	if minute > 59 {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: "minute out of range"}
	}
	hour %= 12
	if strings.EqualFold(m[6], "pm") {
		hour += 12
	}

	if month < 1 || month > 12 {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: "month out of range"}
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject instead
	if day < 1 || t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, &DateParseError{Stamp: stamp, Reason: "day out of range"}
	}
	return t, nil
}

func resolveYear(s string) (int, error) {
	y, _ := strconv.Atoi(s)
	switch len(s) {
	case 2:
		if y < yearPivot {
			return 2000 + y, nil
		}
		return 1900 + y, nil
	case 4:
		return y, nil
	default:
		return 0, errors.New("year must have 2 or 4 digits")
	}
}

// FormatStamp renders t the way exports write it, including the
// trailing " - " separator.
func FormatStamp(t time.Time) string {
	return t.Format("02/01/06, 3:04 pm") + " - "
}
