package parse

import "time"

// MonthNames and WeekdayNames are fixed English tables so output does not
// depend on the host locale.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekdayNames is indexed by time.Weekday (Sunday = 0).
var WeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekdayOrder is the canonical Monday-first ordering used by every
// weekday bucket and pivot.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Calendar holds the fields derived from a message timestamp.
type Calendar struct {
	Year        int
	MonthNumber int
	MonthName   string
	Day         int
	WeekdayName string
	Hour        int
	Minute      int
}

func Index(t time.Time) Calendar {
	return Calendar{
		Year:        t.Year(),
		MonthNumber: int(t.Month()),
		MonthName:   MonthNames[t.Month()-1],
		Day:         t.Day(),
		WeekdayName: WeekdayNames[t.Weekday()],
		Hour:        t.Hour(),
		Minute:      t.Minute(),
	}
}

// Date truncates the timestamp to its calendar day.
func (c Calendar) Date() time.Time {
	return time.Date(c.Year, time.Month(c.MonthNumber), c.Day, 0, 0, 0, 0, time.UTC)
}
