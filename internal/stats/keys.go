package stats

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/samber/lo"
)

// Key functions shared by the aggregations.

func SenderKey(m parse.Message) string { return m.SenderLabel() }

// DateKey is the ISO date, which sorts in calendar order.
func DateKey(m parse.Message) string { return m.Timestamp.Format("2006-01-02") }

func HourKey(m parse.Message) int { return m.Hour }

func WeekdayKey(m parse.Message) string { return m.WeekdayName }

func MonthKey(m parse.Message) YearMonth {
	return YearMonth{Year: m.Year, Month: m.MonthNumber}
}

func Words(m parse.Message) []string { return strings.Fields(m.Body) }

type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

func (ym YearMonth) String() string {
	if ym.Month < 1 || ym.Month > 12 {
		return fmt.Sprintf("%d-%02d", ym.Year, ym.Month)
	}
	return fmt.Sprintf("%s-%d", parse.MonthNames[ym.Month-1], ym.Year)
}

func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

var (
	WeekdayOrder = FixedOrder(parse.WeekdayOrder...)
	HourOrder    = FixedOrder(lo.Range(24)...)
	DateOrder    = SortedBy(func(a, b string) bool { return a < b })
	MonthOrder   = SortedBy(YearMonth.Before)
)
