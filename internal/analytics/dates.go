package analytics

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(value time.Time) Date {
	return Date{Time: DateOnly(value)}
}

func (date Date) String() string {
	return date.Format(dateLayout)
}

func (date Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + date.Format(dateLayout) + `"`), nil
}

// DateOnly drops the clock and pins the calendar day to UTC.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func addDays(value time.Time, days int) time.Time {
	return DateOnly(value).AddDate(0, 0, days)
}

// DaysBetween returns the number of calendar days from start to end.
func DaysBetween(start time.Time, end time.Time) int {
	return int(math.Round(DateOnly(end).Sub(DateOnly(start)).Hours() / 24))
}

func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

// RoundTo rounds half-up to the given number of decimals.
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return roundHalfUp(value*scale) / scale
}
