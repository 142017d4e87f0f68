package model

import "time"

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// YearMonthOf truncates a time to its calendar month.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

// Next returns the following calendar month.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == 12 {
		return YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// AddMonths shifts the month by n (negative n moves backwards).
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, n, 0)
	return YearMonthOf(t)
}

// MonthsBetween enumerates every month in [start, end] inclusive.
// An inverted range yields nil.
func MonthsBetween(start, end YearMonth) []YearMonth {
	if end.Before(start) {
		return nil
	}
	var months []YearMonth
	for ym := start; !ym.After(end); ym = ym.Next() {
		months = append(months, ym)
	}
	return months
}
