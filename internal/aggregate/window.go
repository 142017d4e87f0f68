package aggregate

import (
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// WindowSum sums a customer's flattened columns over every calendar month in
// [start, end] inclusive. Expected column names that do not exist in the
// table contribute 0 and are dropped silently; a month outside the pivot's
// observed range is not an error.
func (t *FlatTable) WindowSum(start, end model.YearMonth) map[int]float64 {
	totals := make(map[int]float64)
	if t == nil {
		return totals
	}

	var kept []string
	for _, ym := range model.MonthsBetween(start, end) {
		name := t.Tag.ColumnName(ym)
		if t.HasColumn(name) {
			kept = append(kept, name)
		}
	}

	for _, row := range t.Rows {
		sum := 0.0
		for _, col := range kept {
			sum += row.Values[col]
		}
		totals[row.CustomerID] = sum
	}
	return totals
}

// Rolling windows anchored to "now" at month granularity. The trailing
// "day" windows are approximate on purpose: the anchor is now-N days
// truncated to its calendar month, and the window closes at now-1 month.
// Tightening them to exact day counts would silently change the meaning of
// the historical master-table columns.
const (
	halfYearDays = 180
	quarterDays  = 90
	bimesterDays = 60
)

// trailingWindow gives the month range for a trailing day span.
func trailingWindow(now time.Time, days int) (start, end model.YearMonth) {
	start = model.YearMonthOf(now.AddDate(0, 0, -days))
	end = model.YearMonthOf(now).AddMonths(-1)
	return start, end
}

// allTimeWindow gives the month range from the fixed starting year through
// the current month.
func allTimeWindow(now time.Time, startingYear int) (start, end model.YearMonth) {
	return model.YearMonth{Year: startingYear, Month: 1}, model.YearMonthOf(now)
}
