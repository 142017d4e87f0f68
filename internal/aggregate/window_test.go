package aggregate

import (
	"testing"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

func TestWindowSum_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	lines := []model.OrderLine{
		{OrderID: 1, CustomerID: 1, Nop: "VENDA", Year: 2023, Month: 11, NetValue: 10},
		{OrderID: 2, CustomerID: 1, Nop: "VENDA", Year: 2023, Month: 12, NetValue: 20},
		{OrderID: 3, CustomerID: 1, Nop: "VENDA", Year: 2024, Month: 1, NetValue: 40},
		{OrderID: 4, CustomerID: 2, Nop: "VENDA", Year: 2024, Month: 1, NetValue: 5},
	}
	table := ByCustomer(lines, TagNetSum, testSets())

	start := model.YearMonth{Year: 2023, Month: 12}
	end := model.YearMonth{Year: 2024, Month: 1}
	totals := table.WindowSum(start, end)

	brute := make(map[int]float64)
	for _, row := range table.Rows {
		for _, ym := range model.MonthsBetween(start, end) {
			brute[row.CustomerID] += row.Values[TagNetSum.ColumnName(ym)]
		}
	}
	for id, want := range brute {
		if totals[id] != want {
			t.Fatalf("customer %d: window sum %v, want %v", id, totals[id], want)
		}
	}
	if totals[1] != 60 || totals[2] != 5 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}

func TestWindowSum_MonthsOutsidePivotContributeZero(t *testing.T) {
	t.Parallel()

	lines := []model.OrderLine{
		{OrderID: 1, CustomerID: 1, Nop: "VENDA", Year: 2024, Month: 6, NetValue: 100},
	}
	table := ByCustomer(lines, TagNetSum, testSets())

	totals := table.WindowSum(model.YearMonth{Year: 2020, Month: 1}, model.YearMonth{Year: 2025, Month: 12})
	if totals[1] != 100 {
		t.Fatalf("wide window should still sum to 100, got %v", totals[1])
	}

	empty := table.WindowSum(model.YearMonth{Year: 2020, Month: 1}, model.YearMonth{Year: 2020, Month: 12})
	if empty[1] != 0 {
		t.Fatalf("window before the data should sum to 0, got %v", empty[1])
	}
}

func TestTrailingWindow_MonthGranularity(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	start, end := trailingWindow(now, halfYearDays)
	if start != (model.YearMonth{Year: 2024, Month: 1}) {
		t.Fatalf("half-year start = %v, want 2024-01", start)
	}
	if end != (model.YearMonth{Year: 2024, Month: 6}) {
		t.Fatalf("window should close at the previous month, got %v", end)
	}

	start, _ = trailingWindow(now, bimesterDays)
	if start != (model.YearMonth{Year: 2024, Month: 5}) {
		t.Fatalf("bimester start = %v, want 2024-05", start)
	}
}

func TestTrailingWindow_JanuaryAnchor(t *testing.T) {
	t.Parallel()

	// Anchored in January the window must close in December of the
	// previous year, not wrap inside the same year.
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	_, end := trailingWindow(now, bimesterDays)
	if end != (model.YearMonth{Year: 2023, Month: 12}) {
		t.Fatalf("january window should close at 2023-12, got %v", end)
	}
}

func TestAllTimeWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	start, end := allTimeWindow(now, 2022)
	if start != (model.YearMonth{Year: 2022, Month: 1}) {
		t.Fatalf("all-time start = %v, want 2022-01", start)
	}
	if end != (model.YearMonth{Year: 2024, Month: 3}) {
		t.Fatalf("all-time end = %v, want 2024-03", end)
	}
}
