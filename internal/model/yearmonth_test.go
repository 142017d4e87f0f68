package model

import "testing"

func TestYearMonth_AddMonths_YearBoundaries(t *testing.T) {
	t.Parallel()

	if got := (YearMonth{2024, 1}).AddMonths(-1); got != (YearMonth{2023, 12}) {
		t.Fatalf("jan-1 = %v, want 2023-12", got)
	}
	if got := (YearMonth{2023, 11}).AddMonths(3); got != (YearMonth{2024, 2}) {
		t.Fatalf("nov+3 = %v, want 2024-02", got)
	}
	if got := (YearMonth{2024, 6}).AddMonths(0); got != (YearMonth{2024, 6}) {
		t.Fatalf("+0 = %v, want unchanged", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	months := MonthsBetween(YearMonth{2023, 11}, YearMonth{2024, 2})
	want := []YearMonth{{2023, 11}, {2023, 12}, {2024, 1}, {2024, 2}}
	if len(months) != len(want) {
		t.Fatalf("got %d months, want %d", len(months), len(want))
	}
	for i := range want {
		if months[i] != want[i] {
			t.Fatalf("month %d = %v, want %v", i, months[i], want[i])
		}
	}

	if got := MonthsBetween(YearMonth{2024, 2}, YearMonth{2024, 1}); got != nil {
		t.Fatalf("inverted range should yield nil, got %v", got)
	}
	single := MonthsBetween(YearMonth{2024, 5}, YearMonth{2024, 5})
	if len(single) != 1 || single[0] != (YearMonth{2024, 5}) {
		t.Fatalf("single-month range = %v", single)
	}
}

func TestCodeSets_Classify(t *testing.T) {
	t.Parallel()

	sets := NewCodeSets([]string{"6.102", "VENDA"}, []string{"ENXOVAL"}, []string{"BONIFICADO"})

	if got := sets.Classify("VENDA"); got != CategorySale {
		t.Fatalf("VENDA = %v, want sale", got)
	}
	if got := sets.Classify("ENXOVAL"); got != CategoryTrousseau {
		t.Fatalf("ENXOVAL = %v, want trousseau", got)
	}
	if got := sets.Classify("BONIFICADO"); got != CategorySubsidized {
		t.Fatalf("BONIFICADO = %v, want subsidized", got)
	}
	if got := sets.Classify("DEVOLUCAO"); got != CategoryOther {
		t.Fatalf("DEVOLUCAO = %v, want other", got)
	}
}

func TestUnrestrictedSentinels(t *testing.T) {
	t.Parallel()

	if !UnrestrictedInts(nil) || !UnrestrictedInts([]int{0}) {
		t.Fatalf("nil and [0] should be unrestricted")
	}
	if UnrestrictedInts([]int{3}) || UnrestrictedInts([]int{0, 3}) {
		t.Fatalf("explicit selections should restrict")
	}
	if !UnrestrictedStrings(nil) || !UnrestrictedStrings([]string{"0"}) || !UnrestrictedStrings([]string{""}) {
		t.Fatalf("nil, [0] and [\"\"] should be unrestricted")
	}
	if UnrestrictedStrings([]string{"SP"}) {
		t.Fatalf("explicit selection should restrict")
	}
}
