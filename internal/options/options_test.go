package options

import (
	"testing"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

func optionRows() []model.Order {
	return []model.Order{
		{State: "SP", City: "São Paulo", SalespersonID: 9, SalespersonName: "Bruna", Year: 2024, Month: 2, CompanyID: 2},
		{State: "SP", City: "Campinas", SalespersonID: 7, SalespersonName: "Ana", Year: 2023, Month: 1, CompanyID: 1},
		{State: "RJ", City: "Rio de Janeiro", SalespersonID: 7, SalespersonName: "Ana", Year: 2024, Month: 1, CompanyID: 1},
		{State: "", City: "", SalespersonID: 0, SalespersonName: "", Year: 0, Month: 0, CompanyID: 0},
	}
}

func TestUF_DedupSortAllEntry(t *testing.T) {
	t.Parallel()

	list := UF(optionRows())
	if len(list) != 3 {
		t.Fatalf("got %d options, want 3", len(list))
	}
	if list[0].Value != 0 || list[0].Label != AllLabel {
		t.Fatalf("first entry should be the all-entry: %+v", list[0])
	}
	if list[1].Label != "RJ" || list[2].Label != "SP" {
		t.Fatalf("states should be label-sorted with nulls dropped: %+v", list)
	}
}

func TestSalesperson_LabelSortedUniqueIDs(t *testing.T) {
	t.Parallel()

	list := Salesperson(optionRows())
	if len(list) != 3 {
		t.Fatalf("got %d options, want 3 (all + 2 people)", len(list))
	}
	if list[1].Label != "Ana" || list[1].Value != 7 {
		t.Fatalf("expected Ana first: %+v", list[1])
	}
	if list[2].Label != "Bruna" || list[2].Value != 9 {
		t.Fatalf("expected Bruna second: %+v", list[2])
	}
}

func TestMonthAndYear_ValueSorted(t *testing.T) {
	t.Parallel()

	months := Month(optionRows())
	if months[1].Value != 1 || months[1].Label != "janeiro" {
		t.Fatalf("expected janeiro first: %+v", months[1])
	}
	if months[2].Value != 2 || months[2].Label != "fevereiro" {
		t.Fatalf("expected fevereiro second: %+v", months[2])
	}

	years := Year(optionRows())
	if years[1].Value != 2023 || years[2].Value != 2024 {
		t.Fatalf("years should ascend: %+v", years)
	}
}

func TestCompany_LabelledFromConfig(t *testing.T) {
	t.Parallel()

	names := map[int]string{1: "KAMI CO"}
	list := Company(optionRows(), names)
	// Company 2 has no configured name and is dropped like a null label.
	if len(list) != 2 {
		t.Fatalf("got %d options, want 2", len(list))
	}
	if list[1].Value != 1 || list[1].Label != "KAMI CO" {
		t.Fatalf("unexpected company option: %+v", list[1])
	}
}

func TestSalesperson_FirstOccurrenceNullLabelDropsValue(t *testing.T) {
	t.Parallel()

	rows := []model.Order{
		{SalespersonID: 7, SalespersonName: ""},
		{SalespersonID: 7, SalespersonName: "Ana"},
		{SalespersonID: 9, SalespersonName: "Bruna"},
	}
	list := Salesperson(rows)
	if len(list) != 2 {
		t.Fatalf("got %d options, want 2 (all + Bruna)", len(list))
	}
	if list[1].Value != 9 || list[1].Label != "Bruna" {
		t.Fatalf("a later duplicate must not revive a null-labelled value: %+v", list)
	}
}

func TestLabelByValue(t *testing.T) {
	t.Parallel()

	list := UF(optionRows())
	if got := LabelByValue(list, "SP"); got != "SP" {
		t.Fatalf("LabelByValue(SP) = %q", got)
	}
	if got := LabelByValue(list, "XX"); got != "" {
		t.Fatalf("unknown value should yield empty, got %q", got)
	}
}

func TestDimensions(t *testing.T) {
	t.Parallel()

	if got := LabelForDimension(DimUF); got != "Estado" {
		t.Fatalf("LabelForDimension(uf) = %q", got)
	}
	if got := DimensionForLabel("Estado"); got != DimUF {
		t.Fatalf("DimensionForLabel(Estado) = %q", got)
	}
	if got := DimensionForLabel("nope"); got != "" {
		t.Fatalf("unknown label should yield empty key, got %q", got)
	}

	all := All(optionRows(), nil)
	if len(all) != 12 {
		t.Fatalf("expected 12 dimension lists, got %d", len(all))
	}

	some := ForDimensions(optionRows(), nil, []string{DimUF, "unknown"})
	if len(some) != 1 {
		t.Fatalf("unknown keys should be skipped, got %d lists", len(some))
	}
	if _, ok := some[DimUF]; !ok {
		t.Fatalf("requested dimension missing")
	}
}
