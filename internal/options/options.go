// Package options derives the selection lists that populate the dashboard's
// filter widgets: deduplicated, sorted, translated, with a synthetic
// all-entry whose value 0 means "no restriction".
package options

import (
	"cmp"
	"sort"
	"strconv"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// AllLabel is the display label of the synthetic all-entry.
const AllLabel = "Todos"

// Option is one selectable entry. Value is either a numeric id or a plain
// string depending on the dimension; 0 is reserved for the all-entry.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// build deduplicates rows by value, drops entries with a missing value or
// label, sorts by label (or by value when label sorting is disabled) and
// prepends the all-entry. Missing means the zero value: the sanitizer turns
// null source cells into zeros and empty strings. Dedup happens before the
// label check, so a value whose first occurrence carries a null label is
// dropped outright; a later duplicate with a valid label does not revive it.
func build[T cmp.Ordered](rows []model.Order, value func(model.Order) T, label func(model.Order) string, sortByLabel bool) []Option {
	type entry struct {
		value T
		label string
	}

	var zero T
	seen := make(map[T]bool)
	var entries []entry
	for _, row := range rows {
		v := value(row)
		if v == zero || seen[v] {
			continue
		}
		seen[v] = true
		l := label(row)
		if l == "" {
			continue
		}
		entries = append(entries, entry{value: v, label: l})
	}

	sort.Slice(entries, func(i, j int) bool {
		if sortByLabel {
			return entries[i].label < entries[j].label
		}
		return entries[i].value < entries[j].value
	})

	list := make([]Option, 0, len(entries)+1)
	list = append(list, Option{Value: 0, Label: AllLabel})
	for _, e := range entries {
		list = append(list, Option{Value: e.value, Label: e.label})
	}
	return list
}

// Full pt-BR month names for the month selector, indexed by month-1.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Month lists the months present in the table, value-sorted with the
// translated month name as label.
func Month(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.Month },
		func(o model.Order) string {
			if o.Month < 1 || o.Month > 12 {
				return ""
			}
			return monthNames[o.Month-1]
		},
		false)
}

// Year lists the years present in the table.
func Year(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.Year },
		func(o model.Order) string {
			if o.Year == 0 {
				return ""
			}
			return strconv.Itoa(o.Year)
		},
		false)
}

// Salesperson lists salespeople, label-sorted by name.
func Salesperson(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.SalespersonID },
		func(o model.Order) string { return o.SalespersonName },
		true)
}

// Branch lists activity sectors.
func Branch(rows []model.Order) []Option {
	return stringColumn(rows, func(o model.Order) string { return o.ActivitySector })
}

// UF lists states.
func UF(rows []model.Order) []Option {
	return stringColumn(rows, func(o model.Order) string { return o.State })
}

// City lists cities.
func City(rows []model.Order) []Option {
	return stringColumn(rows, func(o model.Order) string { return o.City })
}

// District lists districts.
func District(rows []model.Order) []Option {
	return stringColumn(rows, func(o model.Order) string { return o.District })
}

// Status lists status codes with their descriptions, label-sorted.
func Status(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.StatusCode },
		func(o model.Order) string { return o.StatusName },
		true)
}

// SubProductGroup lists product groups, label-sorted.
func SubProductGroup(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.ProductGroupID },
		func(o model.Order) string { return o.ProductGroup },
		true)
}

// ProductGroup lists parent product groups, label-sorted.
func ProductGroup(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.ParentGroupID },
		func(o model.Order) string { return o.ParentGroup },
		true)
}

// Brand lists brands, label-sorted.
func Brand(rows []model.Order) []Option {
	return build(rows,
		func(o model.Order) int { return o.BrandID },
		func(o model.Order) string { return o.BrandName },
		true)
}

// Company lists invoice companies, value-sorted, labelled from the
// configured id-to-name mapping. Ids without a configured name are dropped
// like any other null label.
func Company(rows []model.Order, names map[int]string) []Option {
	return build(rows,
		func(o model.Order) int { return o.CompanyID },
		func(o model.Order) string { return names[o.CompanyID] },
		false)
}

// stringColumn builds a single-column list: the value is its own label.
func stringColumn(rows []model.Order, col func(model.Order) string) []Option {
	return build(rows, col, col, true)
}

// LabelByValue resolves an option value back to its label. Missing values
// yield "".
func LabelByValue(list []Option, value any) string {
	for _, opt := range list {
		if opt.Value == value {
			return opt.Label
		}
	}
	return ""
}
