// Package aggregate computes the per-customer pivoted monthly rollups, the
// rolling-window totals derived from them, the merged master table, and the
// aggregated feed tables consumed by chart widgets. Every function here is a
// pure transform over an immutable order table.
package aggregate

import (
	"fmt"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// Tag identifies one (metric, operation-category) pair of the monthly
// pivot. The tag determines which orders contribute, which column feeds the
// aggregation, whether the operation sums or counts, and the suffix of the
// flattened column name.
type Tag int

const (
	TagSaleCount     Tag = iota // vendas: count of sale orders
	TagNetSum                   // liquido: net value sum over sales
	TagGrossSum                 // bruto: gross value sum over sales
	TagDiscountSum              // desconto: discount sum over sales
	TagTrousseauSum             // enxoval: net value sum over trousseau orders
	TagSubsidizedSum            // bonificado: net value sum over subsidized orders
)

// Suffix is the tag's column-name suffix. Suffixes are unique per tag, which
// together with the month/year prefix makes ColumnName injective.
func (t Tag) Suffix() string {
	switch t {
	case TagSaleCount:
		return "vendas"
	case TagNetSum:
		return "liquido"
	case TagGrossSum:
		return "bruto"
	case TagDiscountSum:
		return "desconto"
	case TagTrousseauSum:
		return "enxoval"
	case TagSubsidizedSum:
		return "bonificado"
	default:
		return "desconhecido"
	}
}

// Category is the operation category whose orders feed this tag.
func (t Tag) Category() model.OperationCategory {
	switch t {
	case TagTrousseauSum:
		return model.CategoryTrousseau
	case TagSubsidizedSum:
		return model.CategorySubsidized
	default:
		return model.CategorySale
	}
}

// metric is the value one order contributes to the aggregation. TagSaleCount
// counts orders instead of summing a column.
func (t Tag) metric(o model.Order) float64 {
	switch t {
	case TagSaleCount:
		return 1
	case TagGrossSum:
		return o.GrossValue
	case TagDiscountSum:
		return o.Discount
	default:
		return o.NetValue
	}
}

// Abbreviated pt-BR month names, indexed by month-1.
var monthAbbr = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// MonthAbbr returns the pt-BR abbreviation for a 1-based month.
func MonthAbbr(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("m%d", month)
	}
	return monthAbbr[month-1]
}

// ColumnName is the deterministic flattened key for this tag in one
// calendar month: "{month-abbrev}_{year}_{suffix}", e.g. "jan_2024_liquido".
// Injective over (tag, year, month).
func (t Tag) ColumnName(ym model.YearMonth) string {
	return fmt.Sprintf("%s_%d_%s", MonthAbbr(ym.Month), ym.Year, t.Suffix())
}
