package aggregate

import (
	"sort"

	"github.com/devkami/kami-sales-dashboard/internal/dataset"
	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// CustomerRow is one pivot row: a customer plus one value per flattened
// column. Cells with no contributing order hold an explicit 0.
type CustomerRow struct {
	CustomerID   int                `json:"cod_cliente"`
	CustomerName string             `json:"nome_cliente"`
	Values       map[string]float64 `json:"values"`
}

// FlatTable is a pivoted monthly aggregate flattened into named columns.
// Columns are chronological; Months runs parallel to Columns. Rows are
// ordered by customer id so repeated builds yield identical output.
type FlatTable struct {
	Tag     Tag               `json:"-"`
	Columns []string          `json:"columns"`
	Months  []model.YearMonth `json:"-"`
	Rows    []*CustomerRow    `json:"rows"`

	index map[int]*CustomerRow
}

// Empty reports whether the table has no rows.
func (t *FlatTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Row finds a customer's row.
func (t *FlatTable) Row(customerID int) (*CustomerRow, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.index[customerID]
	return row, ok
}

// HasColumn reports whether a flattened column exists in the table.
func (t *FlatTable) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ByCustomer builds the flattened monthly pivot for one tag: filter lines to
// the tag's operation category, deduplicate to order level (callers may pass
// line-level input), pivot per (customer id, name) across the observed
// (year, month) pairs, then flatten the column header into the tag's named
// columns. Zero matching rows yields an empty table, never an error.
func ByCustomer(lines []model.OrderLine, tag Tag, sets model.CodeSets) *FlatTable {
	orders := dataset.DedupByOrder(FilterByCategory(lines, tag.Category(), sets))

	observed := make(map[model.YearMonth]bool)
	index := make(map[int]*CustomerRow)
	var rows []*CustomerRow

	for _, order := range orders {
		ym := model.YearMonth{Year: order.Year, Month: order.Month}
		observed[ym] = true

		row, ok := index[order.CustomerID]
		if !ok {
			row = &CustomerRow{
				CustomerID:   order.CustomerID,
				CustomerName: order.CustomerName,
				Values:       make(map[string]float64),
			}
			index[order.CustomerID] = row
			rows = append(rows, row)
		}
		row.Values[tag.ColumnName(ym)] += tag.metric(order)
	}

	months := make([]model.YearMonth, 0, len(observed))
	for ym := range observed {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	columns := make([]string, 0, len(months))
	for _, ym := range months {
		columns = append(columns, tag.ColumnName(ym))
	}

	// Structurally absent cells become explicit zeros.
	for _, row := range rows {
		for _, col := range columns {
			if _, ok := row.Values[col]; !ok {
				row.Values[col] = 0
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerID < rows[j].CustomerID })

	return &FlatTable{
		Tag:     tag,
		Columns: columns,
		Months:  months,
		Rows:    rows,
		index:   index,
	}
}

// FilterByCategory keeps lines whose nop code classifies into the category.
// Classification is recomputed from the code sets on every call rather than
// stored on the row, so a code-set change stays consistent everywhere.
func FilterByCategory(lines []model.OrderLine, category model.OperationCategory, sets model.CodeSets) []model.OrderLine {
	var kept []model.OrderLine
	for _, line := range lines {
		if sets.Classify(line.Nop) == category {
			kept = append(kept, line)
		}
	}
	return kept
}
