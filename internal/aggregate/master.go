package aggregate

import (
	"sort"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/dataset"
	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// Rolling-window scalar column names, kept identical to the exported
// master-table schema the dashboard's consumers already read.
const (
	ColTotalPurchases    = "qtd_total_compras"
	ColHalfYearPurchases = "qtd_compras_semestre"
	ColHalfYearNet       = "total_compras_semestre"
	ColQuarterNet        = "total_compras_trimestre"
	ColBimesterNet       = "total_compras_bimestre"
)

// MasterRecord is one customer of the master table: head attributes merged
// with every flattened monthly column and the rolling-window scalars.
type MasterRecord struct {
	CustomerID      int    `json:"cod_cliente"`
	CustomerName    string `json:"nome_cliente"`
	SalespersonID   int    `json:"cod_colaborador"`
	SalespersonName string `json:"nome_colaborador"`
	ActivitySector  string `json:"ramo_atividade"`
	State           string `json:"uf"`
	City            string `json:"cidade"`
	District        string `json:"bairro"`
	PostalCode      string `json:"cep"`
	StatusCode      int    `json:"cod_situacao"`
	StatusName      string `json:"desc_situacao"`

	// Values holds the flattened monthly columns of every aggregate plus
	// the rolling scalars; keys absent for a customer mean 0.
	Values map[string]float64 `json:"values"`
}

// MasterTable is the full per-customer rollup. Columns lists every value
// column in export order; Records are ordered by customer id.
type MasterTable struct {
	Columns []string        `json:"columns"`
	Records []*MasterRecord `json:"records"`
}

// Empty reports whether the master table has no records.
func (t *MasterTable) Empty() bool {
	return t == nil || len(t.Records) == 0
}

// BuildMaster rebuilds the master table in full from the current line-level
// table: one head row per customer (first-wins), six tagged aggregate tables
// concatenated side by side aligned on customer id, with the four rolling
// scalars attached to the net table's position. Customers present in the
// head but absent from an aggregate contribute zeros, never dropped rows.
// Pure recomputation: building twice from the same input yields identical
// output.
func BuildMaster(lines []model.OrderLine, sets model.CodeSets, startingYear int, now time.Time) *MasterTable {
	netTable := ByCustomer(lines, TagNetSum, sets)
	discountTable := ByCustomer(lines, TagDiscountSum, sets)
	grossTable := ByCustomer(lines, TagGrossSum, sets)
	subsidizedTable := ByCustomer(lines, TagSubsidizedSum, sets)
	trousseauTable := ByCustomer(lines, TagTrousseauSum, sets)
	countTable := ByCustomer(lines, TagSaleCount, sets)

	aggregates := []*FlatTable{
		netTable, discountTable, grossTable,
		subsidizedTable, trousseauTable, countTable,
	}

	allEmpty := true
	for _, agg := range aggregates {
		if !agg.Empty() {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return &MasterTable{}
	}

	// Rolling windows: counts over the sale-count pivot, sums over the net
	// pivot, all at month granularity.
	allStart, allEnd := allTimeWindow(now, startingYear)
	halfStart, halfEnd := trailingWindow(now, halfYearDays)
	quarterStart, quarterEnd := trailingWindow(now, quarterDays)
	bimesterStart, bimesterEnd := trailingWindow(now, bimesterDays)

	totalPurchases := countTable.WindowSum(allStart, allEnd)
	halfPurchases := countTable.WindowSum(halfStart, halfEnd)
	halfNet := netTable.WindowSum(halfStart, halfEnd)
	quarterNet := netTable.WindowSum(quarterStart, quarterEnd)
	bimesterNet := netTable.WindowSum(bimesterStart, bimesterEnd)

	columns := make([]string, 0, 5)
	columns = append(columns, netTable.Columns...)
	columns = append(columns,
		ColTotalPurchases, ColHalfYearPurchases,
		ColHalfYearNet, ColQuarterNet, ColBimesterNet,
	)
	for _, agg := range aggregates[1:] {
		columns = append(columns, agg.Columns...)
	}

	var records []*MasterRecord
	for _, head := range dataset.DedupByCustomer(lines) {
		record := &MasterRecord{
			CustomerID:      head.CustomerID,
			CustomerName:    head.CustomerName,
			SalespersonID:   head.SalespersonID,
			SalespersonName: head.SalespersonName,
			ActivitySector:  head.ActivitySector,
			State:           head.State,
			City:            head.City,
			District:        head.District,
			PostalCode:      head.PostalCode,
			StatusCode:      head.StatusCode,
			StatusName:      head.StatusName,
			Values:          make(map[string]float64, len(columns)),
		}

		for _, agg := range aggregates {
			row, ok := agg.Row(head.CustomerID)
			if !ok {
				continue
			}
			for col, v := range row.Values {
				record.Values[col] = v
			}
		}

		record.Values[ColTotalPurchases] = totalPurchases[head.CustomerID]
		record.Values[ColHalfYearPurchases] = halfPurchases[head.CustomerID]
		record.Values[ColHalfYearNet] = halfNet[head.CustomerID]
		record.Values[ColQuarterNet] = quarterNet[head.CustomerID]
		record.Values[ColBimesterNet] = bimesterNet[head.CustomerID]

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].CustomerID < records[j].CustomerID })

	return &MasterTable{Columns: columns, Records: records}
}
