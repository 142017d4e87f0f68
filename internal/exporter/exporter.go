// Package exporter externalizes the master table as CSV (the historical
// externalization format) or as an XLSX workbook.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/devkami/kami-sales-dashboard/internal/aggregate"
)

// Head attribute columns, in export order. Value columns follow in the
// master table's own column order.
var headColumns = []string{
	"cod_cliente", "nome_cliente",
	"cod_colaborador", "nome_colaborador",
	"ramo_atividade", "uf", "cidade", "bairro", "cep",
	"cod_situacao", "desc_situacao",
}

// headerRow is the full flattened header of an export.
func headerRow(master *aggregate.MasterTable) []string {
	header := make([]string, 0, len(headColumns)+len(master.Columns))
	header = append(header, headColumns...)
	header = append(header, master.Columns...)
	return header
}

// recordRow flattens one master record in header order.
func recordRow(master *aggregate.MasterTable, r *aggregate.MasterRecord) []string {
	row := make([]string, 0, len(headColumns)+len(master.Columns))
	row = append(row,
		strconv.Itoa(r.CustomerID), r.CustomerName,
		strconv.Itoa(r.SalespersonID), r.SalespersonName,
		r.ActivitySector, r.State, r.City, r.District, r.PostalCode,
		strconv.Itoa(r.StatusCode), r.StatusName,
	)
	for _, col := range master.Columns {
		row = append(row, formatValue(r.Values[col]))
	}
	return row
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCSV writes the master table as a semicolon-delimited file, matching
// the source-side export convention.
func WriteCSV(master *aggregate.MasterTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(headerRow(master)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range master.Records {
		if err := w.Write(recordRow(master, r)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// BuildWorkbook renders the master table into a single-sheet workbook.
func BuildWorkbook(master *aggregate.MasterTable) (*excelize.File, error) {
	const sheet = "Master"

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := headerRow(master)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, r := range master.Records {
		rowIdx := i + 2
		cells := make([]interface{}, 0, len(header))
		cells = append(cells,
			r.CustomerID, r.CustomerName,
			r.SalespersonID, r.SalespersonName,
			r.ActivitySector, r.State, r.City, r.District, r.PostalCode,
			r.StatusCode, r.StatusName,
		)
		for _, col := range master.Columns {
			cells = append(cells, r.Values[col])
		}

		start, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX writes the master table workbook to disk.
func WriteXLSX(master *aggregate.MasterTable, path string) error {
	f, err := BuildWorkbook(master)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
