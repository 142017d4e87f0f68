package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/aggregate"
)

func sampleMaster() *aggregate.MasterTable {
	return &aggregate.MasterTable{
		Columns: []string{"jan_2024_liquido", "qtd_total_compras"},
		Records: []*aggregate.MasterRecord{
			{
				CustomerID: 1, CustomerName: "Cliente A",
				SalespersonID: 7, SalespersonName: "V1",
				State: "SP", City: "São Paulo", PostalCode: "01310",
				Values: map[string]float64{
					"jan_2024_liquido":  100.5,
					"qtd_total_compras": 2,
				},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "master.csv")
	if err := WriteCSV(sampleMaster(), path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 record", len(rows))
	}

	header := rows[0]
	if header[0] != "cod_cliente" || header[len(header)-1] != "qtd_total_compras" {
		t.Fatalf("unexpected header: %v", header)
	}
	record := rows[1]
	if record[0] != "1" || record[1] != "Cliente A" {
		t.Fatalf("unexpected record head: %v", record)
	}
	if record[len(record)-2] != "100.50" || record[len(record)-1] != "2" {
		t.Fatalf("unexpected values: %v", record)
	}
}

func TestBuildWorkbook(t *testing.T) {
	t.Parallel()

	f, err := BuildWorkbook(sampleMaster())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Master", "A1")
	if err != nil {
		t.Fatalf("read cell failed: %v", err)
	}
	if name != "cod_cliente" {
		t.Fatalf("A1 = %q, want cod_cliente", name)
	}
	customer, _ := f.GetCellValue("Master", "B2")
	if customer != "Cliente A" {
		t.Fatalf("B2 = %q, want Cliente A", customer)
	}
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "master.xlsx")
	if err := WriteXLSX(sampleMaster(), path); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestDownloadStore(t *testing.T) {
	t.Parallel()

	s := NewDownloadStore()
	token := s.Put("/tmp/a.csv", "a.csv", time.Minute)

	d, ok := s.Get(token)
	if !ok || d.Filename != "a.csv" {
		t.Fatalf("token should resolve: %+v", d)
	}

	s.Delete(token)
	if _, ok := s.Get(token); ok {
		t.Fatalf("deleted token should not resolve")
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("unknown token should not resolve")
	}
}

func TestDownloadStore_Expiry(t *testing.T) {
	t.Parallel()

	s := NewDownloadStore()
	token := s.Put("/tmp/b.csv", "b.csv", -time.Second)
	if _, ok := s.Get(token); ok {
		t.Fatalf("expired token should not resolve")
	}
}
