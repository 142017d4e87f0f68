package sanitize

import (
	"testing"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

func TestDigitsToInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"12345", 12345},
		{"AB12-34", 1234},
		{"PED-007", 7},
		{"", 0},
		{"sem codigo", 0},
	}
	for _, c := range cases {
		if got := DigitsToInt(c.in); got != c.want {
			t.Fatalf("DigitsToInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToInt_FloatExport(t *testing.T) {
	t.Parallel()

	if got := ToInt("12.0"); got != 12 {
		t.Fatalf("ToInt(12.0) = %d, want 12", got)
	}
	if got := ToInt(" 7 "); got != 7 {
		t.Fatalf("ToInt( 7 ) = %d, want 7", got)
	}
	if got := ToInt("abc"); got != 0 {
		t.Fatalf("ToInt(abc) = %d, want 0", got)
	}
	if got := ToInt(""); got != 0 {
		t.Fatalf("ToInt empty = %d, want 0", got)
	}
}

func TestCommaFloat(t *testing.T) {
	t.Parallel()

	if got := CommaFloat("1234,56"); got != 1234.56 {
		t.Fatalf("CommaFloat(1234,56) = %v, want 1234.56", got)
	}
	if got := CommaFloat("99.5"); got != 99.5 {
		t.Fatalf("CommaFloat(99.5) = %v, want 99.5", got)
	}
	if got := CommaFloat("n/a"); got != 0 {
		t.Fatalf("CommaFloat(n/a) = %v, want 0", got)
	}
}

func TestPostalPrefix(t *testing.T) {
	t.Parallel()

	if got := PostalPrefix("01310-100"); got != "01310" {
		t.Fatalf("PostalPrefix = %q, want 01310", got)
	}
	if got := PostalPrefix("CEP 01310"); got != "" {
		t.Fatalf("PostalPrefix non-leading digits = %q, want empty", got)
	}
	if got := PostalPrefix(""); got != "" {
		t.Fatalf("PostalPrefix empty = %q, want empty", got)
	}
}

func TestRow_CoercesByColumnKind(t *testing.T) {
	t.Parallel()

	line := Row(Record{
		model.ColOrderID:      "PED-123",
		model.ColCustomerID:   "45",
		model.ColCustomerName: "  Cliente A  ",
		model.ColCompanyID:    "2.0",
		model.ColYear:         "2024",
		model.ColMonth:        "3",
		model.ColNetValue:     "150,75",
		model.ColGrossValue:   "200.00",
		model.ColDiscount:     "",
		model.ColPostalCode:   "01310-100",
		model.ColNop:          " VENDA ",
		model.ColInvoiceDate:  "15/03/2024",
	})

	if line.OrderID != 123 || line.CustomerID != 45 {
		t.Fatalf("unexpected ids: %d %d", line.OrderID, line.CustomerID)
	}
	if line.CustomerName != "Cliente A" {
		t.Fatalf("unexpected name: %q", line.CustomerName)
	}
	if line.CompanyID != 2 || line.Year != 2024 || line.Month != 3 {
		t.Fatalf("unexpected ints: %d %d %d", line.CompanyID, line.Year, line.Month)
	}
	if line.NetValue != 150.75 || line.GrossValue != 200 || line.Discount != 0 {
		t.Fatalf("unexpected values: %v %v %v", line.NetValue, line.GrossValue, line.Discount)
	}
	if line.PostalCode != "01310" {
		t.Fatalf("unexpected postal: %q", line.PostalCode)
	}
	if line.Nop != "VENDA" || line.InvoiceDate != "15/03/2024" {
		t.Fatalf("unexpected passthrough: %q %q", line.Nop, line.InvoiceDate)
	}
}

func TestRow_MissingColumnsDegradeToZero(t *testing.T) {
	t.Parallel()

	line := Row(Record{})
	if line.OrderID != 0 || line.NetValue != 0 || line.PostalCode != "" || line.CustomerName != "" {
		t.Fatalf("empty record should coerce to zero values: %+v", line)
	}
}
