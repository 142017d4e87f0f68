// Package sanitize normalizes raw string columns of the order-line table
// into typed numeric values. Unparsable or missing input degrades to zero;
// this silent-zero coercion is an externally observed behaviour that callers
// depend on, so it lives behind these named functions rather than inline at
// call sites. A stricter mode can be substituted here without touching them.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

var (
	digitsRe        = regexp.MustCompile(`\d+`)
	leadingDigitsRe = regexp.MustCompile(`^\d+`)
)

// DigitsToInt strips every non-digit character and parses the remaining
// digit runs as one integer. "AB12-34" -> 1234. Missing or digitless -> 0.
func DigitsToInt(s string) int {
	joined := strings.Join(digitsRe.FindAllString(s, -1), "")
	if joined == "" {
		return 0
	}
	n, err := strconv.Atoi(joined)
	if err != nil {
		return 0
	}
	return n
}

// ToInt parses a plain integer column. Missing or unparsable -> 0.
func ToInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Values exported as "12.0" still count as integers.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// CommaFloat parses a float column that may use a decimal comma.
// Missing or unparsable -> 0.
func CommaFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// PostalPrefix extracts the leading digit run of a postal code. No zero
// fill, no cast; the result may be empty and stays a string.
func PostalPrefix(s string) string {
	return leadingDigitsRe.FindString(strings.TrimSpace(s))
}

// Record is one raw row keyed by source column name.
type Record map[string]string

// Row coerces one raw record into a typed order line. Each column uses the
// coercion its kind declares; untargeted columns pass through verbatim.
func Row(rec Record) model.OrderLine {
	return model.OrderLine{
		// string-to-int columns: digit extraction
		OrderID:       DigitsToInt(rec[model.ColOrderID]),
		CustomerID:    DigitsToInt(rec[model.ColCustomerID]),
		SalespersonID: DigitsToInt(rec[model.ColSalespersonID]),
		StatusCode:    DigitsToInt(rec[model.ColStatusCode]),

		// plain integer columns
		BrandID:        ToInt(rec[model.ColBrandID]),
		ProductGroupID: ToInt(rec[model.ColProductGroupID]),
		ParentGroupID:  ToInt(rec[model.ColParentGroupID]),
		CompanyID:      ToInt(rec[model.ColCompanyID]),
		Year:           ToInt(rec[model.ColYear]),
		Month:          ToInt(rec[model.ColMonth]),

		// float columns: decimal comma tolerated
		NetValue:   CommaFloat(rec[model.ColNetValue]),
		GrossValue: CommaFloat(rec[model.ColGrossValue]),
		Discount:   CommaFloat(rec[model.ColDiscount]),

		// postal code: leading digit run only
		PostalCode: PostalPrefix(rec[model.ColPostalCode]),

		// pass-through columns
		CustomerName:    strings.TrimSpace(rec[model.ColCustomerName]),
		SalespersonName: strings.TrimSpace(rec[model.ColSalespersonName]),
		BrandName:       strings.TrimSpace(rec[model.ColBrandName]),
		ProductGroup:    strings.TrimSpace(rec[model.ColProductGroup]),
		ParentGroup:     strings.TrimSpace(rec[model.ColParentGroup]),
		ActivitySector:  strings.TrimSpace(rec[model.ColActivitySector]),
		State:           strings.TrimSpace(rec[model.ColState]),
		City:            strings.TrimSpace(rec[model.ColCity]),
		District:        strings.TrimSpace(rec[model.ColDistrict]),
		StatusName:      strings.TrimSpace(rec[model.ColStatusName]),
		Nop:             strings.TrimSpace(rec[model.ColNop]),
		InvoiceDate:     strings.TrimSpace(rec[model.ColInvoiceDate]),
	}
}

// Rows coerces a whole raw table.
func Rows(recs []Record) []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(recs))
	for _, rec := range recs {
		lines = append(lines, Row(rec))
	}
	return lines
}
