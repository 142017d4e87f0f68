// Package filter applies the dashboard's multi-dimensional selection to an
// order table: four sentinel-aware categorical dimensions ANDed together,
// then a mandatory inclusive invoice-date range.
package filter

import (
	"errors"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// ErrPeriodNotReady signals that the date range is incomplete. It is a
// "skip this update" condition for the caller, not a user-visible error:
// no rows are returned and no output should be refreshed.
var ErrPeriodNotReady = errors.New("filter: start or end date not set")

// Invoice dates arrive day-first ("03/04/2024" is 3 April). ISO dates from
// database exports are tolerated as fallbacks.
var invoiceDateLayouts = []string{
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseInvoiceDate parses a raw invoice date with day-first precedence.
func ParseInvoiceDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Apply narrows orders to the criteria. Dimension order does not affect the
// result; each mask is independent. Rows with a missing or unparsable
// invoice date are dropped before the range check. Both range ends are
// inclusive. A missing start or end date aborts with ErrPeriodNotReady.
func Apply(orders []model.Order, criteria model.FilterCriteria) ([]model.Order, error) {
	if criteria.StartDate.IsZero() || criteria.EndDate.IsZero() {
		return nil, ErrPeriodNotReady
	}

	companies := intMask(criteria.Companies)
	sectors := stringMask(criteria.Sectors)
	states := stringMask(criteria.States)
	salespeople := intMask(criteria.Salespeople)

	start := truncateToDay(criteria.StartDate)
	end := truncateToDay(criteria.EndDate)

	var filtered []model.Order
	for _, order := range orders {
		if !companies.keep(order.CompanyID) {
			continue
		}
		if !sectors.keep(order.ActivitySector) {
			continue
		}
		if !states.keep(order.State) {
			continue
		}
		if !salespeople.keep(order.SalespersonID) {
			continue
		}
		invoiced, ok := ParseInvoiceDate(order.InvoiceDate)
		if !ok {
			continue
		}
		day := truncateToDay(invoiced)
		if day.Before(start) || day.After(end) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type mask[T comparable] struct {
	all      bool
	selected map[T]bool
}

func (m mask[T]) keep(v T) bool {
	return m.all || m.selected[v]
}

func intMask(selected []int) mask[int] {
	if model.UnrestrictedInts(selected) {
		return mask[int]{all: true}
	}
	set := make(map[int]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}
	return mask[int]{selected: set}
}

func stringMask(selected []string) mask[string] {
	if model.UnrestrictedStrings(selected) {
		return mask[string]{all: true}
	}
	set := make(map[string]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}
	return mask[string]{selected: set}
}
