// Package dataset holds the immutable order-table snapshot the aggregation
// engine works on, plus the first-wins deduplication that turns line-level
// rows into order-level rows.
package dataset

import "github.com/devkami/kami-sales-dashboard/internal/model"

// DedupByOrder collapses line-level rows into one row per order id, keeping
// the first-encountered row in input order. Idempotent: deduplicating an
// already order-level table is a no-op. Callers must not rely on
// line-varying fields of the surviving row beyond the order id itself.
func DedupByOrder(lines []model.OrderLine) []model.Order {
	seen := make(map[int]bool, len(lines))
	orders := make([]model.Order, 0, len(lines))
	for _, line := range lines {
		if seen[line.OrderID] {
			continue
		}
		seen[line.OrderID] = true
		orders = append(orders, line)
	}
	return orders
}

// DedupByCustomer keeps the first-encountered row per customer id. Used for
// the master table's head rows.
func DedupByCustomer(lines []model.OrderLine) []model.Order {
	seen := make(map[int]bool, len(lines))
	rows := make([]model.Order, 0, len(lines))
	for _, line := range lines {
		if seen[line.CustomerID] {
			continue
		}
		seen[line.CustomerID] = true
		rows = append(rows, line)
	}
	return rows
}
