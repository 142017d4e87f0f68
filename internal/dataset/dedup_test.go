package dataset

import (
	"testing"

	"github.com/devkami/kami-sales-dashboard/internal/model"
)

func TestDedupByOrder_FirstWins(t *testing.T) {
	t.Parallel()

	lines := []model.OrderLine{
		{OrderID: 1, CustomerID: 10, NetValue: 100},
		{OrderID: 1, CustomerID: 10, NetValue: 999}, // later line of the same order
		{OrderID: 2, CustomerID: 11, NetValue: 50},
	}

	orders := DedupByOrder(lines)
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].OrderID != 1 || orders[0].NetValue != 100 {
		t.Fatalf("first occurrence should win: %+v", orders[0])
	}
	if orders[1].OrderID != 2 {
		t.Fatalf("input order should be preserved: %+v", orders[1])
	}
}

func TestDedupByOrder_Idempotent(t *testing.T) {
	t.Parallel()

	lines := []model.OrderLine{
		{OrderID: 1, NetValue: 100},
		{OrderID: 1, NetValue: 200},
		{OrderID: 3, NetValue: 300},
	}
	once := DedupByOrder(lines)
	twice := DedupByOrder(once)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("row %d changed on second dedup", i)
		}
	}
}

func TestDedupByCustomer_FirstWins(t *testing.T) {
	t.Parallel()

	lines := []model.OrderLine{
		{OrderID: 1, CustomerID: 10, CustomerName: "A"},
		{OrderID: 2, CustomerID: 10, CustomerName: "A renamed"},
		{OrderID: 3, CustomerID: 11, CustomerName: "B"},
	}
	heads := DedupByCustomer(lines)
	if len(heads) != 2 {
		t.Fatalf("got %d heads, want 2", len(heads))
	}
	if heads[0].CustomerName != "A" {
		t.Fatalf("first occurrence should win: %+v", heads[0])
	}
}

func TestHolder_EmptyBeforeRefresh(t *testing.T) {
	t.Parallel()

	holder := NewHolder(func() ([]model.OrderLine, error) {
		return []model.OrderLine{{OrderID: 1}}, nil
	})

	snap := holder.Current()
	if snap.ID != "" || len(snap.Lines) != 0 || len(snap.Orders) != 0 {
		t.Fatalf("holder should start empty: %+v", snap)
	}

	refreshed, err := holder.Refresh()
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.ID == "" || len(refreshed.Orders) != 1 {
		t.Fatalf("unexpected snapshot after refresh: %+v", refreshed)
	}
	if holder.Current().ID != refreshed.ID {
		t.Fatalf("current should be the refreshed snapshot")
	}
}

func TestHolder_RefreshSwapsWholesale(t *testing.T) {
	t.Parallel()

	var rows []model.OrderLine
	holder := NewHolder(func() ([]model.OrderLine, error) {
		return rows, nil
	})

	rows = []model.OrderLine{{OrderID: 1}, {OrderID: 1}, {OrderID: 2}}
	first, err := holder.Refresh()
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if len(first.Lines) != 3 || len(first.Orders) != 2 {
		t.Fatalf("unexpected first snapshot: %d lines, %d orders", len(first.Lines), len(first.Orders))
	}

	rows = []model.OrderLine{{OrderID: 9}}
	second, err := holder.Refresh()
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("refresh should produce a new snapshot id")
	}
	if len(holder.Current().Orders) != 1 {
		t.Fatalf("current should reflect the new load")
	}
}
