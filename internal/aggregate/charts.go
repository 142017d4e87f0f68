package aggregate

import (
	"sort"
	"strconv"
	"time"

	"github.com/devkami/kami-sales-dashboard/internal/filter"
	"github.com/devkami/kami-sales-dashboard/internal/model"
)

// Chart feed tables. Each function returns exactly the columns one visual
// widget consumes (date+value for trend lines, category+value for shares,
// name+value for rankings); rendering belongs to the external UI.

// DatePoint is one point of a date-keyed trend line.
type DatePoint struct {
	Date  string  `json:"dt_faturamento"`
	Value float64 `json:"valor_nota"`
}

// Series is a trend-line table plus the mean the widget draws as a
// reference line.
type Series struct {
	Points []DatePoint `json:"points"`
	Mean   float64     `json:"mean"`
}

// DailySeries sums net value per invoice date, date-ascending.
func DailySeries(orders []model.Order) Series {
	type bucket struct {
		raw string
		day time.Time
		sum float64
	}
	index := make(map[string]*bucket)
	var buckets []*bucket
	for _, order := range orders {
		day, ok := filter.ParseInvoiceDate(order.InvoiceDate)
		if !ok {
			continue
		}
		b, seen := index[order.InvoiceDate]
		if !seen {
			b = &bucket{raw: order.InvoiceDate, day: day}
			index[order.InvoiceDate] = b
			buckets = append(buckets, b)
		}
		b.sum += order.NetValue
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].day.Before(buckets[j].day) })

	series := Series{Points: make([]DatePoint, 0, len(buckets))}
	total := 0.0
	for _, b := range buckets {
		series.Points = append(series.Points, DatePoint{Date: b.raw, Value: b.sum})
		total += b.sum
	}
	if len(series.Points) > 0 {
		series.Mean = total / float64(len(series.Points))
	}
	return series
}

// MonthPoint is one point of the monthly trend line.
type MonthPoint struct {
	Label string  `json:"ano_mes"`
	Year  int     `json:"ano"`
	Month int     `json:"mes"`
	Value float64 `json:"valor_nota"`
}

// MonthlySeries sums net value per (year, month), chronological, with the
// mean over the charted months.
func MonthlySeries(orders []model.Order) ([]MonthPoint, float64) {
	sums := make(map[model.YearMonth]float64)
	for _, order := range orders {
		sums[model.YearMonth{Year: order.Year, Month: order.Month}] += order.NetValue
	}

	months := make([]model.YearMonth, 0, len(sums))
	for ym := range sums {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	points := make([]MonthPoint, 0, len(months))
	total := 0.0
	for _, ym := range months {
		points = append(points, MonthPoint{
			Label: MonthAbbr(ym.Month) + "/" + strconv.Itoa(ym.Year),
			Year:  ym.Year,
			Month: ym.Month,
			Value: sums[ym],
		})
		total += sums[ym]
	}
	mean := 0.0
	if len(points) > 0 {
		mean = total / float64(len(points))
	}
	return points, mean
}

// ShareRow is one slice of a share-of-total breakdown.
type ShareRow struct {
	BrandID   int     `json:"cod_marca"`
	BrandName string  `json:"desc_marca"`
	Value     float64 `json:"valor_nota"`
}

// BrandShare sums net value per brand, largest first.
func BrandShare(orders []model.Order) []ShareRow {
	type key struct {
		id   int
		name string
	}
	sums := make(map[key]float64)
	for _, order := range orders {
		sums[key{order.BrandID, order.BrandName}] += order.NetValue
	}

	rows := make([]ShareRow, 0, len(sums))
	for k, v := range sums {
		rows = append(rows, ShareRow{BrandID: k.id, BrandName: k.name, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].BrandID < rows[j].BrandID
	})
	return rows
}

// RankRow is one salesperson of a ranking or indicator table.
type RankRow struct {
	SalespersonID   int     `json:"cod_colaborador"`
	SalespersonName string  `json:"nome_colaborador"`
	Value           float64 `json:"valor_nota"`
}

// SalespersonTotals sums net value per salesperson, largest first.
func SalespersonTotals(orders []model.Order) []RankRow {
	type key struct {
		id   int
		name string
	}
	sums := make(map[key]float64)
	for _, order := range orders {
		sums[key{order.SalespersonID, order.SalespersonName}] += order.NetValue
	}

	rows := make([]RankRow, 0, len(sums))
	for k, v := range sums {
		rows = append(rows, RankRow{SalespersonID: k.id, SalespersonName: k.name, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].SalespersonID < rows[j].SalespersonID
	})
	return rows
}

// TopSalespeople keeps the top n of the salesperson ranking.
func TopSalespeople(orders []model.Order, n int) []RankRow {
	rows := SalespersonTotals(orders)
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// SalespersonPoint is one point of the per-salesperson trend lines.
type SalespersonPoint struct {
	Date            string  `json:"dt_faturamento"`
	SalespersonID   int     `json:"cod_colaborador"`
	SalespersonName string  `json:"nome_colaborador"`
	Value           float64 `json:"valor_nota"`
}

// SalespersonDailySeries sums net value per (invoice date, salesperson) and
// also returns the overall daily total the widget overlays.
func SalespersonDailySeries(orders []model.Order) ([]SalespersonPoint, []DatePoint) {
	type key struct {
		raw  string
		id   int
		name string
	}
	sums := make(map[key]float64)
	days := make(map[string]time.Time)
	for _, order := range orders {
		day, ok := filter.ParseInvoiceDate(order.InvoiceDate)
		if !ok {
			continue
		}
		days[order.InvoiceDate] = day
		sums[key{order.InvoiceDate, order.SalespersonID, order.SalespersonName}] += order.NetValue
	}

	points := make([]SalespersonPoint, 0, len(sums))
	for k, v := range sums {
		points = append(points, SalespersonPoint{
			Date: k.raw, SalespersonID: k.id, SalespersonName: k.name, Value: v,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		di, dj := days[points[i].Date], days[points[j].Date]
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return points[i].SalespersonID < points[j].SalespersonID
	})

	totals := DailySeries(orders)
	return points, totals.Points
}

// TopSalesperson is the leader indicator: the best salesperson's total plus
// the mean across salespeople as the delta reference.
func TopSalesperson(orders []model.Order) (RankRow, float64, bool) {
	rows := SalespersonTotals(orders)
	if len(rows) == 0 {
		return RankRow{}, 0, false
	}
	total := 0.0
	for _, r := range rows {
		total += r.Value
	}
	return rows[0], total / float64(len(rows)), true
}

// AverageTicket is net value sum divided by order count.
func AverageTicket(orders []model.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	return TotalSales(orders) / float64(len(orders))
}

// TotalSales is the net value sum over the table.
func TotalSales(orders []model.Order) float64 {
	total := 0.0
	for _, order := range orders {
		total += order.NetValue
	}
	return total
}
