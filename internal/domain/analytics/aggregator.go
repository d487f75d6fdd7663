// Package analytics aggregates raw order records into the derived views
// the admin back-office renders: overall summary counters, a per-day
// revenue trend, and a top-products revenue ranking.
//
// Every operation is a pure function of its inputs: no I/O, no shared
// state, no mutation of the input slices. Malformed individual records
// never abort an aggregation; they degrade per record (an unparseable
// date skips the order, a missing price counts as 0, a missing quantity
// as 1).
package analytics

import (
	"fmt"
	"sort"
	"time"
)

const (
	// DefaultTrendWindow is the number of most recent distinct days kept
	// in the revenue trend.
	DefaultTrendWindow = 30

	// DefaultTopProducts is the size of the top-products ranking.
	DefaultTopProducts = 6
)

// Summary holds the headline counters for the admin dashboard.
type Summary struct {
	ProductCount int     `json:"products"`
	UserCount    int     `json:"users"`
	OrderCount   int     `json:"orders"`
	TotalRevenue float64 `json:"revenue"`
}

// TrendPoint is one calendar day in the revenue trend.
type TrendPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ProductRevenue is one entry of the top-products ranking.
type ProductRevenue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Percent float64 `json:"percent"`
}

// ComputeSummary derives the headline counters from the order list.
// Product and user counts are the sizes of the collaborator collections
// and are passed through untouched. TotalRevenue sums the order-level
// Amount field only; absent amounts count as 0 and there is no fallback
// to Total here, so the order-level amount stays the single source of
// truth even when it disagrees with the line items.
func ComputeSummary(orders []Order, productCount, userCount int) Summary {
	var revenue float64
	for i := range orders {
		if orders[i].Amount != nil {
			revenue += *orders[i].Amount
		}
	}
	return Summary{
		ProductCount: productCount,
		UserCount:    userCount,
		OrderCount:   len(orders),
		TotalRevenue: revenue,
	}
}

// ComputeRevenueTrend buckets orders by calendar day and returns the most
// recent windowDays distinct days that saw at least one order, in
// ascending date order. Orders whose date does not parse are skipped
// entirely. Per-day revenue uses Amount, falling back to Total, then 0.
// A windowDays <= 0 selects DefaultTrendWindow.
func ComputeRevenueTrend(orders []Order, windowDays int) []TrendPoint {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindow
	}

	revenueByDay := make(map[string]float64)
	countByDay := make(map[string]int)
	for i := range orders {
		day, ok := dayKey(orders[i].Date)
		if !ok {
			continue
		}
		revenueByDay[day] += orderRevenue(&orders[i])
		countByDay[day]++
	}

	days := make([]string, 0, len(revenueByDay))
	for day := range revenueByDay {
		days = append(days, day)
	}
	// Lexicographic order is chronological for zero-padded day keys.
	sort.Strings(days)
	if len(days) > windowDays {
		days = days[len(days)-windowDays:]
	}

	trend := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		trend = append(trend, TrendPoint{
			Date:    day,
			Revenue: revenueByDay[day],
			Orders:  countByDay[day],
		})
	}
	return trend
}

// ComputeTopProducts ranks products by revenue accumulated from line
// items (unit price times quantity) across all orders and returns the top
// topN with their share of the ranked subtotal. The product identifier is
// resolved as item.ID, then item.ProductID, then item.Ref; exact revenue
// ties keep the identifier's first-seen order. Names come from the
// catalog lookup, with "Product {id}" synthesized for unknown ids. A
// topN <= 0 selects DefaultTopProducts.
func ComputeTopProducts(orders []Order, products []Product, topN int) []ProductRevenue {
	if topN <= 0 {
		topN = DefaultTopProducts
	}

	revenueByID := make(map[string]float64)
	var seen []string // identifiers in first-seen order
	for i := range orders {
		for _, item := range orders[i].Items {
			id := itemProductID(item)
			if _, ok := revenueByID[id]; !ok {
				seen = append(seen, id)
			}
			revenueByID[id] += lineRevenue(item)
		}
	}

	// Stable sort over first-seen order makes tie-breaking deterministic.
	sort.SliceStable(seen, func(a, b int) bool {
		return revenueByID[seen[a]] > revenueByID[seen[b]]
	})
	if len(seen) > topN {
		seen = seen[:topN]
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var subtotal float64
	for _, id := range seen {
		subtotal += revenueByID[id]
	}
	// Guard against an all-zero subtotal; the resulting percentages are
	// degenerate and callers treat them as "no meaningful distribution".
	divisor := subtotal
	if divisor == 0 {
		divisor = 1
	}

	top := make([]ProductRevenue, 0, len(seen))
	for _, id := range seen {
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("Product %s", id)
		}
		top = append(top, ProductRevenue{
			ID:      id,
			Name:    name,
			Revenue: revenueByID[id],
			Percent: revenueByID[id] / divisor * 100,
		})
	}
	return top
}

// dayKey normalizes a raw order timestamp to its UTC YYYY-MM-DD component.
func dayKey(raw string) (string, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("2006-01-02"), true
		}
	}
	return "", false
}

// orderRevenue is the per-order figure used by the trend: amount first,
// then total, then 0.
func orderRevenue(o *Order) float64 {
	switch {
	case o.Amount != nil:
		return *o.Amount
	case o.Total != nil:
		return *o.Total
	default:
		return 0
	}
}

// itemProductID resolves the product reference of a line item. Inconsistent
// field naming in stored orders forces a precedence: id, productId, _id.
func itemProductID(item LineItem) string {
	if item.ID != "" {
		return item.ID
	}
	if item.ProductID != "" {
		return item.ProductID
	}
	return item.Ref
}

// lineRevenue is price times quantity with the store's clamping rules:
// missing price counts as 0, missing quantity as 1.
func lineRevenue(item LineItem) float64 {
	price := 0.0
	if item.Price != nil {
		price = *item.Price
	}
	qty := 1
	if item.Quantity != nil {
		qty = *item.Quantity
	}
	return price * float64(qty)
}
