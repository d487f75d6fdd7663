package analytics

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

func TestComputeSummary(t *testing.T) {
	orders := []Order{
		{ID: "1", Amount: f(100)},
		{ID: "2", Amount: f(50)},
		{ID: "3"}, // missing amount counts as 0
	}

	got := ComputeSummary(orders, 12, 7)

	assert.Equal(t, 12, got.ProductCount)
	assert.Equal(t, 7, got.UserCount)
	assert.Equal(t, 3, got.OrderCount)
	assert.Equal(t, 150.0, got.TotalRevenue)
}

func TestComputeSummary_IgnoresTotalFallback(t *testing.T) {
	// Scenario: amount absent but total present. The summary is pinned to
	// the order-level amount field and does not fall back to total.
	orders := []Order{{ID: "1", Total: f(40)}}

	got := ComputeSummary(orders, 0, 0)

	assert.Equal(t, 0.0, got.TotalRevenue)
	assert.Equal(t, 1, got.OrderCount)
}

func TestComputeSummary_Empty(t *testing.T) {
	got := ComputeSummary(nil, 0, 0)
	assert.Equal(t, Summary{}, got)
}

func TestComputeSummary_IndependentOfLineItems(t *testing.T) {
	orders := []Order{{
		ID:     "1",
		Amount: f(10),
		Items:  []LineItem{{ID: "A", Price: f(500), Quantity: n(3)}},
	}}

	got := ComputeSummary(orders, 0, 0)

	assert.Equal(t, 10.0, got.TotalRevenue)
}

func TestComputeRevenueTrend(t *testing.T) {
	orders := []Order{
		{ID: "1", Date: "2024-01-01T09:30:00Z", Amount: f(100)},
		{ID: "2", Date: "2024-01-01T18:00:00Z", Amount: f(50)},
		{ID: "3", Date: "2024-01-02T08:00:00Z", Amount: f(75)},
	}

	got := ComputeRevenueTrend(orders, 30)

	require.Len(t, got, 2)
	assert.Equal(t, TrendPoint{Date: "2024-01-01", Revenue: 150, Orders: 2}, got[0])
	assert.Equal(t, TrendPoint{Date: "2024-01-02", Revenue: 75, Orders: 1}, got[1])
}

func TestComputeRevenueTrend_TotalFallback(t *testing.T) {
	orders := []Order{
		{ID: "1", Date: "2024-03-05T10:00:00Z", Total: f(40)},
		{ID: "2", Date: "2024-03-05T11:00:00Z"},
	}

	got := ComputeRevenueTrend(orders, 30)

	require.Len(t, got, 1)
	assert.Equal(t, 40.0, got[0].Revenue)
	assert.Equal(t, 2, got[0].Orders)
}

func TestComputeRevenueTrend_SkipsUnparseableDates(t *testing.T) {
	orders := []Order{
		{ID: "1", Date: "not-a-date", Amount: f(999)},
		{ID: "2", Date: "", Amount: f(999)},
		{ID: "3", Date: "2024-06-01T00:00:00Z", Amount: f(10)},
	}

	got := ComputeRevenueTrend(orders, 30)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, 10.0, got[0].Revenue)
}

func TestComputeRevenueTrend_WindowKeepsMostRecentDays(t *testing.T) {
	var orders []Order
	for day := 1; day <= 40; day++ {
		orders = append(orders, Order{
			ID:     fmt.Sprintf("o%d", day),
			Date:   fmt.Sprintf("2024-01-%02dT12:00:00Z", day%31+1),
			Amount: f(1),
		})
	}

	got := ComputeRevenueTrend(orders, 30)

	require.LessOrEqual(t, len(got), 30)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Date, got[i].Date, "dates must be strictly ascending")
	}
}

func TestComputeRevenueTrend_Empty(t *testing.T) {
	assert.Empty(t, ComputeRevenueTrend(nil, 30))
}

func TestComputeRevenueTrend_DefaultWindow(t *testing.T) {
	var orders []Order
	for m := 1; m <= 12; m++ {
		for d := 1; d <= 4; d++ {
			orders = append(orders, Order{
				Date:   fmt.Sprintf("2023-%02d-%02dT00:00:00Z", m, d),
				Amount: f(1),
			})
		}
	}

	got := ComputeRevenueTrend(orders, 0)

	assert.Len(t, got, DefaultTrendWindow)
	assert.Equal(t, "2023-12-04", got[len(got)-1].Date)
}

func TestComputeTopProducts(t *testing.T) {
	orders := []Order{{
		ID:   "1",
		Date: "2024-01-01T00:00:00Z",
		Items: []LineItem{
			{ID: "A", Price: f(10), Quantity: n(2)},
			{ID: "B", Price: f(5), Quantity: n(1)},
		},
	}}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 2)
	assert.Equal(t, ProductRevenue{ID: "A", Name: "Product A", Revenue: 20, Percent: 80}, got[0])
	assert.Equal(t, ProductRevenue{ID: "B", Name: "Product B", Revenue: 5, Percent: 20}, got[1])
}

func TestComputeTopProducts_NameEnrichment(t *testing.T) {
	orders := []Order{{Items: []LineItem{
		{ID: "A", Price: f(10)},
		{ID: "Z", Price: f(5)},
	}}}
	products := []Product{{ID: "A", Name: "Denim Jacket", Price: 10}}

	got := ComputeTopProducts(orders, products, 6)

	require.Len(t, got, 2)
	assert.Equal(t, "Denim Jacket", got[0].Name)
	assert.Equal(t, "Product Z", got[1].Name)
}

func TestComputeTopProducts_IdentifierPrecedence(t *testing.T) {
	orders := []Order{{Items: []LineItem{
		{ID: "A", ProductID: "ignored", Ref: "ignored", Price: f(1)},
		{ProductID: "B", Ref: "ignored", Price: f(1)},
		{Ref: "C", Price: f(1)},
	}}}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 3)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.ElementsMatch(t, []string{"A", "B", "C"}, ids)
}

func TestComputeTopProducts_ClampsMissingPriceAndQuantity(t *testing.T) {
	orders := []Order{{Items: []LineItem{
		{ID: "A", Price: f(7)},     // missing quantity counts as 1
		{ID: "B", Quantity: n(99)}, // missing price counts as 0
	}}}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, 7.0, got[0].Revenue)
	assert.Equal(t, 0.0, got[1].Revenue)
}

func TestComputeTopProducts_TopNLimitAndOrdering(t *testing.T) {
	var items []LineItem
	for i := 0; i < 10; i++ {
		items = append(items, LineItem{
			ID:    fmt.Sprintf("p%d", i),
			Price: f(float64(i + 1)),
		})
	}
	orders := []Order{{Items: items}}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Revenue, got[i].Revenue)
	}
	assert.Equal(t, "p9", got[0].ID)
}

func TestComputeTopProducts_TiesKeepFirstSeenOrder(t *testing.T) {
	orders := []Order{
		{Items: []LineItem{{ID: "first", Price: f(5)}}},
		{Items: []LineItem{{ID: "second", Price: f(5)}}},
		{Items: []LineItem{{ID: "third", Price: f(5)}}},
	}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "third", got[2].ID)
}

func TestComputeTopProducts_PercentSumsToHundred(t *testing.T) {
	orders := []Order{{Items: []LineItem{
		{ID: "A", Price: f(3), Quantity: n(3)},
		{ID: "B", Price: f(7), Quantity: n(2)},
		{ID: "C", Price: f(11)},
	}}}

	got := ComputeTopProducts(orders, nil, 6)

	var sum float64
	for _, p := range got {
		sum += p.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestComputeTopProducts_ZeroSubtotal(t *testing.T) {
	orders := []Order{{Items: []LineItem{{ID: "A"}, {ID: "B"}}}}

	got := ComputeTopProducts(orders, nil, 6)

	require.Len(t, got, 2)
	// Divisor is forced to 1, so the degenerate percentages stay finite.
	assert.Equal(t, 0.0, got[0].Percent)
	assert.Equal(t, 0.0, got[1].Percent)
}

func TestComputeTopProducts_Empty(t *testing.T) {
	assert.Empty(t, ComputeTopProducts(nil, nil, 6))
}

func TestAggregation_Idempotent(t *testing.T) {
	orders := []Order{
		{ID: "1", Date: "2024-01-01T10:00:00Z", Amount: f(100), Items: []LineItem{
			{ID: "A", Price: f(10), Quantity: n(2)},
		}},
		{ID: "2", Date: "bad-date", Total: f(30), Items: []LineItem{
			{ProductID: "B", Price: f(4)},
		}},
	}
	products := []Product{{ID: "A", Name: "Sneakers", Price: 10}}

	sum1 := ComputeSummary(orders, 2, 3)
	sum2 := ComputeSummary(orders, 2, 3)
	assert.Equal(t, sum1, sum2)

	trend1 := ComputeRevenueTrend(orders, 30)
	trend2 := ComputeRevenueTrend(orders, 30)
	assert.True(t, reflect.DeepEqual(trend1, trend2))

	top1 := ComputeTopProducts(orders, products, 6)
	top2 := ComputeTopProducts(orders, products, 6)
	assert.True(t, reflect.DeepEqual(top1, top2))
}

func TestAggregation_DoesNotMutateInput(t *testing.T) {
	orders := []Order{
		{ID: "2", Date: "2024-02-02T00:00:00Z", Amount: f(5)},
		{ID: "1", Date: "2024-01-01T00:00:00Z", Amount: f(9), Items: []LineItem{
			{ID: "A", Price: f(1), Quantity: n(1)},
		}},
	}
	snapshot := make([]Order, len(orders))
	copy(snapshot, orders)

	ComputeSummary(orders, 0, 0)
	ComputeRevenueTrend(orders, 30)
	ComputeTopProducts(orders, nil, 6)

	assert.True(t, reflect.DeepEqual(snapshot, orders))
}

func TestDayKey(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2024-05-01T23:59:59.999Z", "2024-05-01", true},
		{"2024-05-01T10:00:00+05:30", "2024-05-01", true},
		{"2024-05-01T22:00:00-05:00", "2024-05-02", true}, // UTC day component
		{"2024-05-01T10:00:00", "2024-05-01", true},
		{"2024-05-01", "2024-05-01", true},
		{"01/05/2024", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := dayKey(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}
