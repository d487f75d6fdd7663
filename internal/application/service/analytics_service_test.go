package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"gorm.io/datatypes"
)

func seedOrder(repo *fakeOrderRepo, userID uuid.UUID, amount float64, date time.Time, items string) *entity.Order {
	o := &entity.Order{
		UserID:        userID,
		UserEmail:     "asha@example.com",
		CustomerName:  "Asha Verma",
		Phone:         "9876543210",
		PaymentMethod: enum.PaymentMethodCOD,
		Status:        enum.OrderStatusPending,
		Amount:        amount,
		OrderDate:     date,
	}
	if items != "" {
		o.Items = datatypes.JSON([]byte(items))
	}
	_ = repo.Create(context.Background(), o)
	return o
}

func TestAnalyticsReport(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	svc := NewAnalyticsService(orderRepo, productRepo, userRepo)
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	seedUser(userRepo, "Rohit Iyer", "rohit@example.com")
	jacket := seedProduct(productRepo, "Denim Jacket", 2999, 10)
	hoodie := seedProduct(productRepo, "Everyday Hoodie", 1299, 10)

	day := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	seedOrder(orderRepo, user.ID, 5998, day,
		`[{"id":"`+jacket.ID.String()+`","name":"Denim Jacket","price":2999,"quantity":2}]`)
	seedOrder(orderRepo, user.ID, 1299, day.Add(26*time.Hour),
		`[{"id":"`+hoodie.ID.String()+`","name":"Everyday Hoodie","price":1299,"quantity":1}]`)

	report, err := svc.GetReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.OrderCount)
	assert.Equal(t, 2, report.Summary.ProductCount)
	assert.Equal(t, 2, report.Summary.UserCount)
	assert.InDelta(t, 7297, report.Summary.TotalRevenue, 0.001)

	require.Len(t, report.Trend, 2)
	assert.Equal(t, "2026-08-20", report.Trend[0].Date)
	assert.InDelta(t, 5998, report.Trend[0].Revenue, 0.001)
	assert.Equal(t, "2026-08-21", report.Trend[1].Date)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Denim Jacket", report.TopProducts[0].Name)
	assert.InDelta(t, 5998, report.TopProducts[0].Revenue, 0.001)
	assert.InDelta(t, 100, report.TopProducts[0].Percent+report.TopProducts[1].Percent, 0.001)
}

func TestAnalyticsSurvivesMalformedItems(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	svc := NewAnalyticsService(orderRepo, productRepo, userRepo)
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	seedOrder(orderRepo, user.ID, 500, time.Now().UTC(), `{"not":"an array"}`)
	seedOrder(orderRepo, user.ID, 300, time.Now().UTC(), "")

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 800, summary.TotalRevenue, 0.001)

	top, err := svc.GetTopProducts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestDashboardOverview(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	svc := NewDashboardService(orderRepo, productRepo, userRepo)
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	jacket := seedProduct(productRepo, "Denim Jacket", 2999, 10)
	hoodie := seedProduct(productRepo, "Everyday Hoodie", 1299, 10)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		items := `[{"id":"` + jacket.ID.String() + `","name":"Denim Jacket","price":2999,"quantity":1}]`
		if i%2 == 0 {
			items = `[{"id":"` + hoodie.ID.String() + `","name":"Everyday Hoodie","price":1299,"quantity":1}]`
		}
		seedOrder(orderRepo, user.ID, 100, base.Add(time.Duration(i)*24*time.Hour), items)
	}

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, overview.TotalUsers)
	assert.EqualValues(t, 2, overview.TotalProducts)
	assert.EqualValues(t, 7, overview.TotalOrders)
	assert.InDelta(t, 700, overview.TotalRevenue, 0.001)

	require.Len(t, overview.RecentOrders, 5)
	assert.True(t, overview.RecentOrders[0].OrderDate.After(overview.RecentOrders[4].OrderDate))

	require.Len(t, overview.TopProducts, 2)
	assert.Equal(t, "Everyday Hoodie", overview.TopProducts[0].Name)
	assert.Equal(t, 4, overview.TopProducts[0].OrderCount)
	assert.Equal(t, 3, overview.TopProducts[1].OrderCount)
}
