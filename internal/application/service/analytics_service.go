package service

import (
	"context"

	"github.com/trendora/trendora-api/internal/domain/analytics"
	"github.com/trendora/trendora-api/internal/domain/repository"
)

// AnalyticsService feeds the admin analytics page. It materializes the
// order and product lists, converts them to raw records and hands them
// to the pure aggregation functions.
type AnalyticsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Report bundles the three analytics panels into one payload
type Report struct {
	Summary     analytics.Summary          `json:"summary"`
	Trend       []analytics.TrendPoint     `json:"trend"`
	TopProducts []analytics.ProductRevenue `json:"topProducts"`
}

// GetSummary returns the headline counters
func (s *AnalyticsService) GetSummary(ctx context.Context) (*analytics.Summary, error) {
	orders, productCount, userCount, err := s.loadCounts(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.ComputeSummary(orders, productCount, userCount)
	return &summary, nil
}

// GetRevenueTrend returns daily revenue for the trailing window
func (s *AnalyticsService) GetRevenueTrend(ctx context.Context, windowDays int) ([]analytics.TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = analytics.DefaultTrendWindow
	}
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeRevenueTrend(orders, windowDays), nil
}

// GetTopProducts returns the best selling products by revenue
func (s *AnalyticsService) GetTopProducts(ctx context.Context, topN int) ([]analytics.ProductRevenue, error) {
	if topN <= 0 {
		topN = analytics.DefaultTopProducts
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeTopProducts(orders, products, topN), nil
}

// GetReport returns all three panels in one round trip
func (s *AnalyticsService) GetReport(ctx context.Context) (*Report, error) {
	orders, productCount, userCount, err := s.loadCounts(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		Summary:     analytics.ComputeSummary(orders, productCount, userCount),
		Trend:       analytics.ComputeRevenueTrend(orders, analytics.DefaultTrendWindow),
		TopProducts: analytics.ComputeTopProducts(orders, products, analytics.DefaultTopProducts),
	}, nil
}

func (s *AnalyticsService) loadOrders(ctx context.Context) ([]analytics.Order, error) {
	rows, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]analytics.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].AnalyticsRecord())
	}
	return orders, nil
}

func (s *AnalyticsService) loadProducts(ctx context.Context) ([]analytics.Product, error) {
	rows, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]analytics.Product, 0, len(rows))
	for i := range rows {
		products = append(products, analytics.Product{
			ID:    rows[i].ID.String(),
			Name:  rows[i].Name,
			Price: rows[i].Price,
		})
	}
	return products, nil
}

func (s *AnalyticsService) loadCounts(ctx context.Context) ([]analytics.Order, int, int, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	return orders, int(productCount), int(userCount), nil
}
