package service

import (
	"context"
	"sort"

	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/repository"
)

// DashboardService assembles the back-office landing page numbers
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// OrderedProduct is a product ranked by how many orders contain it
type OrderedProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

// Overview is the dashboard payload
type Overview struct {
	TotalUsers    int64            `json:"totalUsers"`
	TotalProducts int64            `json:"totalProducts"`
	TotalOrders   int64            `json:"totalOrders"`
	TotalRevenue  float64          `json:"totalRevenue"`
	RecentOrders  []entity.Order   `json:"recentOrders"`
	TopProducts   []OrderedProduct `json:"topProducts"`
}

// GetOverview returns store-wide totals, the five most recent orders and
// the products appearing in the most orders.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for i := range orders {
		revenue += orders[i].Amount
	}

	recent, err := s.orderRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []entity.Order{}
	}

	return &Overview{
		TotalUsers:    userCount,
		TotalProducts: productCount,
		TotalOrders:   int64(len(orders)),
		TotalRevenue:  revenue,
		RecentOrders:  recent,
		TopProducts:   topOrderedProducts(orders, 5),
	}, nil
}

// topOrderedProducts counts how many orders each product appears in.
// Ties keep the order products were first seen across the order list.
func topOrderedProducts(orders []entity.Order, limit int) []OrderedProduct {
	counts := make(map[string]*OrderedProduct)
	var seen []string

	for i := range orders {
		rec := orders[i].AnalyticsRecord()
		inThisOrder := make(map[string]bool)
		for _, line := range rec.Items {
			id := line.ID
			if id == "" {
				id = line.ProductID
			}
			if id == "" {
				id = line.Ref
			}
			if id == "" || inThisOrder[id] {
				continue
			}
			inThisOrder[id] = true
			p, ok := counts[id]
			if !ok {
				name := ""
				if line.Name != "" {
					name = line.Name
				}
				p = &OrderedProduct{ID: id, Name: name}
				counts[id] = p
				seen = append(seen, id)
			}
			p.OrderCount++
			if p.Name == "" && line.Name != "" {
				p.Name = line.Name
			}
		}
	}

	sort.SliceStable(seen, func(a, b int) bool {
		return counts[seen[a]].OrderCount > counts[seen[b]].OrderCount
	})
	if len(seen) > limit {
		seen = seen[:limit]
	}

	result := make([]OrderedProduct, 0, len(seen))
	for _, id := range seen {
		result = append(result, *counts[id])
	}
	return result
}
