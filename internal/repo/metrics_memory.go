package repo

import (
	"context"
	"time"
)

type InMemoryMetricsRepository struct {
	analytics      *InMemoryAnalyticsRepository
	totalStores    int
	totalCustomers int
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetAnalytics(analytics *InMemoryAnalyticsRepository) {
	r.analytics = analytics
}

func (r *InMemoryMetricsRepository) SetCounts(stores, customers int) {
	r.totalStores = stores
	r.totalCustomers = customers
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics(_ context.Context, now time.Time) (DashboardMetrics, error) {
	m := DashboardMetrics{
		TotalStores:    r.totalStores,
		TotalCustomers: r.totalCustomers,
		Top5Products:   []TopProduct{},
	}

	r.analytics.mu.Lock()
	defer r.analytics.mu.Unlock()

	since := now.AddDate(0, 0, -30)
	for _, s := range r.analytics.sales {
		if !s.CreatedAt.Before(since) {
			m.TotalSalesLast30Days++
			m.TotalSalesAmountLast30Days += s.TotalAmount
		}
	}

	rankings := r.analytics.rankProducts(nil)
	if len(rankings) > 5 {
		rankings = rankings[:5]
	}
	for _, p := range rankings {
		m.Top5Products = append(m.Top5Products, TopProduct{
			ID:           p.ID,
			Name:         p.Name,
			QuantitySold: p.Quantity,
		})
	}
	return m, nil
}
