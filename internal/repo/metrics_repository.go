package repo

import (
	"context"
	"time"
)

type TopProduct struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

// DashboardMetrics is the fixed snapshot backing the front-end dashboard.
type DashboardMetrics struct {
	TotalStores                int          `json:"total_stores"`
	TotalCustomers             int          `json:"total_customers"`
	TotalSalesLast30Days       int          `json:"total_sales_last_30_days"`
	TotalSalesAmountLast30Days float64      `json:"total_sales_amount_last_30_days"`
	Top5Products               []TopProduct `json:"top_5_products"`
}

type MetricsRepository interface {
	// GetDashboardMetrics assembles the snapshot. The trailing-30-day
	// window is anchored at now, which the caller supplies so repeated
	// calls (and tests) stay deterministic.
	GetDashboardMetrics(ctx context.Context, now time.Time) (DashboardMetrics, error)
}
