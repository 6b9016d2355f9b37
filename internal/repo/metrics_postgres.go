package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context, now time.Time) (DashboardMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var m DashboardMetrics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stores`).Scan(&m.TotalStores); err != nil {
		return m, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&m.TotalCustomers); err != nil {
		return m, err
	}

	since := now.AddDate(0, 0, -30)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE created_at >= $1`, since,
	).Scan(&m.TotalSalesLast30Days, &m.TotalSalesAmountLast30Days)
	if err != nil {
		return m, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, SUM(ps.quantity) AS qty_sold
		FROM products_sales ps
		JOIN products p ON ps.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY qty_sold DESC
		LIMIT 5`)
	if err != nil {
		return m, err
	}
	defer rows.Close()

	m.Top5Products = []TopProduct{}
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ID, &tp.Name, &tp.QuantitySold); err != nil {
			return m, err
		}
		m.Top5Products = append(m.Top5Products, tp)
	}
	return m, rows.Err()
}
