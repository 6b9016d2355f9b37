package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PostgresAnalyticsRepository struct {
	db *sql.DB
}

func NewPostgresAnalyticsRepository(db *sql.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

// saleDateFilter builds the shared date-range WHERE fragment used by every
// sales aggregate, so the filter semantics live in exactly one place.
// column must be a trusted identifier, never user input.
func saleDateFilter(column string, dr DateRange, argIdx int) (string, []any, int) {
	frag := fmt.Sprintf("%s::date BETWEEN $%d AND $%d", column, argIdx, argIdx+1)
	args := []any{dr.Start.Format(dateLayout), dr.End.Format(dateLayout)}
	return frag, args, argIdx + 2
}

func (r *PostgresAnalyticsRepository) Revenue(ctx context.Context, dr DateRange) (float64, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cond, args, _ := saleDateFilter("created_at", dr, 1)
	query := `
		SELECT COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(total_amount - total_discount - service_tax_fee), 0)
		FROM sales
		WHERE ` + cond

	var gross, net float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&gross, &net); err != nil {
		return 0, 0, err
	}
	return gross, net, nil
}

func (r *PostgresAnalyticsRepository) TopProducts(ctx context.Context, dr DateRange, limit int) ([]ProductRanking, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cond, args, argIdx := saleDateFilter("s.created_at", dr, 1)
	query := `
		SELECT p.id, p.name, SUM(ps.quantity) AS qty, SUM(ps.total_price) AS revenue
		FROM products_sales ps
		JOIN sales s ON ps.sale_id = s.id
		JOIN products p ON ps.product_id = p.id
		WHERE ` + cond + `
		GROUP BY p.id, p.name
		ORDER BY qty DESC
		LIMIT ` + fmt.Sprintf("$%d", argIdx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rankings []ProductRanking
	for rows.Next() {
		var p ProductRanking
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Revenue); err != nil {
			return nil, err
		}
		rankings = append(rankings, p)
	}
	return rankings, rows.Err()
}

func (r *PostgresAnalyticsRepository) PeakHours(ctx context.Context, dr DateRange) ([]HourCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cond, args, _ := saleDateFilter("created_at", dr, 1)
	query := `
		SELECT EXTRACT(HOUR FROM created_at)::int AS hour, COUNT(*)
		FROM sales
		WHERE ` + cond + `
		GROUP BY hour
		ORDER BY hour`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, err
		}
		counts[hour] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return denseHours(counts), nil
}

func (r *PostgresAnalyticsRepository) Total(ctx context.Context, m Metric, dr DateRange) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var expr string
	switch m {
	case MetricRevenue:
		expr = "COALESCE(SUM(total_amount), 0)"
	case MetricNetRevenue:
		expr = "COALESCE(SUM(total_amount - total_discount - service_tax_fee), 0)"
	case MetricSalesCount:
		expr = "COUNT(*)"
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMetric, m)
	}

	cond, args, _ := saleDateFilter("created_at", dr, 1)
	query := "SELECT " + expr + " FROM sales WHERE " + cond

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
