package repo

import (
	"context"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar-date range. Both bounds are required;
// an unbounded scan over the sales table is never issued.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) String() string {
	return r.Start.Format(dateLayout) + " → " + r.End.Format(dateLayout)
}

// Metric selects which aggregate the compare endpoint computes.
type Metric string

const (
	MetricRevenue    Metric = "revenue"
	MetricNetRevenue Metric = "net_revenue"
	MetricSalesCount Metric = "sales_count"
)

// ParseMetric rejects anything it does not know how to dispatch on.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricRevenue, MetricNetRevenue, MetricSalesCount:
		return Metric(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMetric, s)
}

type ProductRanking struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// AnalyticsRepository computes the read-only sales aggregates.
type AnalyticsRepository interface {
	// Revenue returns gross (sum of total_amount) and net
	// (sum of total_amount - total_discount - service_tax_fee) for the range.
	Revenue(ctx context.Context, dr DateRange) (gross, net float64, err error)

	// TopProducts returns at most limit products ordered by quantity sold,
	// descending. The order among equal quantities follows the underlying
	// store and is not specified.
	TopProducts(ctx context.Context, dr DateRange, limit int) ([]ProductRanking, error)

	// PeakHours returns a dense 24-entry distribution of sales by
	// hour-of-day. Hours are merged across every calendar day in the
	// range; there is no per-day breakdown.
	PeakHours(ctx context.Context, dr DateRange) ([]HourCount, error)

	// Total computes a single scalar for the given metric over the range.
	Total(ctx context.Context, m Metric, dr DateRange) (float64, error)
}

// denseHours fills a sparse hour→count mapping into the full 0–23 sequence.
func denseHours(counts map[int]int) []HourCount {
	out := make([]HourCount, 24)
	for h := 0; h < 24; h++ {
		out[h] = HourCount{Hour: h, Count: counts[h]}
	}
	return out
}
