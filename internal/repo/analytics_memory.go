package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

// InMemoryAnalyticsRepository computes the same aggregates as the Postgres
// implementation over seeded slices. Used by the handler test suites.
type InMemoryAnalyticsRepository struct {
	mu       sync.Mutex
	sales    []models.Sale
	lines    []models.ProductSale
	products map[int]string
}

func NewInMemoryAnalyticsRepository() *InMemoryAnalyticsRepository {
	return &InMemoryAnalyticsRepository{products: make(map[int]string)}
}

func (r *InMemoryAnalyticsRepository) AddProduct(id int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[id] = name
}

func (r *InMemoryAnalyticsRepository) AddSale(s models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
}

func (r *InMemoryAnalyticsRepository) AddProductSale(ps models.ProductSale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, ps)
}

func (r *InMemoryAnalyticsRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = nil
	r.lines = nil
	r.products = make(map[int]string)
}

func (dr DateRange) contains(s models.Sale) bool {
	d := s.CreatedAt.Format(dateLayout)
	return d >= dr.Start.Format(dateLayout) && d <= dr.End.Format(dateLayout)
}

func (r *InMemoryAnalyticsRepository) Revenue(_ context.Context, dr DateRange) (float64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var gross, net float64
	for _, s := range r.sales {
		if dr.contains(s) {
			gross += s.TotalAmount
			net += s.TotalAmount - s.TotalDiscount - s.ServiceTaxFee
		}
	}
	return gross, net, nil
}

func (r *InMemoryAnalyticsRepository) TopProducts(_ context.Context, dr DateRange, limit int) ([]ProductRanking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rankings := r.rankProducts(&dr)
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings, nil
}

// rankProducts aggregates line items by product, optionally restricted to
// sales inside dr. A nil dr means all time (used by the metrics snapshot).
func (r *InMemoryAnalyticsRepository) rankProducts(dr *DateRange) []ProductRanking {
	inRange := make(map[int]bool, len(r.sales))
	for _, s := range r.sales {
		if dr == nil || dr.contains(s) {
			inRange[s.ID] = true
		}
	}

	byProduct := make(map[int]*ProductRanking)
	for _, ps := range r.lines {
		if !inRange[ps.SaleID] {
			continue
		}
		agg, ok := byProduct[ps.ProductID]
		if !ok {
			agg = &ProductRanking{ID: ps.ProductID, Name: r.products[ps.ProductID]}
			byProduct[ps.ProductID] = agg
		}
		agg.Quantity += ps.Quantity
		agg.Revenue += ps.TotalPrice
	}

	rankings := make([]ProductRanking, 0, len(byProduct))
	for _, agg := range byProduct {
		rankings = append(rankings, *agg)
	}
	sort.Slice(rankings, func(i, j int) bool {
		return rankings[i].Quantity > rankings[j].Quantity
	})
	return rankings
}

func (r *InMemoryAnalyticsRepository) PeakHours(_ context.Context, dr DateRange) ([]HourCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[int]int)
	for _, s := range r.sales {
		if dr.contains(s) {
			counts[s.CreatedAt.Hour()]++
		}
	}
	return denseHours(counts), nil
}

func (r *InMemoryAnalyticsRepository) Total(_ context.Context, m Metric, dr DateRange) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, s := range r.sales {
		if !dr.contains(s) {
			continue
		}
		switch m {
		case MetricRevenue:
			total += s.TotalAmount
		case MetricNetRevenue:
			total += s.TotalAmount - s.TotalDiscount - s.ServiceTaxFee
		case MetricSalesCount:
			total++
		default:
			return 0, ErrUnsupportedMetric
		}
	}
	return total, nil
}
