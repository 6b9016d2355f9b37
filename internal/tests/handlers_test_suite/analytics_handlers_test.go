package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/lucasvieira94/nola-god-level/internal/http"
	handler "github.com/lucasvieira94/nola-god-level/internal/http/handlers"
	"github.com/lucasvieira94/nola-god-level/internal/models"
	"github.com/lucasvieira94/nola-god-level/internal/repo"
)

func TestRevenueHandler(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	seedSale(1, "2024-01-10T12:30:00", 100, 10, 5)
	seedSale(2, "2024-01-15T19:00:00", 50, 0, 2.5)
	seedSale(3, "2024-02-20T12:00:00", 999, 0, 0) // outside the range

	w := doRequest(r, authedRequest(http.MethodGet, "/revenue/?start=2024-01-01&end=2024-01-31", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RevenueResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Gross != 150 {
		t.Errorf("expected gross 150, got %v", resp.Gross)
	}
	if resp.Net != 132.5 {
		t.Errorf("expected net 132.5, got %v", resp.Net)
	}
	if resp.Period != "2024-01-01 → 2024-01-31" {
		t.Errorf("unexpected period string: %q", resp.Period)
	}
	if resp.Net > resp.Gross {
		t.Errorf("net must not exceed gross: %v > %v", resp.Net, resp.Gross)
	}
}

func TestRevenueHandlerMissingDates(t *testing.T) {
	r := api.NewRouter()

	for _, target := range []string{
		"/revenue/",
		"/revenue/?start=2024-01-01",
		"/revenue/?end=2024-01-31",
		"/revenue/?start=january&end=2024-01-31",
	} {
		w := doRequest(r, authedRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: error body is not JSON: %v", target, err)
		}
		if len(resp.Fields) == 0 {
			t.Errorf("%s: expected field-level details", target)
		}
	}
}

func TestRevenueHandlerRequiresAuth(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/revenue/?start=2024-01-01&end=2024-01-31", nil)
	w := doRequest(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestTopProductsHandler(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	analyticsRepo.AddProduct(1, "Margherita")
	analyticsRepo.AddProduct(2, "Calabresa")
	analyticsRepo.AddProduct(3, "Soda")
	seedSale(1, "2024-01-10T12:00:00", 100, 0, 0)
	seedSale(2, "2024-01-11T13:00:00", 60, 0, 0)
	analyticsRepo.AddProductSale(models.ProductSale{SaleID: 1, ProductID: 1, Quantity: 3, TotalPrice: 90})
	analyticsRepo.AddProductSale(models.ProductSale{SaleID: 2, ProductID: 2, Quantity: 7, TotalPrice: 49})
	analyticsRepo.AddProductSale(models.ProductSale{SaleID: 2, ProductID: 3, Quantity: 1, TotalPrice: 5})

	w := doRequest(r, authedRequest(http.MethodGet, "/top-products/?start=2024-01-01&end=2024-01-31&limit=2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var rankings []repo.ProductRanking
	if err := json.NewDecoder(w.Body).Decode(&rankings); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(rankings))
	}
	if rankings[0].Name != "Calabresa" || rankings[0].Quantity != 7 {
		t.Errorf("expected Calabresa with quantity 7 first, got %+v", rankings[0])
	}
	if rankings[1].Quantity > rankings[0].Quantity {
		t.Error("quantities must be non-increasing")
	}
}

func TestTopProductsHandlerInvalidLimit(t *testing.T) {
	r := api.NewRouter()

	for _, target := range []string{
		"/top-products/?start=2024-01-01&end=2024-01-31&limit=zero",
		"/top-products/?start=2024-01-01&end=2024-01-31&limit=-1",
	} {
		w := doRequest(r, authedRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestPeakHoursHandler(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	// hour 12 twice across two different days, hour 20 once
	seedSale(1, "2024-01-10T12:15:00", 10, 0, 0)
	seedSale(2, "2024-01-11T12:45:00", 10, 0, 0)
	seedSale(3, "2024-01-12T20:05:00", 10, 0, 0)

	w := doRequest(r, authedRequest(http.MethodGet, "/peak-hours/?start=2024-01-01&end=2024-01-31", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var hours []repo.HourCount
	if err := json.NewDecoder(w.Body).Decode(&hours); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(hours) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(hours))
	}
	total := 0
	for h, entry := range hours {
		if entry.Hour != h {
			t.Errorf("expected hour %d at position %d, got %d", h, h, entry.Hour)
		}
		total += entry.Count
	}
	if total != 3 {
		t.Errorf("counts should sum to 3, got %d", total)
	}
	if hours[12].Count != 2 || hours[20].Count != 1 {
		t.Errorf("unexpected distribution: hour12=%d hour20=%d", hours[12].Count, hours[20].Count)
	}
}

func TestCompareHandler(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	seedSale(1, "2024-01-10T12:00:00", 100, 0, 0)
	seedSale(2, "2024-02-10T12:00:00", 150, 0, 0)

	target := "/compare/?metric=revenue&start1=2024-01-01&end1=2024-01-31&start2=2024-02-01&end2=2024-02-29"
	w := doRequest(r, authedRequest(http.MethodGet, target, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CompareResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Metric != "revenue" {
		t.Errorf("expected metric revenue, got %q", resp.Metric)
	}
	if resp.Period1.Value != 100 || resp.Period2.Value != 150 {
		t.Errorf("unexpected period values: %v / %v", resp.Period1.Value, resp.Period2.Value)
	}
	if resp.DiffPercent != 50.0 {
		t.Errorf("expected diff_percent 50.0, got %v", resp.DiffPercent)
	}
}

func TestCompareHandlerZeroBaseline(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	seedSale(1, "2024-02-10T12:00:00", 150, 0, 0)

	target := "/compare/?start1=2024-01-01&end1=2024-01-31&start2=2024-02-01&end2=2024-02-29"
	w := doRequest(r, authedRequest(http.MethodGet, target, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CompareResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// v1 == 0 is the guarded sentinel, never a division
	if resp.DiffPercent != 0 {
		t.Errorf("expected sentinel diff_percent 0, got %v", resp.DiffPercent)
	}
	if resp.Metric != "revenue" {
		t.Errorf("metric should default to revenue, got %q", resp.Metric)
	}
}

func TestCompareHandlerNetRevenue(t *testing.T) {
	t.Cleanup(clearAnalytics)
	r := api.NewRouter()

	seedSale(1, "2024-01-10T12:00:00", 100, 10, 10)
	seedSale(2, "2024-02-10T12:00:00", 100, 0, 0)

	target := "/compare/?metric=net_revenue&start1=2024-01-01&end1=2024-01-31&start2=2024-02-01&end2=2024-02-29"
	w := doRequest(r, authedRequest(http.MethodGet, target, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CompareResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Period1.Value != 80 || resp.Period2.Value != 100 {
		t.Errorf("unexpected net values: %v / %v", resp.Period1.Value, resp.Period2.Value)
	}
	if resp.DiffPercent != 25.0 {
		t.Errorf("expected diff_percent 25.0, got %v", resp.DiffPercent)
	}
}

func TestCompareHandlerUnsupportedMetric(t *testing.T) {
	r := api.NewRouter()

	target := "/compare/?metric=margin&start1=2024-01-01&end1=2024-01-31&start2=2024-02-01&end2=2024-02-29"
	w := doRequest(r, authedRequest(http.MethodGet, target, nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unsupported metric, got %d", w.Code)
	}

	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if len(resp.Fields) == 0 || resp.Fields[0].Field != "metric" {
		t.Errorf("expected a field error on metric, got %+v", resp.Fields)
	}
}
