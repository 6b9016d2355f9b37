package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/auth"
	api "github.com/lucasvieira94/nola-god-level/internal/http"
	handler "github.com/lucasvieira94/nola-god-level/internal/http/handlers"
	"github.com/lucasvieira94/nola-god-level/internal/models"
	"github.com/lucasvieira94/nola-god-level/internal/repo"
	"github.com/lucasvieira94/nola-god-level/internal/summarizer"
)

var (
	token         string
	analyticsRepo *repo.InMemoryAnalyticsRepository
	metricsRepo   *repo.InMemoryMetricsRepository
	dashboardRepo *repo.InMemoryDashboardRepository
	userRepo      *repo.InMemoryUserRepository
	completion    *fakeCompletionClient
)

// fakeCompletionClient stands in for the external model so the suite can
// assert on call counts and force provider failures.
type fakeCompletionClient struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
}

func (f *fakeCompletionClient) Complete(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompletionClient) set(response string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.response = response
	f.err = err
	f.calls = 0
}

func (f *fakeCompletionClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos()

	r := api.NewRouter()
	var err error
	token, err = registerUser(r, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error registering test user: %v", err))
	}
}

func setupTestRepos() {
	analyticsRepo = repo.NewInMemoryAnalyticsRepository()
	handler.SetAnalyticsRepo(analyticsRepo)

	metricsRepo = repo.NewInMemoryMetricsRepository()
	metricsRepo.SetAnalytics(analyticsRepo)
	handler.SetMetricsRepo(metricsRepo)

	dashboardRepo = repo.NewInMemoryDashboardRepository()
	handler.SetDashboardRepo(dashboardRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	completion = &fakeCompletionClient{response: "A short summary."}
	handler.SetSummaryService(summarizer.New(completion, time.Second))
}

func registerUser(r http.Handler, username, password string) (string, error) {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		return "", fmt.Errorf("registration failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	return authedRequestAs(token, method, target, body)
}

func authedRequestAs(tok, method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+tok)
	return req
}

func doRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedSale(id int, timestamp string, amount, discount, fee float64) {
	ts, err := time.Parse("2006-01-02T15:04:05", timestamp)
	if err != nil {
		panic(fmt.Sprintf("bad timestamp in test seed: %v", err))
	}
	analyticsRepo.AddSale(models.Sale{
		ID:            id,
		CreatedAt:     ts,
		TotalAmount:   amount,
		TotalDiscount: discount,
		ServiceTaxFee: fee,
	})
}

func clearAnalytics() {
	analyticsRepo.Clear()
}

func clearDashboards() {
	dashboardRepo.Clear()
}
