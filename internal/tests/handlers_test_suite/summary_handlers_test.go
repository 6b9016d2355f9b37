package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	api "github.com/lucasvieira94/nola-god-level/internal/http"
	handler "github.com/lucasvieira94/nola-god-level/internal/http/handlers"
	rl "github.com/lucasvieira94/nola-god-level/internal/http/rate_limiter"
)

func postSummary(question string) *bytes.Reader {
	body, _ := json.Marshal(handler.SummaryRequest{Question: question})
	return bytes.NewReader(body)
}

func TestSummaryHandler(t *testing.T) {
	rl.CleanupAllVisitors()
	completion.set("The customer wants last week's pizza sales figures.", nil)
	r := api.NewRouter()

	w := doRequest(r, authedRequest(http.MethodPost, "/summary", postSummary("How many pizzas did we sell last week?")))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Question != "How many pizzas did we sell last week?" {
		t.Errorf("question must be echoed on success, got %q", resp.Question)
	}
	if resp.Summary != "The customer wants last week's pizza sales figures." {
		t.Errorf("unexpected summary: %q", resp.Summary)
	}
	if completion.callCount() != 1 {
		t.Errorf("expected exactly one completion call, got %d", completion.callCount())
	}
}

func TestSummaryHandlerQuestionTooLong(t *testing.T) {
	rl.CleanupAllVisitors()
	completion.set("should never be used", nil)
	r := api.NewRouter()

	w := doRequest(r, authedRequest(http.MethodPost, "/summary", postSummary(strings.Repeat("a", 501))))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if completion.callCount() != 0 {
		t.Errorf("validation must fail before any external call, got %d calls", completion.callCount())
	}

	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if len(resp.Fields) == 0 || resp.Fields[0].Field != "question" {
		t.Errorf("expected a field error on question, got %+v", resp.Fields)
	}
}

func TestSummaryHandlerEmptyQuestion(t *testing.T) {
	rl.CleanupAllVisitors()
	completion.set("should never be used", nil)
	r := api.NewRouter()

	w := doRequest(r, authedRequest(http.MethodPost, "/summary", postSummary("   ")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if completion.callCount() != 0 {
		t.Errorf("expected no external calls, got %d", completion.callCount())
	}
}

func TestSummaryHandlerProviderFailure(t *testing.T) {
	rl.CleanupAllVisitors()
	completion.set("", errors.New("model overloaded"))
	r := api.NewRouter()

	w := doRequest(r, authedRequest(http.MethodPost, "/summary", postSummary("any question")))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on provider failure, got %d", w.Code)
	}

	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if resp.Error == "" {
		t.Error("gateway failures must carry an error field")
	}
	if resp.Details == "" || !strings.Contains(resp.Details, "model overloaded") {
		t.Errorf("provider detail must be surfaced for diagnostics, got %q", resp.Details)
	}
	if strings.Contains(w.Body.String(), "any question") {
		t.Error("the question must not be echoed back on failure")
	}
}

func TestSummaryHandlerRateLimited(t *testing.T) {
	rl.CleanupAllVisitors()
	completion.set("ok", nil)
	r := api.NewRouter()

	// burst of 3, then the bucket is empty
	var last int
	for i := 0; i < 4; i++ {
		w := doRequest(r, authedRequest(http.MethodPost, "/summary", postSummary("q")))
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exhausting the burst, got %d", last)
	}
}
