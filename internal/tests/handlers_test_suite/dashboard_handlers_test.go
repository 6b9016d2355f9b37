package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/lucasvieira94/nola-god-level/internal/http"
	handler "github.com/lucasvieira94/nola-god-level/internal/http/handlers"
	"github.com/lucasvieira94/nola-god-level/internal/models"
)

func createDashboard(t *testing.T, r http.Handler, tok, name string) models.Dashboard {
	t.Helper()
	body, _ := json.Marshal(handler.DashboardRequest{
		Name:   name,
		Layout: json.RawMessage(`{"widgets":[{"type":"revenue","w":2}]}`),
	})
	w := doRequest(r, authedRequestAs(tok, http.MethodPost, "/dashboards/", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("dashboard creation failed: %d %s", w.Code, w.Body.String())
	}
	var d models.Dashboard
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	return d
}

func TestDashboardCRUD(t *testing.T) {
	t.Cleanup(clearDashboards)
	r := api.NewRouter()

	created := createDashboard(t, r, token, "sales overview")
	if created.ID == 0 {
		t.Fatal("expected a server-assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}

	// fetch
	w := doRequest(r, authedRequest(http.MethodGet, fmt.Sprintf("/dashboards/%d", created.ID), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("fetch failed: %d", w.Code)
	}
	var fetched models.Dashboard
	json.NewDecoder(w.Body).Decode(&fetched)
	if fetched.Name != "sales overview" {
		t.Errorf("expected name back, got %q", fetched.Name)
	}
	if string(fetched.Layout) == "" {
		t.Error("layout must be returned opaquely")
	}

	// update
	body, _ := json.Marshal(handler.DashboardRequest{
		Name:   "sales overview v2",
		Layout: json.RawMessage(`{"widgets":[]}`),
	})
	w = doRequest(r, authedRequest(http.MethodPut, fmt.Sprintf("/dashboards/%d", created.ID), bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}

	// list
	w = doRequest(r, authedRequest(http.MethodGet, "/dashboards/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}
	var list []models.Dashboard
	json.NewDecoder(w.Body).Decode(&list)
	if len(list) != 1 || list[0].Name != "sales overview v2" {
		t.Errorf("unexpected list: %+v", list)
	}

	// delete
	w = doRequest(r, authedRequest(http.MethodDelete, fmt.Sprintf("/dashboards/%d", created.ID), nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d", w.Code)
	}
	w = doRequest(r, authedRequest(http.MethodGet, fmt.Sprintf("/dashboards/%d", created.ID), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDashboardOwnerIsolation(t *testing.T) {
	t.Cleanup(clearDashboards)
	r := api.NewRouter()

	otherToken, err := registerUser(r, "mallory", "secret123")
	if err != nil {
		t.Fatalf("failed to register second user: %v", err)
	}

	created := createDashboard(t, r, token, "private")

	// another user must get not-found, never forbidden
	target := fmt.Sprintf("/dashboards/%d", created.ID)
	for _, tc := range []struct {
		method string
		body   []byte
	}{
		{http.MethodGet, nil},
		{http.MethodPut, []byte(`{"name":"stolen","layout":{}}`)},
		{http.MethodDelete, nil},
	} {
		w := doRequest(r, authedRequestAs(otherToken, tc.method, target, bytes.NewReader(tc.body)))
		if w.Code != http.StatusNotFound {
			t.Errorf("%s as foreign owner: expected 404, got %d", tc.method, w.Code)
		}
	}

	w := doRequest(r, authedRequestAs(otherToken, http.MethodGet, "/dashboards/", nil))
	var list []models.Dashboard
	json.NewDecoder(w.Body).Decode(&list)
	if len(list) != 0 {
		t.Errorf("foreign owner must not list another user's dashboards, got %d", len(list))
	}
}

func TestDashboardDuplicateNameConflict(t *testing.T) {
	t.Cleanup(clearDashboards)
	r := api.NewRouter()

	createDashboard(t, r, token, "sales")

	body, _ := json.Marshal(handler.DashboardRequest{
		Name:   "sales",
		Layout: json.RawMessage(`{}`),
	})
	w := doRequest(r, authedRequest(http.MethodPost, "/dashboards/", bytes.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate name, got %d", w.Code)
	}
}

func TestDashboardValidation(t *testing.T) {
	t.Cleanup(clearDashboards)
	r := api.NewRouter()

	for name, body := range map[string]string{
		"missing name":   `{"layout":{"a":1}}`,
		"missing layout": `{"name":"x"}`,
	} {
		w := doRequest(r, authedRequest(http.MethodPost, "/dashboards/", bytes.NewReader([]byte(body))))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: error body is not JSON: %v", name, err)
		}
		if len(resp.Fields) == 0 {
			t.Errorf("%s: expected field-level details", name)
		}
	}
}

func TestDashboardRequiresAuth(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboards/", nil)
	w := doRequest(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}
