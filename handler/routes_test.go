package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"

	"github.com/emzola/bookgraph/config"
	"github.com/emzola/bookgraph/graph"
	"github.com/emzola/bookgraph/handler"
	"github.com/emzola/bookgraph/internal/jsonlog"
	"github.com/emzola/bookgraph/internal/testutil"
	"github.com/emzola/bookgraph/service"
)

func newTestHandler(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	svc := service.New(cfg, logger, testutil.NewBookStore())
	schema, err := graph.New(svc)
	if err != nil {
		t.Fatal(err)
	}
	limiters := ttlcache.New(ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute))
	return handler.New(cfg, logger, limiters, schema).Routes()
}

type graphqlResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func postGraphql(t *testing.T, routes http.Handler, query string, variables map[string]interface{}) (*httptest.ResponseRecorder, graphqlResponse) {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	var resp graphqlResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		t.Fatalf("response is not valid JSON: %v: %s", err, rec.Body.String())
	}
	return rec, resp
}

func TestHealthcheck(t *testing.T) {
	var cfg config.Config
	cfg.Server.Env = "testing"
	routes := newTestHandler(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d; got %d", http.StatusOK, rec.Code)
	}
	var body struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	if err != nil {
		t.Fatal(err)
	}
	if body.Status != "available" {
		t.Errorf("expected status %q; got %q", "available", body.Status)
	}
	if body.SystemInfo["environment"] != "testing" {
		t.Errorf("expected environment %q; got %q", "testing", body.SystemInfo["environment"])
	}
}

func TestGraphqlEndpoint(t *testing.T) {
	t.Run("executes a mutation followed by a query", func(t *testing.T) {
		routes := newTestHandler(t, config.Config{})
		rec, resp := postGraphql(t, routes, `
			mutation($bookData: BookInput!) {
				createBook(bookData: $bookData) { book { id title } }
			}`, map[string]interface{}{
			"bookData": map[string]interface{}{
				"title":         "A",
				"author":        "B",
				"yearPublished": "2020",
				"review":        5,
			},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d; got %d", http.StatusOK, rec.Code)
		}
		if len(resp.Errors) > 0 {
			t.Fatalf("unexpected errors: %v", resp.Errors)
		}

		rec, resp = postGraphql(t, routes, `query { allBooks { id title } }`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d; got %d", http.StatusOK, rec.Code)
		}
		books, ok := resp.Data["allBooks"].([]interface{})
		if !ok {
			t.Fatalf("expected a list; got %T", resp.Data["allBooks"])
		}
		if len(books) != 1 {
			t.Fatalf("expected 1 book; got %d", len(books))
		}
	})

	t.Run("surfaces a not found error in the errors list", func(t *testing.T) {
		routes := newTestHandler(t, config.Config{})
		rec, resp := postGraphql(t, routes, `query { book(bookId: 42) { id } }`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d; got %d", http.StatusOK, rec.Code)
		}
		if len(resp.Errors) == 0 {
			t.Fatal("expected a not found error in the response")
		}
	})
}

func TestNotFoundRoute(t *testing.T) {
	routes := newTestHandler(t, config.Config{})
	req := httptest.NewRequest(http.MethodGet, "/v1/nosuchthing", nil)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d; got %d", http.StatusNotFound, rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	var cfg config.Config
	cfg.Limiter.Enabled = true
	cfg.Limiter.RPS = 1
	cfg.Limiter.Burst = 2
	routes := newTestHandler(t, cfg)

	var lastCode int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)
		lastCode = rec.Code
	}
	if lastCode != http.StatusTooManyRequests {
		t.Errorf("expected status %d after exhausting the burst; got %d", http.StatusTooManyRequests, lastCode)
	}
}

func TestDebugVarsRequiresCredentials(t *testing.T) {
	var cfg config.Config
	cfg.BasicAuth.Username = "admin"
	cfg.BasicAuth.Password = "secret"
	routes := newTestHandler(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d without credentials; got %d", http.StatusUnauthorized, rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	req.SetBasicAuth("admin", "secret")
	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d with credentials; got %d", http.StatusOK, rec.Code)
	}
}
