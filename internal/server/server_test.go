package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/dukerupert/jitter/internal/database"
	"github.com/dukerupert/jitter/internal/store"
	"github.com/dukerupert/jitter/internal/tracker"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := tracker.New(store.NewSQLiteStore(db), tracker.DefaultRecentLimit)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(svc, Options{CORSOrigins: []string{"http://localhost:5173"}}, logger)
}

func TestRoutes(t *testing.T) {
	router := setupTestServer(t).Router()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/api/health", http.StatusOK},
		{"GET", "/api/brands", http.StatusOK},
		{"GET", "/api/drinks", http.StatusOK},
		{"GET", "/api/consumptions", http.StatusOK},
		{"GET", "/api/stats/all-time", http.StatusOK},
		{"GET", "/api/stats/stacked-chart", http.StatusOK},
		{"GET", "/api/brands/1", http.StatusNotFound},
		{"GET", "/nope", http.StatusNotFound},
		{"DELETE", "/api/brands/1", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupTestServer(t).Router()

	req := httptest.NewRequest("OPTIONS", "/api/consumptions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q", got)
	}

	req = httptest.NewRequest("GET", "/api/brands", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin got Allow-Origin %q", got)
	}
}

func TestWriteRateLimit(t *testing.T) {
	router := setupTestServer(t).Router()

	post := func() int {
		req := httptest.NewRequest("POST", "/api/brands", bytes.NewBufferString(`{"name":""}`))
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < writeLimit; i++ {
		if code := post(); code != http.StatusBadRequest {
			t.Fatalf("request %d: status = %d, want 400", i+1, code)
		}
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("request over limit: status = %d, want 429", code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/brands", nil)
	req.RemoteAddr = "192.0.2.10:4000"
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("read after limit: status = %d, want 200", rec.Code)
	}
}

func TestLogConsumptionEndToEnd(t *testing.T) {
	router := setupTestServer(t).Router()

	send := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
		return rec
	}

	if rec := send("POST", "/api/brands", `{"name":"Purdeys"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create brand: %d", rec.Code)
	}
	if rec := send("POST", "/api/drinks", `{"brand_id":1,"flavour":"Rejuvenate","size_ml":330,"caffeine_per_100ml":10}`); rec.Code != http.StatusCreated {
		t.Fatalf("create drink: %d %s", rec.Code, rec.Body.String())
	}
	if rec := send("POST", "/api/consumptions", `{"drink_id":1,"price_paid":1.2}`); rec.Code != http.StatusCreated {
		t.Fatalf("log consumption: %d", rec.Code)
	}

	rec := send("GET", "/api/stats/all-time", "")
	var stats map[string]float64
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats["total_ml"] != 330 || stats["total_caffeine"] != 33 || stats["drink_count"] != 1 || stats["total_spent"] != 1.2 {
		t.Errorf("stats = %v", stats)
	}
}

func TestLiveFeedThroughRouter(t *testing.T) {
	srv := setupTestServer(t)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": {"http://localhost:5173"}},
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	for srv.Hub().ClientCount() == 0 {
		select {
		case <-ctx.Done():
			t.Fatal("client never registered with hub")
		case <-time.After(5 * time.Millisecond):
		}
	}

	post := func(path, body string) {
		t.Helper()
		resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("POST %s: status = %d", path, resp.StatusCode)
		}
	}

	post("/api/brands", `{"name":"Celsius"}`)
	post("/api/drinks", `{"brand_id":1,"flavour":"Kiwi Guava","size_ml":355,"caffeine_per_100ml":56}`)
	post("/api/consumptions", `{"drink_id":1,"price_paid":2.5}`)

	for _, want := range []string{"brand_created", "drink_created", "consumption_created"} {
		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("read %s: %v", want, err)
		}
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode %s: %v", want, err)
		}
		if msg["type"] != want || msg["id"] != float64(1) {
			t.Errorf("message = %v, want type %s id 1", msg, want)
		}
	}
}

func TestLiveFeedRejectsUnknownOrigin(t *testing.T) {
	ts := httptest.NewServer(setupTestServer(t).Router())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": {"http://evil.example"}},
	})
	if err == nil {
		conn.Close(websocket.StatusNormalClosure, "")
		t.Fatal("expected dial from unknown origin to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("response = %v, want 403", resp)
	}
}
