package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmassist/internal/config"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthz(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"db up", nil, http.StatusOK},
		{"db down", errors.New("database is closed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /healthz", NewHealthchecker(fakePinger{err: tt.err}).handleHealthz)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestHandler_CountsRequestsAndExposesMetrics(t *testing.T) {
	cfg := config.Config{CORSAllowedOrigins: []string{"*"}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/ping/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	mux.Handle("GET /metrics", NewMux(nil))
	h := NewHandler(cfg, mux)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ping/42", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	want := `farmassist_http_requests_total{method="GET",route="GET /api/v1/ping/{id}",status="418"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %q", want)
	}
}

func TestHandler_CORS(t *testing.T) {
	cfg := config.Config{CORSAllowedOrigins: []string{"https://app.example"}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/labels", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := NewHandler(cfg, mux)

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin", "https://app.example", "https://app.example"},
		{"other origin", "https://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/labels", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("preflight Access-Control-Allow-Methods = %q", got)
	}
}

func TestRouteLabel(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/nope", nil)
	if got := routeLabel(r); got != "unmatched" {
		t.Errorf("routeLabel = %q, want unmatched", got)
	}
	r.Pattern = "GET /api/v1/points/{id}"
	if got := routeLabel(r); got != "GET /api/v1/points/{id}" {
		t.Errorf("routeLabel = %q", got)
	}
}
