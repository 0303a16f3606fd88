package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Sondagem/internal/auth"
	"Sondagem/internal/config"

	"github.com/gorilla/mux"
)

func testServer(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	cfg.OutputDir = filepath.Join(t.TempDir(), "pdfs")
	if cfg.RateLimit == 0 {
		cfg.RateLimit, cfg.RateBurst = 100, 100
	}
	r := mux.NewRouter()
	HandleList(r, cfg, nil)
	return CORS(r)
}

const body = `{"formData":{"laudo_numero":"42"},"soilLayers":[{"start_depth":0,"end_depth":3,"description":"Clay"}],"sptData":[{"golpes_inicial":4,"golpes_final":8}]}`

func TestRoutesGenerateAndDownload(t *testing.T) {
	h := testServer(t, config.Config{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-pdf", strings.NewReader(body)))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"pdfPath":"Laudo_SPT_42.pdf"`) {
		t.Fatalf("generate: %d %s", rec.Code, rec.Body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download-pdf/Laudo_SPT_42.pdf", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("download: %d", rec.Code)
	}
}

func TestRoutesAuth(t *testing.T) {
	key := "k"
	h := testServer(t, config.Config{TokenKey: key})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate-pdf", strings.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: %d, want 401", rec.Code)
	}

	token, err := auth.IssueToken([]byte(key), "lab", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-pdf", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("with token: %d, want 200", rec.Code)
	}
}

func TestRoutesMisc(t *testing.T) {
	h := testServer(t, config.Config{})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"preflight", http.MethodOptions, "/api/generate-pdf", http.StatusNoContent},
		{"registry off", http.MethodGet, "/api/reports", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRoutesRateLimit(t *testing.T) {
	h := testServer(t, config.Config{RateLimit: 0.001, RateBurst: 1})

	codes := make([]int, 2)
	for i := range codes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports", nil))
		codes[i] = rec.Code
	}
	if codes[0] != http.StatusNotFound || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}
