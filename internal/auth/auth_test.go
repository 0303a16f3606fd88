package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func echoSubject() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Subject(r.Context())))
	})
}

func TestAuthMiddleware(t *testing.T) {
	key := []byte("test-key")
	good, err := IssueToken(key, "lab", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := IssueToken(key, "lab", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	foreign, err := IssueToken([]byte("other-key"), "lab", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "lab"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"bearer", "Bearer " + good, "", http.StatusOK},
		{"cookie", "", good, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, "", http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, "", http.StatusUnauthorized},
		{"alg none", "Bearer " + unsigned, "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def", "", http.StatusUnauthorized},
	}

	h := (&Authenv{JWTkey: key}).AuthMiddleware(echoSubject())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate-pdf", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && rec.Body.String() != "lab" {
				t.Errorf("subject = %q, want lab", rec.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	h := (&Authenv{}).AuthMiddleware(echoSubject())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestIssueTokenEmptyKey(t *testing.T) {
	if _, err := IssueToken(nil, "lab", time.Hour); err == nil {
		t.Error("IssueToken accepted an empty key")
	}
}

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 per host, ports ignored.
	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		if got := do("10.0.0.1:" + string(rune('1'+i)) + "000"); got != want {
			t.Errorf("request %d: status = %d, want %d", i, got, want)
		}
	}
	if got := do("10.0.0.2:1000"); got != http.StatusOK {
		t.Errorf("other host: status = %d, want 200", got)
	}
}
