package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/infrastructure/auth"
	"oficina_jobs/internal/infrastructure/metrics"
)

var _ TokenVerifier = (*auth.JWTManager)(nil)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyRequestID)) })

	t.Run("generated", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/x", nil)
		if w.Header().Get(HeaderRequestID) == "" || w.Body.String() != w.Header().Get(HeaderRequestID) {
			t.Fatalf("expected generated request id, got header=%q body=%q", w.Header().Get(HeaderRequestID), w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/x", http.Header{HeaderRequestID: {"req-1"}})
		if w.Body.String() != "req-1" {
			t.Fatalf("expected req-1, got %q", w.Body.String())
		}
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newEngine(Logger(zap.New(core)))
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, http.MethodGet, "/jobs/j-1", nil)

	entries := logs.FilterMessage("[http][request] completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Fatalf("expected warn level, got %v", entries[0].Level)
	}
	if entries[0].ContextMap()["route"] != "/jobs/:id" {
		t.Fatalf("unexpected route field: %v", entries[0].ContextMap()["route"])
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(nil))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/panic", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	r := newEngine(Metrics(m))
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET(metricsPath, MetricsEndpoint(m))

	serve(r, http.MethodGet, "/jobs/j-1", nil)
	serve(r, http.MethodGet, "/jobs/j-2", nil)
	w := serve(r, http.MethodGet, metricsPath, nil)

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/jobs/:id", "200")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", metricsPath, "200")); got != 0 {
		t.Fatalf("metrics route must not be counted, got %v", got)
	}
	if !strings.Contains(w.Body.String(), "oficina_http_requests_total") {
		t.Fatalf("expected exposition body, got %s", w.Body.String())
	}
}

func TestTracing_PassesThrough(t *testing.T) {
	r := newEngine(Tracing("test"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, http.MethodGet, "/x", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestAuth(t *testing.T) {
	jwtm := auth.NewJWTManager("secret", "oficina-jobs", time.Hour)
	token, _, err := jwtm.Issue(entities.Employee{ID: "emp-1", Role: entities.EmployeeRoleTechnician})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := newEngine(Auth(jwtm, nil))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, EmployeeID(c)+"|"+c.GetString(ContextKeyRole))
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w.Header().Get("WWW-Authenticate") == "" {
			t.Fatalf("expected WWW-Authenticate header")
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Basic " + token}})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer nope"}})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", http.Header{"Authorization": {"Bearer " + token}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "emp-1|technician" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRequireRole(t *testing.T) {
	withRole := func(id, role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id != "" {
				c.Set(ContextKeyEmployeeID, id)
				c.Set(ContextKeyRole, role)
			}
			c.Next()
		}
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	cases := []struct {
		name   string
		id     string
		role   string
		status int
	}{
		{"admin allowed", "emp-1", "admin", http.StatusOK},
		{"technician forbidden", "emp-2", "technician", http.StatusForbidden},
		{"anonymous passes", "", "", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(withRole(tc.id, tc.role), RequireRole("admin", "manager"))
			r.GET("/x", ok)
			if w := serve(r, http.MethodGet, "/x", nil); w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}
