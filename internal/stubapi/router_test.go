package stubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	e, err := New(context.Background(), Options{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
		Log:           zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	return body.Error
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/auth?action=login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", email, rec.Code, rec.Body.String())
	}
	var res domain.AuthResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return res.Token
}

func TestRouter_RegisterBookAndAdmin(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/auth?action=register", "",
		`{"email":"ann@example.com","password":"secret1","full_name":"Ann","phone":"+7911"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}
	clientToken := login(t, e, "ann@example.com", "secret1")
	adminToken := login(t, e, "admin@example.com", "admin123")

	rec = do(e, http.MethodPost, "/bookings", clientToken,
		`{"from_location":"Sochi","to_location":"Gagra","travel_date":"2026-07-01","travel_time":"10:00","tariff_id":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create booking: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPut, "/bookings?id=1", clientToken, `{"status":"confirmed"}`)
	if rec.Code != http.StatusForbidden || errorOf(t, rec) != "Admin access required" {
		t.Fatalf("client update: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodPut, "/bookings?id=1", adminToken, `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin update: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/admin?resource=stats", adminToken, "")
	var st domain.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil || st.CompletedBookings != 1 || st.TotalRevenue != 1800 {
		t.Fatalf("stats: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/admin?resource=tariffs", clientToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client admin access: %d", rec.Code)
	}
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name, method, target, body string
		code                       int
		msg                        string
	}{
		{"bookings without token", http.MethodGet, "/bookings", "", http.StatusUnauthorized, "Authentication required"},
		{"admin without token", http.MethodGet, "/admin?resource=stats", "", http.StatusUnauthorized, "Authentication required"},
		{"bad login", http.MethodPost, "/auth?action=login", `{"email":"x@y.z","password":"nope"}`, http.StatusUnauthorized, "Invalid email or password"},
		{"short password", http.MethodPost, "/auth?action=register", `{"email":"x@y.z","password":"1","full_name":"X","phone":"1"}`, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"duplicate admin email", http.MethodPost, "/auth?action=register", `{"email":"admin@example.com","password":"123456","full_name":"X","phone":"1"}`, http.StatusBadRequest, "Email already registered"},
		{"guest without contact", http.MethodPost, "/bookings", `{"from_location":"A","to_location":"B","travel_date":"d","travel_time":"t","tariff_id":1}`, http.StatusBadRequest, "Guest name and phone are required for non-registered users"},
		{"unknown tariff", http.MethodPost, "/bookings", `{"guest_name":"G","guest_phone":"1","from_location":"A","to_location":"B","travel_date":"d","travel_time":"t","tariff_id":77}`, http.StatusBadRequest, "Invalid tariff"},
		{"verify without header", http.MethodGet, "/auth", "", http.StatusUnauthorized, "Invalid authorization header"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, tc.method, tc.target, "", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d (%s)", tc.code, rec.Code, rec.Body.String())
			}
			if msg := errorOf(t, rec); msg != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, msg)
			}
		})
	}
}

func TestRouter_OpsEndpoints(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
	rec := do(e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "stubapi_") {
		t.Fatalf("metrics: %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/swagger/doc.json", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("swagger: %d", rec.Code)
	}
}
