package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "placement-test", Env: "test", Version: "test", RequestTimeoutSeconds: 5},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite},
		SQLite:   config.SQLiteConfig{Path: ":memory:"},
		Auth: config.AuthConfig{
			SessionSecret:       "test-secret",
			SessionTTLHours:     24,
			SessionStore:        config.SessionStoreMemory,
			CookieName:          "placement_session",
			ScryptN:             1024,
			ScryptR:             8,
			ScryptP:             1,
			EmployerAutoApprove: true,
		},
	}
}

func newTestApp(t *testing.T) (*Services, *fiber.App) {
	t.Helper()
	services, err := New(context.Background(), testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(services.Close)
	return services, services.HTTP()
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type response struct {
	status  int
	body    envelope
	cookies []*http.Cookie
}

func call(t *testing.T, app *fiber.App, method, path string, payload any, token string, cookies ...*http.Cookie) response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return response{status: resp.StatusCode, body: env, cookies: resp.Cookies()}
}

func (r response) decode(t *testing.T, out any) {
	t.Helper()
	if err := json.Unmarshal(r.body.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", r.body.Data, err)
	}
}

func (r response) expect(t *testing.T, status int, code string) {
	t.Helper()
	if r.status != status {
		t.Fatalf("status = %d, want %d (body %+v)", r.status, status, r.body.Error)
	}
	if code == "" {
		return
	}
	if r.body.Error == nil || r.body.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", r.body.Error, code)
	}
}

type authData struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
	Auth struct {
		Token string `json:"token"`
	} `json:"auth"`
}

func register(t *testing.T, app *fiber.App, payload map[string]any) authData {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/register", payload, "")
	resp.expect(t, http.StatusCreated, "")
	var data authData
	resp.decode(t, &data)
	if data.Auth.Token == "" {
		t.Fatal("register returned no token")
	}
	return data
}

func TestPlacementWorkflowOverHTTP(t *testing.T) {
	_, app := newTestApp(t)

	techcorp := register(t, app, map[string]any{
		"username": "techcorp", "password": "emp123", "role": "employer",
		"name": "Tech Corp HR", "email": "hr@techcorp.com",
		"employer_details": map[string]any{"company_name": "Tech Corp", "industry": "Software", "website": "https://techcorp.com"},
	})

	resp := call(t, app, http.MethodPost, "/api/jobs", map[string]any{
		"title": "Junior React Developer", "description": "React skills wanted",
		"requirements": "React, Node.js, TypeScript", "location": "Remote", "salary": "$60,000",
	}, techcorp.Auth.Token)
	resp.expect(t, http.StatusCreated, "")
	var job struct {
		ID         string   `json:"id"`
		EmployerID string   `json:"employer_id"`
		Tags       []string `json:"tags"`
	}
	resp.decode(t, &job)
	if job.EmployerID != techcorp.User.ID || len(job.Tags) != 3 {
		t.Fatalf("unexpected job %+v", job)
	}

	alice := register(t, app, map[string]any{
		"username": "alice", "password": "student123", "role": "student",
		"name": "Alice Smith", "email": "alice@student.edu",
		"student_details": map[string]any{"department": "Computer Science", "cgpa": 3.8, "graduation_year": 2024},
	})

	resp = call(t, app, http.MethodPost, "/api/applications", map[string]any{"job_id": job.ID}, alice.Auth.Token)
	resp.expect(t, http.StatusCreated, "")
	var application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	resp.decode(t, &application)
	if application.Status != "applied" {
		t.Fatalf("status = %q, want applied", application.Status)
	}

	call(t, app, http.MethodPost, "/api/applications", map[string]any{"job_id": job.ID}, alice.Auth.Token).
		expect(t, http.StatusBadRequest, "CONFLICT")

	call(t, app, http.MethodPatch, "/api/applications/"+application.ID+"/status", map[string]any{"status": "accepted"}, alice.Auth.Token).
		expect(t, http.StatusForbidden, "FORBIDDEN")

	resp = call(t, app, http.MethodPatch, "/api/applications/"+application.ID+"/status", map[string]any{"status": "accepted"}, techcorp.Auth.Token)
	resp.expect(t, http.StatusOK, "")
	resp.decode(t, &application)
	if application.Status != "accepted" {
		t.Fatalf("status = %q, want accepted", application.Status)
	}

	resp = call(t, app, http.MethodGet, "/api/applications", nil, techcorp.Auth.Token)
	resp.expect(t, http.StatusOK, "")
	var listed []struct {
		ID string `json:"id"`
	}
	resp.decode(t, &listed)
	if len(listed) != 1 || listed[0].ID != application.ID {
		t.Fatalf("employer listing = %+v", listed)
	}

	call(t, app, http.MethodGet, "/api/stats", nil, alice.Auth.Token).expect(t, http.StatusForbidden, "FORBIDDEN")
	call(t, app, http.MethodPost, "/api/jobs", map[string]any{"title": "x", "description": "y", "location": "z"}, alice.Auth.Token).
		expect(t, http.StatusForbidden, "FORBIDDEN")
	call(t, app, http.MethodGet, "/api/jobs/missing", nil, alice.Auth.Token).expect(t, http.StatusNotFound, "NOT_FOUND")
}

func TestAuthEndpoints(t *testing.T) {
	_, app := newTestApp(t)

	call(t, app, http.MethodGet, "/api/jobs", nil, "").expect(t, http.StatusUnauthorized, "UNAUTHORIZED")

	register(t, app, map[string]any{
		"username": "admin", "password": "admin123", "role": "admin", "name": "Admin", "email": "admin@college.edu",
	})
	call(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "admin", "password": "other123", "role": "officer", "name": "Other", "email": "o@college.edu",
	}, "").expect(t, http.StatusBadRequest, "DUPLICATE_USERNAME")
	call(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "bob", "password": "secret123", "role": "student", "name": "Bob", "email": "bob@college.edu",
	}, "").expect(t, http.StatusBadRequest, "VALIDATION_FAILED")

	call(t, app, http.MethodPost, "/api/auth/login", map[string]any{"username": "admin", "password": "nope"}, "").
		expect(t, http.StatusUnauthorized, "UNAUTHORIZED")

	resp := call(t, app, http.MethodPost, "/api/auth/login", map[string]any{"username": "admin", "password": "admin123"}, "")
	resp.expect(t, http.StatusOK, "")

	var session *http.Cookie
	for _, cookie := range resp.cookies {
		if cookie.Name == "placement_session" {
			session = cookie
		}
	}
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie, got %+v", resp.cookies)
	}

	resp = call(t, app, http.MethodGet, "/api/auth/me", nil, "", session)
	resp.expect(t, http.StatusOK, "")
	var me struct {
		User struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	resp.decode(t, &me)
	if me.User.Username != "admin" || me.User.Role != "admin" {
		t.Fatalf("unexpected me %+v", me)
	}

	call(t, app, http.MethodGet, "/api/stats", nil, "", session).expect(t, http.StatusOK, "")

	call(t, app, http.MethodPost, "/api/auth/logout", nil, "", session).expect(t, http.StatusOK, "")
	call(t, app, http.MethodGet, "/api/auth/me", nil, "", session).expect(t, http.StatusUnauthorized, "UNAUTHORIZED")
	call(t, app, http.MethodPost, "/api/auth/logout", nil, "").expect(t, http.StatusOK, "")
}

func TestHealthEndpoints(t *testing.T) {
	_, app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil), -1)
	if err != nil {
		t.Fatalf("ready: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ready status = %d", resp.StatusCode)
	}

	call(t, app, http.MethodGet, "/api/nowhere", nil, "").expect(t, http.StatusNotFound, "NOT_FOUND")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/metrics", nil), -1)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	var body struct {
		Data struct {
			Requests map[string]int64 `json:"requests"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if len(body.Data.Requests) == 0 {
		t.Fatal("expected recorded requests")
	}
}

func TestSeededDemoAccountsCanLogIn(t *testing.T) {
	services, app := newTestApp(t)
	if _, err := services.Seeder.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for user, password := range map[string]string{"admin": "admin123", "techcorp": "emp123", "alice": "student123"} {
		call(t, app, http.MethodPost, "/api/auth/login", map[string]any{"username": user, "password": password}, "").
			expect(t, http.StatusOK, "")
	}
}
