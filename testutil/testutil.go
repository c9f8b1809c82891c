// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-ask/bootstrap"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/store"
)

const (
	TestSecret     = "test-secret-key"
	TestSetupToken = "test-setup-token"
)

// OpenTestDB opens an empty SQLite database in a temp dir. No schema.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestDB creates a fresh test database with the full schema and the
// default admin account
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := OpenTestDB(t)
	if _, err := bootstrap.EnsureInitialized(context.Background(), conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Command:      cliparse.CommandServe,
		Port:         3318,
		DatabaseURL:  "test.db",
		DatabaseType: "sqlite",
		SecretKey:    TestSecret,
		SetupToken:   TestSetupToken,
		SessionTTL:   time.Hour,
		LogFormat:    "text",
	}
}

// CreateTestQuestion inserts a question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, body string) int64 {
	t.Helper()

	q, err := store.New(conn, db.DialectSQLite).CreateQuestion(context.Background(), body)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q.ID
}

// CreateTestPost inserts a post and returns its ID
func CreateTestPost(t *testing.T, conn *sql.DB, title, body string) int64 {
	t.Helper()

	p, err := store.New(conn, db.DialectSQLite).CreatePost(context.Background(), title, body)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return p.ID
}

// MakeFormRequest creates an HTTP test request with a url-encoded form body
func MakeFormRequest(method, path string, form url.Values, cookies []*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// Serve runs req through h and returns the recorded response
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Login posts credentials to /login on h and returns the cookies it set
func Login(t *testing.T, h http.Handler, username, password string) []*http.Cookie {
	t.Helper()

	req := MakeFormRequest("POST", "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	w := Serve(h, req)

	AssertRedirect(t, w, "/dashboard")
	return w.Result().Cookies()
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("Expected redirect to %s, got %s", location, got)
	}
}
