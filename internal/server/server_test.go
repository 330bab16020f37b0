package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"homepage/internal/config"
	"homepage/internal/models"
	"homepage/internal/seed"
	"homepage/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8080",
		DBRecycleSeconds: 299,
		SessionSecret:    "test-session-secret-at-least-32-chars",
		SessionTTLHours:  1,
		DisplayTimezone:  "UTC",
		Env:              "test",
	}
}

// newTestApp builds a full application over an in-memory sqlite database
// seeded with the default users.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	require.NoError(t, seed.Users(db, seed.DefaultUsers))

	srv := NewServerWithDeps(testConfig(), db)
	return srv.NewApp(), db
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

// login authenticates through the real login route and returns the session cookie.
func login(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()

	resp, err := app.Test(postForm("/login/", url.Values{
		"username": {username},
		"password": {password},
	}))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must issue a session cookie")
	require.NotEmpty(t, cookie.Value)
	return cookie
}

func commentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	return count
}
