package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "resume-analyzer"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(testSecret, testIssuer))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalClientID).(string)
		return c.SendString(id)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	tok, err := g.Generate(context.Background(), auth.Client{ID: "ops"})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Value)
	assert.Equal(t, fixed.Add(time.Hour), tok.ExpiresAt)

	_, err = NewGenerator("", testIssuer, time.Hour).Generate(context.Background(), auth.Client{ID: "ops"})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	app := newTestApp()
	good, err := NewGenerator(testSecret, testIssuer, time.Hour).Generate(context.Background(), auth.Client{ID: "ops"})
	require.NoError(t, err)
	otherIssuer, err := NewGenerator(testSecret, "someone-else", time.Hour).Generate(context.Background(), auth.Client{ID: "ops"})
	require.NoError(t, err)
	wrongSecret, err := NewGenerator("other", testIssuer, time.Hour).Generate(context.Background(), auth.Client{ID: "ops"})
	require.NoError(t, err)

	expiredGen := NewGenerator(testSecret, testIssuer, time.Minute)
	expiredGen.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredGen.Generate(context.Background(), auth.Client{ID: "ops"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"bearer", "Bearer " + good.Value, http.StatusOK, "ops"},
		{"lowercase scheme", "bearer " + good.Value, http.StatusOK, "ops"},
		{"bare token", good.Value, http.StatusOK, "ops"},
		{"missing", "", http.StatusUnauthorized, "missing Authorization header"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "empty token"},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, "invalid or expired token"},
		{"wrong secret", "Bearer " + wrongSecret.Value, http.StatusUnauthorized, "invalid or expired token"},
		{"expired", "Bearer " + expired.Value, http.StatusUnauthorized, "invalid or expired token"},
		{"wrong issuer", "Bearer " + otherIssuer.Value, http.StatusUnauthorized, "invalid token issuer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doGet(t, app, tc.header)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, tc.body)
		})
	}
}
