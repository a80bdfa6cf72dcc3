package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_backend/pkg/config"
)

func gatedApp(store *session.Store) *fiber.App {
	app := fiber.New()
	// stands in for the external login flow
	app.Get("/login/:id", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(SessionUserKey, c.Params("id"))
		return sess.Save()
	})
	app.Get("/private", RequireSession(store, "/"), func(c *fiber.Ctx) error {
		return c.SendString("hello " + SessionUser(c))
	})
	return app
}

func login(t *testing.T, app *fiber.App, id string) *http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login/"+id, nil))
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	app := gatedApp(NewSessionStore(config.SessionConfig{TTL: time.Hour}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "hello")
}

func TestRequireSessionAdmitsAuthenticated(t *testing.T) {
	app := gatedApp(NewSessionStore(config.SessionConfig{TTL: time.Hour}, nil))
	cookie := login(t, app, "c-42")

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello c-42", string(body))
}

func TestRequireSessionUnknownCookie(t *testing.T) {
	app := gatedApp(NewSessionStore(config.SessionConfig{TTL: time.Hour}, nil))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "forged"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func newRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStorage(client, "sess:"), mr
}

func TestRedisStorage(t *testing.T) {
	s, mr := newRedisStorage(t)
	defer s.Close()

	val, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("abc", []byte("data"), time.Minute))
	assert.True(t, mr.Exists("sess:abc"))

	val, err = s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), val)

	mr.FastForward(2 * time.Minute)
	val, err = s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("k1", []byte("1"), 0))
	require.NoError(t, s.Delete("k1"))
	assert.False(t, mr.Exists("sess:k1"))
}

func TestRedisStorageResetKeepsForeignKeys(t *testing.T) {
	s, mr := newRedisStorage(t)
	defer s.Close()

	require.NoError(t, mr.Set("other:key", "keep"))
	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	require.NoError(t, s.Reset())
	assert.False(t, mr.Exists("sess:a"))
	assert.False(t, mr.Exists("sess:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestSessionGateOverRedis(t *testing.T) {
	s, _ := newRedisStorage(t)
	defer s.Close()

	app := gatedApp(NewSessionStore(config.SessionConfig{TTL: time.Hour}, s))
	cookie := login(t, app, "c-7")

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
