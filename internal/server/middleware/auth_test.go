package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c4inventario/internal/config"
	"c4inventario/internal/session"
)

func testStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(config.SessionConfig{
		CookieName: "c4_session",
		HashKey:    "0123456789abcdef0123456789abcdef",
		BlockKey:   "0123456789abcdef",
	})
}

func testEngine(store *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireSession(store, nil), func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.String(http.StatusInternalServerError, "no session")
			return
		}
		c.String(http.StatusOK, sess.Claims.Username)
	})
	return r
}

func sessionCookie(t *testing.T, store *session.Store, expiresIn time.Duration) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"role":     "ADMIN",
		"exp":      time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	claims, err := session.DecodeClaims(signed)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, session.Session{Token: signed, Claims: *claims}))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRequireSessionWithoutCookie(t *testing.T) {
	store := testStore(t)
	engine := testEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireSessionWithValidToken(t *testing.T) {
	store := testStore(t)
	engine := testEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, store, time.Hour))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestRequireSessionWithExpiredToken(t *testing.T) {
	store := testStore(t)
	engine := testEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, store, -time.Minute))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The guard must also clear the stale cookie.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	cleared := false
	for _, c := range cookies {
		if c.Name == "c4_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the session cookie to be expired")
}

func TestRequireSessionWithGarbageCookie(t *testing.T) {
	store := testStore(t)
	engine := testEngine(store)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "c4_session", Value: "garbage"})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
