package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/manicure-agenda/internal/kvstore"
	"github.com/BruksfildServices01/manicure-agenda/internal/session"
)

func newRouter(t *testing.T, sess *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(t)

	r := gin.New()
	r.Use(Recovery(log), CORSMiddleware(), RequestLogger(log))
	r.GET("/me", RequireSession(sess, log), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextProfileID))
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequireSession(t *testing.T) {
	sess := session.NewManager(kvstore.NewMemoryStore())
	r := newRouter(t, sess)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not_logged_in")

	require.NoError(t, sess.SetCurrent(context.Background(), "p1"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := newRouter(t, session.NewManager(kvstore.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := newRouter(t, session.NewManager(kvstore.NewMemoryStore()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestCORS_ForeignOriginNotAllowed(t *testing.T) {
	r := newRouter(t, session.NewManager(kvstore.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, isLocalOrigin("https://app.example.com", []string{"https://app.example.com"}))
}
