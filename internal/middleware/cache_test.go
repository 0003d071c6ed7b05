package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheTestSetup(t *testing.T) (*gin.Engine, *redis.Client, *int) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hits := 0
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/events", EventListCache(rdb, time.Minute), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"events": []string{"concert"}, "served": hits})
	})
	return r, rdb, &hits
}

func TestEventListCache_MissThenHit(t *testing.T) {
	r, _, hits := cacheTestSetup(t)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/events?page=1", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, *hits)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/events?page=1", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, *hits, "cached response must not reach the handler")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestEventListCache_KeyedByQuery(t *testing.T) {
	r, _, hits := cacheTestSetup(t)

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/api/events?page=1", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/events?page=2", nil))

	assert.Equal(t, "MISS", w2.Header().Get("X-Cache"))
	assert.Equal(t, 2, *hits)
}

func TestCacheInvalidator_PurgeEventLists(t *testing.T) {
	r, rdb, hits := cacheTestSetup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	require.Equal(t, 1, *hits)

	NewCacheInvalidator(rdb).PurgeEventLists(context.Background())

	after := httptest.NewRecorder()
	r.ServeHTTP(after, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, "MISS", after.Header().Get("X-Cache"))
	assert.Equal(t, 2, *hits, "purge must force the next request back to the handler")
}
