package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCacheServesRepeatedGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()

	hits := 0
	r := gin.New()
	r.GET("/tickets/:id", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tickets/PC-12345", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}

	if hits != 1 {
		t.Errorf("handler ran %d times, want 1 (cached afterwards)", hits)
	}
}

func TestCacheSkipsErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()

	hits := 0
	r := gin.New()
	r.GET("/missing", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found."})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	}

	if hits != 2 {
		t.Errorf("handler ran %d times, want 2 (404 must not be cached)", hits)
	}
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()

	r := gin.New()
	r.GET("/list", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"filter": c.Query("filter")})
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/list?filter=pending", nil))

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/list?filter=approved", nil))

	if first.Body.String() == second.Body.String() {
		t.Error("different query strings must not share a cache entry")
	}
}
