package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("http_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "http_test"))
	router.GET("/v1/realtors/:id/share-link", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/public/leads", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})

	for _, id := range []string{"rlt_1", "rlt_2", "rlt_3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/realtors/"+id+"/share-link", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/public/leads?token=a-1-b", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `http_test_http_requests_total`,
		`method="GET".*path="/v1/realtors/:id/share-link".*status_code="200"`, `3`)
	assertBizMetricLine(t, output, `http_test_http_requests_total`,
		`method="POST".*path="/v1/public/leads".*status_code="201"`, `1`)
	assertBizMetricLine(t, output, `http_test_http_requests_total`,
		`path="unmatched".*status_code="404"`, `1`)
	assert.NotContains(t, output, "a-1-b")
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/realtors/:id", routeLabel("/v1/realtors/:id"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, "unmatched", routeLabel(""))
}
