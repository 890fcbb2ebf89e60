package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/router"
	"github.com/stretchr/testify/assert"
)

func TestURLMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	url, _ := url.Parse("https://pb.example.com:8081/api")

	r.GET("/", func(ctx *gin.Context) {
		router.URLMiddleware(url)(c)
		c.String(http.StatusOK, c.GetString(string(models.DBContextURL)))
	})

	// Make and decode response
	c.Request, _ = http.NewRequest(http.MethodGet, "https://pb.example.com/", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "https://pb.example.com:8081/api", w.Body.String())
}
