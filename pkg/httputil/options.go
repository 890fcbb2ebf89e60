package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Allow responds with 204 and the "allow" header set to OPTIONS and the
// given methods.
func Allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

func OptionsGet(c *gin.Context) {
	Allow(c, http.MethodGet)
}

func OptionsPost(c *gin.Context) {
	Allow(c, http.MethodPost)
}

func OptionsGetPost(c *gin.Context) {
	Allow(c, http.MethodGet, http.MethodPost)
}

func OptionsGetPatchDelete(c *gin.Context) {
	Allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}
