package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/pocketbook/backend/pkg/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Contacts     string `json:"contacts" example:"https://example.com/api/v1/contacts"`           // URL of Contact collection endpoint
	Contas       string `json:"contas" example:"https://example.com/api/v1/contas"`               // URL of Conta collection endpoint
	ContaSummary string `json:"contaSummary" example:"https://example.com/api/v1/contas/summary"` // URL of the balance and projection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Contacts:     url + "/v1/contacts",
			Contas:       url + "/v1/contas",
			ContaSummary: url + "/v1/contas/summary",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
