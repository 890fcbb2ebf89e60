package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/rs/zerolog/log"
)

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz reports whether both stores can be read. The simulator is
// bypassed, a health check must not fail by chance.
//
//	@Summary		Get health
//	@Description	Returns 204 when the stores can be read and an error otherwise
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httpError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := co.Contacts.FindAll(ctx); err != nil {
		co.unhealthy(c, "contacts", err)
		return
	}

	if _, err := co.Contas.FindAll(ctx); err != nil {
		co.unhealthy(c, "contas", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) unhealthy(c *gin.Context, store string, err error) {
	log.Error().Err(err).Str("store", store).Msg("health check")
	c.JSON(http.StatusInternalServerError, httpError{Error: "the " + store + " store cannot be accessed"})
}
