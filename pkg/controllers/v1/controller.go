// Package v1 implements the handlers for the v1 API.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
)

// Controller holds the stores the handlers work on.
type Controller struct {
	Contacts  datasource.Store[models.Contact]
	Contas    datasource.Store[models.Conta]
	Simulator *datasource.Simulator

	// Today returns the current date. Defaults to types.Today.
	Today func() types.Date
}

func (co Controller) today() types.Date {
	if co.Today == nil {
		return types.Today()
	}
	return co.Today()
}

// do runs fn through the simulator with the request context.
func (co Controller) do(c *gin.Context, op datasource.Operation, fn func(ctx context.Context) error) error {
	ctx := c.Request.Context()
	return co.Simulator.Do(ctx, op, func() error {
		return fn(ctx)
	})
}

// RegisterRoutes registers the root route and all collections with the
// RouterGroup for /v1.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r)
	co.RegisterContactRoutes(r.Group("/contacts"))
	co.RegisterContaRoutes(r.Group("/contas"))
}
