package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/summary"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterContaRoutes registers the routes for contas with
// the RouterGroup that is passed.
func (co Controller) RegisterContaRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsContaList)
		r.GET("", co.GetContas)
		r.POST("", co.CreateConta)
		r.OPTIONS("/summary", co.OptionsContaSummary)
		r.GET("/summary", co.GetContaSummary)
	}

	// Conta with ID
	{
		r.OPTIONS("/:id", co.OptionsContaDetail)
		r.GET("/:id", co.GetConta)
		r.PATCH("/:id", co.UpdateConta)
		r.DELETE("/:id", co.DeleteConta)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contas
// @Success		204
// @Router			/v1/contas [options]
func (co Controller) OptionsContaList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contas
// @Success		204
// @Router			/v1/contas/summary [options]
func (co Controller) OptionsContaSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contas
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		int	true	"ID of the conta"
// @Router			/v1/contas/{id} [options]
func (co Controller) OptionsContaDetail(c *gin.Context) {
	if _, err := co.findConta(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

func (co Controller) findConta(c *gin.Context) (models.Conta, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Conta{}, err
	}

	return co.Contas.FindByID(c.Request.Context(), uri.ID)
}

// @Summary		Create conta
// @Description	Creates a new conta. Missing fields default to an unpaid expense dated today.
// @Tags			Contas
// @Produce		json
// @Success		201		{object}	ContaResponse
// @Failure		400		{object}	ContaResponse
// @Failure		500		{object}	ContaResponse
// @Failure		503		{object}	ContaResponse
// @Param			conta	body		ContaEditable	true	"Conta"
// @Router			/v1/contas [post]
func (co Controller) CreateConta(c *gin.Context) {
	editable := defaultContaEditable(co.today())

	if err := httputil.BindData(c, &editable); err != nil {
		co.contaError(c, err)
		return
	}

	var conta models.Conta
	err := co.do(c, datasource.OperationSave, func(ctx context.Context) (err error) {
		conta, err = co.Contas.Save(ctx, editable.apply(models.Conta{}))
		return
	})
	if err != nil {
		co.contaError(c, err)
		return
	}

	data := newConta(c, conta)
	c.JSON(http.StatusCreated, ContaResponse{Data: &data})
}

// loadContas returns all contas matching the filter.
func (co Controller) loadContas(c *gin.Context, filter ContaQueryFilter) ([]models.Conta, error) {
	var month types.Month
	if filter.Month != "" {
		m, err := types.ParseMonth(filter.Month)
		if err != nil {
			return nil, errMonthInvalid
		}
		month = m
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	var all []models.Conta
	err := co.do(c, datasource.OperationLoad, func(ctx context.Context) (err error) {
		all, err = co.Contas.FindAll(ctx)
		return
	})
	if err != nil {
		return nil, err
	}

	matching := make([]models.Conta, 0, len(all))
	for _, conta := range all {
		if slices.Contains(setFields, "Paid") && conta.Paid != filter.Paid {
			continue
		}

		if filter.Type != "" && conta.Type != filter.Type {
			continue
		}

		if !month.IsZero() && !month.Contains(conta.Date) {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, conta.Description) {
			continue
		}

		matching = append(matching, conta)
	}

	return matching, nil
}

// @Summary		List contas
// @Description	Returns a list of contas sorted by ID
// @Tags			Contas
// @Produce		json
// @Success		200			{object}	ContaListResponse
// @Failure		400			{object}	ContaListResponse
// @Failure		500			{object}	ContaListResponse
// @Failure		503			{object}	ContaListResponse
// @Router			/v1/contas [get]
// @Param			paid		query	bool	false	"Has the conta been paid?"
// @Param			type		query	string	false	"Filter by type"
// @Param			month		query	string	false	"Year and month in YYYY-MM format"
// @Param			description	query	string	false	"Glob pattern for the description"
// @Param			offset		query	uint	false	"The offset of the first Conta returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Contas to return. Defaults to 50."
func (co Controller) GetContas(c *gin.Context) {
	var filter ContaQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContaListResponse{
			Error: &s,
		})
		return
	}

	contas, err := co.loadContas(c, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContaListResponse{
			Error: &s,
		})
		return
	}

	// Default to 50 Contas and set the limit
	limit := defaultLimit
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}
	page, pagination := paginate(contas, filter.Offset, limit)

	data := make([]Conta, 0, len(page))
	for _, conta := range page {
		data = append(data, newConta(c, conta))
	}

	c.JSON(http.StatusOK, ContaListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get conta summary
// @Description	Returns the balance (paid contas only) and the projection (all contas) of the contas matching the filter
// @Tags			Contas
// @Produce		json
// @Success		200			{object}	ContaSummaryResponse
// @Failure		400			{object}	ContaSummaryResponse
// @Failure		500			{object}	ContaSummaryResponse
// @Failure		503			{object}	ContaSummaryResponse
// @Router			/v1/contas/summary [get]
// @Param			type		query	string	false	"Filter by type"
// @Param			month		query	string	false	"Year and month in YYYY-MM format"
// @Param			description	query	string	false	"Glob pattern for the description"
func (co Controller) GetContaSummary(c *gin.Context) {
	var filter ContaQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContaSummaryResponse{
			Error: &s,
		})
		return
	}

	contas, err := co.loadContas(c, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContaSummaryResponse{
			Error: &s,
		})
		return
	}

	s := summary.Summarize(contas)
	c.JSON(http.StatusOK, ContaSummaryResponse{
		Data: &ContaSummary{
			Summary: s,
			Formatted: ContaSummaryFormatted{
				Balance:    format.Currency(s.Balance),
				Projection: format.Currency(s.Projection),
			},
		},
	})
}

// @Summary		Get conta
// @Description	Returns a specific conta
// @Tags			Contas
// @Produce		json
// @Success		200	{object}	ContaResponse
// @Failure		400	{object}	ContaResponse
// @Failure		404	{object}	ContaResponse
// @Failure		503	{object}	ContaResponse
// @Param			id	path		int	true	"ID of the conta"
// @Router			/v1/contas/{id} [get]
func (co Controller) GetConta(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		co.contaError(c, err)
		return
	}

	var conta models.Conta
	err := co.do(c, datasource.OperationLoad, func(ctx context.Context) (err error) {
		conta, err = co.Contas.FindByID(ctx, uri.ID)
		return
	})
	if err != nil {
		co.contaError(c, err)
		return
	}

	data := newConta(c, conta)
	c.JSON(http.StatusOK, ContaResponse{Data: &data})
}

// @Summary		Update conta
// @Description	Updates a conta. Only values to be updated need to be specified.
// @Tags			Contas
// @Produce		json
// @Success		200		{object}	ContaResponse
// @Failure		400		{object}	ContaResponse
// @Failure		404		{object}	ContaResponse
// @Failure		500		{object}	ContaResponse
// @Failure		503		{object}	ContaResponse
// @Param			id		path		int				true	"ID of the conta"
// @Param			conta	body		ContaEditable	true	"Conta"
// @Router			/v1/contas/{id} [patch]
func (co Controller) UpdateConta(c *gin.Context) {
	conta, err := co.findConta(c)
	if err != nil {
		co.contaError(c, err)
		return
	}

	editable := newContaEditable(conta)
	if err := httputil.BindData(c, &editable); err != nil {
		co.contaError(c, err)
		return
	}

	err = co.do(c, datasource.OperationSave, func(ctx context.Context) (err error) {
		conta, err = co.Contas.Save(ctx, editable.apply(conta))
		return
	})
	if err != nil {
		co.contaError(c, err)
		return
	}

	data := newConta(c, conta)
	c.JSON(http.StatusOK, ContaResponse{Data: &data})
}

// @Summary		Delete conta
// @Description	Deletes a conta
// @Tags			Contas
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Failure		503	{object}	httpError
// @Param			id	path		int	true	"ID of the conta"
// @Router			/v1/contas/{id} [delete]
func (co Controller) DeleteConta(c *gin.Context) {
	conta, err := co.findConta(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.do(c, datasource.OperationDelete, func(ctx context.Context) error {
		return co.Contas.Delete(ctx, conta.ID)
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (co Controller) contaError(c *gin.Context, err error) {
	s := err.Error()
	errs := httputil.ValidationErrors(err)
	if len(errs) > 0 {
		s = httputil.ErrValidation.Error()
	}

	c.JSON(status(err), ContaResponse{
		Error:            &s,
		ValidationErrors: errs,
	})
}
