package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/summary"
	"github.com/shopspring/decimal"
)

type ContaEditable struct {
	Description string           `json:"description" binding:"notblank" example:"Electricity bill"`                           // What the conta is for
	Date        types.Date       `json:"date" binding:"required" swaggertype:"string" example:"2024-03-10"`                   // Date of the conta. Defaults to today
	Amount      decimal.Decimal  `json:"amount" binding:"nonnegative" swaggertype:"string" example:"189.90" minimum:"0"`      // Amount, the type decides the sign
	Paid        bool             `json:"paid" example:"false" default:"false"`                                                // Has the conta been paid?
	Type        models.ContaType `json:"type" binding:"contatype" example:"EXPENSE" enums:"INCOME,EXPENSE" default:"EXPENSE"` // Income or expense
}

func defaultContaEditable(today types.Date) ContaEditable {
	return ContaEditable{
		Date: today,
		Type: models.ContaTypeExpense,
	}
}

func newContaEditable(model models.Conta) ContaEditable {
	return ContaEditable{
		Description: model.Description,
		Date:        model.Date,
		Amount:      model.Amount,
		Paid:        model.Paid,
		Type:        model.Type,
	}
}

// apply returns the conta with the editable fields replaced.
func (editable ContaEditable) apply(model models.Conta) models.Conta {
	model.Description = editable.Description
	model.Date = editable.Date
	model.Amount = editable.Amount
	model.Paid = editable.Paid
	model.Type = editable.Type
	return model
}

type ContaLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/contas/7"` // The conta itself
}

// ContaDisplay contains the conta's values formatted for display.
type ContaDisplay struct {
	Date   string `json:"date" example:"10/03/2024"`  // Formatted date
	Amount string `json:"amount" example:"-R$189,90"` // Formatted signed amount
}

// Conta is the API v1 representation of a Conta.
type Conta struct {
	models.Conta
	Display ContaDisplay `json:"display"`
	Links   ContaLinks   `json:"links"`
}

func newConta(c *gin.Context, model models.Conta) Conta {
	url := c.GetString(string(models.DBContextURL))

	return Conta{
		Conta: model,
		Display: ContaDisplay{
			Date:   format.Date(model.Date),
			Amount: format.Currency(model.SignedAmount()),
		},
		Links: ContaLinks{
			Self: fmt.Sprintf("%s/v1/contas/%d", url, model.ID),
		},
	}
}

type ContaListResponse struct {
	Data       []Conta     `json:"data"`                                                                   // List of contas
	Error      *string     `json:"error" example:"the month query parameter must be formatted as YYYY-MM"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                             // Pagination information
}

type ContaResponse struct {
	Data             *Conta                     `json:"data"`                                                  // Data for the conta
	Error            *string                    `json:"error" example:"there is no conta matching your query"` // The error, if any occurred
	ValidationErrors []httputil.ValidationError `json:"validationErrors,omitempty"`                            // Invalid fields of the request body
}

type ContaQueryFilter struct {
	Paid        bool             `form:"paid"`        // Has the conta been paid?
	Type        models.ContaType `form:"type"`        // By type
	Month       string           `form:"month"`       // Year and month in YYYY-MM format
	Description string           `form:"description"` // Glob pattern on the description, e.g. "*bill"
	Offset      uint             `form:"offset"`      // The offset of the first Conta returned. Defaults to 0.
	Limit       int              `form:"limit"`       // Maximum number of Contas to return. Defaults to 50.
}

// ContaSummary is the balance and projection over a list of contas.
type ContaSummary struct {
	summary.Summary
	Formatted ContaSummaryFormatted `json:"formatted"`
}

type ContaSummaryFormatted struct {
	Balance    string `json:"balance" example:"R$1.250,75"`  // Formatted balance
	Projection string `json:"projection" example:"R$850,10"` // Formatted projection
}

type ContaSummaryResponse struct {
	Data  *ContaSummary `json:"data"`                                                                   // Balance and projection
	Error *string       `json:"error" example:"the month query parameter must be formatted as YYYY-MM"` // The error, if any occurred
}
