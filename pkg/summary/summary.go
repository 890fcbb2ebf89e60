// Package summary computes the totals shown above the conta list.
package summary

import (
	"github.com/pocketbook/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Summary is the balance and projection of a list of contas.
type Summary struct {
	Balance    decimal.Decimal `json:"balance" swaggertype:"string" example:"1250.75"`   // Sum of all paid contas, expenses negated
	Projection decimal.Decimal `json:"projection" swaggertype:"string" example:"850.10"` // Sum of all contas, expenses negated
	Count      int             `json:"count" example:"8"`                                // Number of contas summarized
}

// Balance sums the signed amounts of all paid contas.
func Balance(contas []models.Conta) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contas {
		if c.Paid {
			total = total.Add(c.SignedAmount())
		}
	}
	return total
}

// Projection sums the signed amounts of all contas, paid or not.
func Projection(contas []models.Conta) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contas {
		total = total.Add(c.SignedAmount())
	}
	return total
}

func Summarize(contas []models.Conta) Summary {
	return Summary{
		Balance:    Balance(contas),
		Projection: Projection(contas),
		Count:      len(contas),
	}
}
