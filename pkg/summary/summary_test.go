package summary_test

import (
	"testing"

	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func conta(amount string, paid bool, t models.ContaType) models.Conta {
	return models.Conta{
		Amount: decimal.RequireFromString(amount),
		Paid:   paid,
		Type:   t,
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name       string
		contas     []models.Conta
		balance    string
		projection string
	}{
		{"Empty", nil, "0", "0"},
		{"Paid income", []models.Conta{conta("100", true, models.ContaTypeIncome)}, "100", "100"},
		{"Unpaid expense", []models.Conta{conta("40.5", false, models.ContaTypeExpense)}, "0", "-40.5"},
		{
			"Mixed",
			[]models.Conta{
				conta("4500", true, models.ContaTypeIncome),
				conta("1200", true, models.ContaTypeExpense),
				conta("189.90", false, models.ContaTypeExpense),
				conta("300", false, models.ContaTypeIncome),
			},
			"3300",
			"3410.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.balance).Equal(summary.Balance(tt.contas)), "balance is %s", summary.Balance(tt.contas))
			assert.True(t, decimal.RequireFromString(tt.projection).Equal(summary.Projection(tt.contas)), "projection is %s", summary.Projection(tt.contas))

			s := summary.Summarize(tt.contas)
			assert.Equal(t, len(tt.contas), s.Count)
			assert.True(t, s.Balance.Equal(summary.Balance(tt.contas)))
		})
	}
}
