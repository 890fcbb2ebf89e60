package models

import (
	"github.com/pocketbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ContaType string

const (
	ContaTypeIncome  ContaType = "INCOME"
	ContaTypeExpense ContaType = "EXPENSE"
)

// ParseContaType parses the string representation of a ContaType.
func ParseContaType(s string) (ContaType, error) {
	switch t := ContaType(s); t {
	case ContaTypeIncome, ContaTypeExpense:
		return t, nil
	}

	return "", ErrContaTypeInvalid
}

// Conta is a single entry in the household ledger.
type Conta struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement:false" example:"7"`                   // Assigned by the data source on insert
	Description string          `json:"description" example:"Electricity bill"`                                 // What the entry is for
	Date        types.Date      `json:"date" swaggertype:"string" example:"2024-03-10"`                         // Due or booking date
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"189.90"` // Always positive, the type decides the sign
	Paid        bool            `json:"paid" example:"true"`                                                    // Only paid entries count towards the balance
	Type        ContaType       `json:"type" gorm:"default:EXPENSE" example:"EXPENSE" enums:"INCOME,EXPENSE"`   // Income or expense
}

func (Conta) TableName() string {
	return "contas"
}

func (c Conta) Identifier() int {
	return c.ID
}

func (c Conta) WithID(id int) Conta {
	c.ID = id
	return c
}

// SignedAmount is the amount, negated for expenses.
func (c Conta) SignedAmount() decimal.Decimal {
	if c.Type == ContaTypeExpense {
		return c.Amount.Neg()
	}
	return c.Amount
}
