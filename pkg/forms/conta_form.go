package forms

import (
	"strconv"

	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// ContaForm holds the state of the conta create and edit form. All inputs
// are kept as strings the way they are typed.
type ContaForm struct {
	ContaID int
	Record  models.Conta

	Description FormField[string]
	Date        FormField[string]
	Amount      FormField[string]
	Paid        FormField[string]
	Type        FormField[string]
}

// NewContaForm returns a form for a conta. New contas default to an unpaid
// expense dated today.
func NewContaForm(contaID int, today types.Date) *ContaForm {
	if contaID < 0 {
		contaID = 0
	}

	return &ContaForm{
		ContaID: contaID,
		Date:    FormField[string]{Value: today.String()},
		Paid:    FormField[string]{Value: "false"},
		Type:    FormField[string]{Value: string(models.ContaTypeExpense)},
	}
}

func (f *ContaForm) IsNew() bool {
	return f.ContaID <= 0
}

func (f *ContaForm) IsValid() bool {
	return f.Description.IsValid() &&
		f.Date.IsValid() &&
		f.Amount.IsValid() &&
		f.Paid.IsValid() &&
		f.Type.IsValid()
}

// Validate re-runs all validators and reports if the form is valid.
func (f *ContaForm) Validate() bool {
	f.Description.ErrorCode = ValidateDescription(f.Description.Value)
	f.Date.ErrorCode = ValidateDate(f.Date.Value)
	f.Amount.ErrorCode = ValidateAmount(f.Amount.Value)
	f.Paid.ErrorCode = ValidatePaid(f.Paid.Value)
	f.Type.ErrorCode = ValidateContaType(f.Type.Value)

	return f.IsValid()
}

// Load fills the form from a stored conta. A conta without a type is
// loaded as an expense.
func (f *ContaForm) Load(c models.Conta) {
	if c.Type == "" {
		c.Type = models.ContaTypeExpense
	}

	f.ContaID = c.ID
	f.Record = c
	f.Description = FormField[string]{Value: c.Description}
	f.Date = FormField[string]{Value: c.Date.String()}
	f.Amount = FormField[string]{Value: c.Amount.String()}
	f.Paid = FormField[string]{Value: strconv.FormatBool(c.Paid)}
	f.Type = FormField[string]{Value: string(c.Type)}
}

func (f *ContaForm) SetDescription(value string) {
	if f.Description.Value != value {
		f.Description = FormField[string]{Value: value, ErrorCode: ValidateDescription(value)}
	}
}

func (f *ContaForm) SetDate(value string) {
	if f.Date.Value != value {
		f.Date = FormField[string]{Value: value, ErrorCode: ValidateDate(value)}
	}
}

func (f *ContaForm) SetAmount(value string) {
	if f.Amount.Value != value {
		f.Amount = FormField[string]{Value: value, ErrorCode: ValidateAmount(value)}
	}
}

func (f *ContaForm) SetPaid(value string) {
	if f.Paid.Value != value {
		f.Paid = FormField[string]{Value: value, ErrorCode: ValidatePaid(value)}
	}
}

// TogglePaid flips the paid input between true and false.
func (f *ContaForm) TogglePaid() {
	f.SetPaid(strconv.FormatBool(f.Paid.Value != "true"))
}

func (f *ContaForm) SetType(value string) {
	if f.Type.Value != value {
		f.Type = FormField[string]{Value: value, ErrorCode: ValidateContaType(value)}
	}
}

// ToggleType flips the type between income and expense.
func (f *ContaForm) ToggleType() {
	if f.Type.Value == string(models.ContaTypeIncome) {
		f.SetType(string(models.ContaTypeExpense))
		return
	}
	f.SetType(string(models.ContaTypeIncome))
}

// Conta returns the loaded conta with the values of the form applied.
// The form must be valid.
func (f *ContaForm) Conta() models.Conta {
	c := f.Record
	c.ID = f.ContaID
	c.Description = f.Description.Value
	c.Date, _ = types.ParseDate(f.Date.Value)
	c.Amount, _ = decimal.NewFromString(f.Amount.Value)
	c.Paid = f.Paid.Value == "true"
	c.Type = models.ContaType(f.Type.Value)
	return c
}
