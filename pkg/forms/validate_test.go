package forms_test

import (
	"testing"

	"github.com/pocketbook/backend/pkg/forms"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) forms.ErrorCode
		input    string
		expected forms.ErrorCode
	}{
		{"First name set", forms.ValidateFirstName, "Ana", forms.NoError},
		{"First name empty", forms.ValidateFirstName, "", forms.FirstNameRequired},
		{"First name blank", forms.ValidateFirstName, "  \t", forms.FirstNameRequired},
		{"Phone empty", forms.ValidatePhone, "", forms.NoError},
		{"Phone 10 digits", forms.ValidatePhone, "5588887777", forms.NoError},
		{"Phone 11 digits", forms.ValidatePhone, "55988887777", forms.NoError},
		{"Phone too short", forms.ValidatePhone, "558888777", forms.PhoneInvalid},
		{"Phone too long", forms.ValidatePhone, "559888877771", forms.PhoneInvalid},
		{"Email empty", forms.ValidateEmail, "", forms.NoError},
		{"Email valid", forms.ValidateEmail, "ana.cordeiro@example.com", forms.NoError},
		{"Email with dash", forms.ValidateEmail, "ana-c@mail.example.org", forms.NoError},
		{"Email no at", forms.ValidateEmail, "ana.example.com", forms.EmailInvalid},
		{"Email no tld", forms.ValidateEmail, "ana@example", forms.EmailInvalid},
		{"Email tld too long", forms.ValidateEmail, "ana@example.toolong", forms.EmailInvalid},
		{"Net worth empty", forms.ValidateNetWorth, "", forms.NoError},
		{"Net worth decimal", forms.ValidateNetWorth, "1500.25", forms.NoError},
		{"Net worth negative", forms.ValidateNetWorth, "-3", forms.NoError},
		{"Net worth text", forms.ValidateNetWorth, "lots", forms.NetWorthInvalid},
		{"Net worth comma", forms.ValidateNetWorth, "1,5", forms.NetWorthInvalid},
		{"Contact type personal", forms.ValidateContactType, "PERSONAL", forms.NoError},
		{"Contact type unknown", forms.ValidateContactType, "FAMILY", forms.TypeInvalid},
		{"Description set", forms.ValidateDescription, "Rent", forms.NoError},
		{"Description blank", forms.ValidateDescription, " ", forms.DescriptionRequired},
		{"Date valid", forms.ValidateDate, "2024-02-29", forms.NoError},
		{"Date invalid day", forms.ValidateDate, "2023-02-29", forms.DateInvalid},
		{"Date wrong format", forms.ValidateDate, "29/02/2024", forms.DateInvalid},
		{"Amount valid", forms.ValidateAmount, "189.90", forms.NoError},
		{"Amount zero", forms.ValidateAmount, "0", forms.NoError},
		{"Amount blank", forms.ValidateAmount, "", forms.AmountRequired},
		{"Amount text", forms.ValidateAmount, "ten", forms.AmountInvalid},
		{"Amount negative", forms.ValidateAmount, "-1", forms.AmountNegative},
		{"Paid true", forms.ValidatePaid, "true", forms.NoError},
		{"Paid false", forms.ValidatePaid, "false", forms.NoError},
		{"Paid other", forms.ValidatePaid, "yes", forms.PaidInvalid},
		{"Conta type income", forms.ValidateContaType, "INCOME", forms.NoError},
		{"Conta type lower case", forms.ValidateContaType, "income", forms.TypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.validate(tt.input))
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "55988887777", forms.SanitizePhone("(55) 98888-7777"))
	assert.Equal(t, "", forms.SanitizePhone("abc"))
	assert.Equal(t, "12", forms.SanitizePhone("1٣2"), "non-ASCII digits are dropped")
}

func TestParseNetWorth(t *testing.T) {
	d, err := forms.ParseNetWorth("")
	assert.Nil(t, err)
	assert.True(t, d.IsZero())

	d, err = forms.ParseNetWorth("12.5")
	assert.Nil(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = forms.ParseNetWorth("x")
	assert.NotNil(t, err)
}

func TestErrorCodeMessage(t *testing.T) {
	assert.Equal(t, "", forms.NoError.Message())
	assert.Equal(t, "First name is required", forms.FirstNameRequired.Message())
	assert.Equal(t, "unknown error", forms.ErrorCode(999).Message())
}

func TestFormField(t *testing.T) {
	f := forms.FormField[string]{Value: "x"}
	assert.True(t, f.IsValid())
	assert.False(t, f.HasError())

	f.ErrorCode = forms.EmailInvalid
	assert.False(t, f.IsValid())
	assert.True(t, f.HasError())
}
