// Package forms implements the state and validation of the contact and conta
// edit forms.
//
// Validation functions are pure and return NoError for valid input.
package forms

import (
	"regexp"
	"strings"

	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// MaxPhoneDigits is the longest phone number accepted while typing.
const MaxPhoneDigits = 11

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateFirstName(firstName string) ErrorCode {
	if isBlank(firstName) {
		return FirstNameRequired
	}
	return NoError
}

// SanitizePhone drops everything but ASCII digits.
func SanitizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone accepts empty phone numbers and numbers with 10 or 11 characters.
func ValidatePhone(phone string) ErrorCode {
	if !isBlank(phone) && (len(phone) < 10 || len(phone) > MaxPhoneDigits) {
		return PhoneInvalid
	}
	return NoError
}

func ValidateEmail(email string) ErrorCode {
	if !isBlank(email) && !emailPattern.MatchString(email) {
		return EmailInvalid
	}
	return NoError
}

// ValidateNetWorth accepts blank input and anything that parses as a decimal.
func ValidateNetWorth(netWorth string) ErrorCode {
	if isBlank(netWorth) {
		return NoError
	}
	if _, err := decimal.NewFromString(netWorth); err != nil {
		return NetWorthInvalid
	}
	return NoError
}

// ParseNetWorth parses a net worth input. Blank input is zero.
func ParseNetWorth(netWorth string) (decimal.Decimal, error) {
	if isBlank(netWorth) {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(netWorth)
}

func ValidateContactType(t string) ErrorCode {
	if _, err := models.ParseContactType(t); err != nil {
		return TypeInvalid
	}
	return NoError
}

func ValidateDescription(description string) ErrorCode {
	if isBlank(description) {
		return DescriptionRequired
	}
	return NoError
}

func ValidateDate(date string) ErrorCode {
	if _, err := types.ParseDate(date); err != nil {
		return DateInvalid
	}
	return NoError
}

func ValidateAmount(amount string) ErrorCode {
	if isBlank(amount) {
		return AmountRequired
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return AmountInvalid
	}
	if d.IsNegative() {
		return AmountNegative
	}
	return NoError
}

func ValidatePaid(paid string) ErrorCode {
	if paid != "true" && paid != "false" {
		return PaidInvalid
	}
	return NoError
}

func ValidateContaType(t string) ErrorCode {
	if _, err := models.ParseContaType(t); err != nil {
		return TypeInvalid
	}
	return NoError
}
