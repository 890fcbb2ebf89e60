package forms

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/pocketbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Struct tags registered by RegisterValidations.
const (
	TagNotBlank     = "notblank"
	TagPhone        = "phone"
	TagEmailAddress = "emailaddress"
	TagNonNegative  = "nonnegative"
	TagContactType  = "contacttype"
	TagContaType    = "contatype"
)

func fieldValidator(validate func(string) ErrorCode) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return validate(fl.Field().String()) == NoError
	}
}

var validations = map[string]validator.Func{
	TagNotBlank: func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	},
	TagPhone: func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		return SanitizePhone(phone) == phone && ValidatePhone(phone) == NoError
	},
	TagEmailAddress: fieldValidator(ValidateEmail),
	TagNonNegative: func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	},
	TagContactType: fieldValidator(ValidateContactType),
	TagContaType:   fieldValidator(ValidateContaType),
}

// RegisterValidations registers the form validators as struct tags on v.
//
// decimal.Decimal and types.Date fields are validated as their string
// representation, a zero date is the empty string.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(types.Date); ok && !d.IsZero() {
			return d.String()
		}
		return ""
	}, types.Date{})

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// CodeFor maps a failed struct validation to the error code the form would
// report for the same input.
func CodeFor(fe validator.FieldError) ErrorCode {
	switch fe.Tag() {
	case TagPhone:
		return PhoneInvalid
	case TagEmailAddress:
		return EmailInvalid
	case TagNonNegative:
		return AmountNegative
	case TagContactType, TagContaType, "oneof":
		return TypeInvalid
	case TagNotBlank, "required":
		switch fe.StructField() {
		case "FirstName":
			return FirstNameRequired
		case "Description":
			return DescriptionRequired
		case "Amount":
			return AmountRequired
		case "Date", "BirthDate":
			return DateInvalid
		}
	}
	return NoError
}
