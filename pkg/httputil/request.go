package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pocketbook/backend/pkg/forms"
	"github.com/rs/zerolog/log"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations adds the form validators to gin's binding validator.
// It is safe to call multiple times.
func RegisterValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding does not use go-playground/validator")
			return
		}
		registerErr = forms.RegisterValidations(v)
	})

	return registerErr
}

// BindData binds the JSON body of the request to data, which must be a pointer.
//
// Fields not contained in the body keep their value, so data can be
// prepared with defaults or the current state of a resource.
// Validation failures are returned as validator.ValidationErrors.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return validationErrors
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ValidationError describes a single invalid field of a request body.
type ValidationError struct {
	Field   string          `json:"field" example:"firstName"`                // Name of the field in the request body
	Code    forms.ErrorCode `json:"code" example:"1"`                         // Error code as used by the forms
	Message string          `json:"message" example:"First name is required"` // Human readable error message
}

// ValidationErrors converts validation failures returned by BindData.
// Any other error results in an empty list.
func ValidationErrors(err error) []ValidationError {
	list := []ValidationError{}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return list
	}

	for _, e := range errs {
		code := forms.CodeFor(e)
		message := code.Message()
		if code == forms.NoError {
			message = e.Error()
		}

		list = append(list, ValidationError{
			Field:   jsonName(e.Field()),
			Code:    code,
			Message: message,
		})
	}

	return list
}

// jsonName lower-cases the first letter of a Go field name.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return string(field[0]|0x20) + field[1:]
}
