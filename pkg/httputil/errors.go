package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrValidation       = errors.New("the request contains invalid values, see validationErrors for details")
	ErrInvalidQuery     = errors.New("the query string contains unparseable data. Please check the values")
)
