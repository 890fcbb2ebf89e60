package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrSimulatedFailure is returned by the simulated data source when its coin flip fails.
	// Clients are expected to retry.
	ErrSimulatedFailure = errors.New("the data source failed to process the request, please try again")

	ErrContactTypeInvalid = errors.New("contact type must be one of PERSONAL or PROFESSIONAL")
	ErrContaTypeInvalid   = errors.New("conta type must be one of INCOME or EXPENSE")
)
