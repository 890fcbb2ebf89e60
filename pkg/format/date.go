package format

import (
	"time"

	"github.com/pocketbook/backend/internal/types"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Date formats a date as dd/MM/yyyy.
func Date(d types.Date) string {
	return d.Time().Format(dateLayout)
}

// DateTime formats a time as dd/MM/yyyy HH:mm in its own location.
func DateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}
