package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose query
// parameter, as given in the "form" struct tag, is set in the URL.
//
// This allows filtering for zero values like "favorite=false" without
// defining the fields as pointers.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if param != "" && url.Query().Has(param) {
			setFields = append(setFields, field)
		}
	}
	return setFields
}
