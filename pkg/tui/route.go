package tui

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Destination names a screen of the navigation graph.
type Destination string

const (
	ContactsList   Destination = "contactsList"
	ContactDetails Destination = "contactDetails"
	ContactForm    Destination = "contactForm"
	ContasList     Destination = "contasList"
	ContaForm      Destination = "contaForm"
)

const (
	argContactID = "contactId"
	argContaID   = "idConta"
)

var ErrRouteUnknown = errors.New("unknown route")

// Route is a destination with its argument. ID is the contact or conta
// identifier, 0 when the destination has none or a new record is created.
type Route struct {
	Destination Destination
	ID          int
}

// String returns the route in the format accepted by ParseRoute, e.g.
// "contactDetails/3" or "contaForm?idConta=7".
func (r Route) String() string {
	switch r.Destination {
	case ContactDetails:
		return fmt.Sprintf("%s/%d", ContactDetails, r.ID)
	case ContactForm:
		if r.ID > 0 {
			return fmt.Sprintf("%s?%s=%d", ContactForm, argContactID, r.ID)
		}
	case ContaForm:
		if r.ID > 0 {
			return fmt.Sprintf("%s?%s=%d", ContaForm, argContaID, r.ID)
		}
	}
	return string(r.Destination)
}

// ParseRoute parses a route string.
//
// The details route requires a positive contact ID. Form routes take an
// optional query argument, a missing or unparseable ID opens an empty form.
func ParseRoute(s string) (Route, error) {
	path, rawQuery, _ := strings.Cut(strings.TrimSpace(s), "?")

	switch Destination(path) {
	case ContactsList, ContasList:
		return Route{Destination: Destination(path)}, nil
	case ContactForm:
		return Route{Destination: ContactForm, ID: queryID(rawQuery, argContactID)}, nil
	case ContaForm:
		return Route{Destination: ContaForm, ID: queryID(rawQuery, argContaID)}, nil
	}

	if arg, ok := strings.CutPrefix(path, string(ContactDetails)+"/"); ok {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return Route{}, fmt.Errorf("%w: %s needs a positive %s", ErrRouteUnknown, ContactDetails, argContactID)
		}
		return Route{Destination: ContactDetails, ID: id}, nil
	}

	return Route{}, fmt.Errorf("%w: %q", ErrRouteUnknown, s)
}

func queryID(rawQuery, name string) int {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return 0
	}

	id, err := strconv.Atoi(values.Get(name))
	if err != nil || id < 0 {
		return 0
	}
	return id
}
