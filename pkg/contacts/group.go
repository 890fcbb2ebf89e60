// Package contacts groups, searches and filters contact lists for display.
package contacts

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pocketbook/backend/pkg/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// OtherInitial groups contacts whose name does not start with a letter.
const OtherInitial = "#"

// Group is a list of contacts sharing the same initial.
type Group struct {
	Initial  string           `json:"initial" example:"A"`
	Contacts []models.Contact `json:"contacts"`
}

func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

// fold removes diacritics, "Érica" becomes "Erica".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Initial returns the upper-cased first letter of the name without
// diacritics, or OtherInitial.
func Initial(name string) string {
	for _, r := range fold(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
		break
	}
	return OtherInitial
}

// GroupByInitial groups contacts by the initial of their full name. Groups
// and the contacts in them are sorted alphabetically, OtherInitial comes last.
func GroupByInitial(contacts []models.Contact) []Group {
	c := newCollator()

	sorted := make([]models.Contact, len(contacts))
	copy(sorted, contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := c.CompareString(sorted[i].FullName(), sorted[j].FullName()); cmp != 0 {
			return cmp < 0
		}
		return sorted[i].ID < sorted[j].ID
	})

	index := map[string]int{}
	groups := []Group{}
	for _, contact := range sorted {
		initial := Initial(contact.FullName())

		i, ok := index[initial]
		if !ok {
			i = len(groups)
			index[initial] = i
			groups = append(groups, Group{Initial: initial})
		}
		groups[i].Contacts = append(groups[i].Contacts, contact)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Initial, groups[j].Initial
		if a == OtherInitial || b == OtherInitial {
			return b == OtherInitial && a != OtherInitial
		}
		return c.CompareString(a, b) < 0
	})

	return groups
}
