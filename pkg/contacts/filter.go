package contacts

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/ryanuber/go-glob"
)

// MaxSearchDistance is the largest edit distance at which a search term
// still matches a name.
const MaxSearchDistance = 2

func normalize(s string) string {
	return strings.ToLower(fold(strings.TrimSpace(s)))
}

// Matches reports whether the contact matches a search query. The query
// matches when it is a substring of the full name or within
// MaxSearchDistance edits of the full name or one of its words. Case and
// diacritics are ignored.
func Matches(contact models.Contact, query string) bool {
	q := normalize(query)
	if q == "" {
		return true
	}

	name := normalize(contact.FullName())
	if strings.Contains(name, q) {
		return true
	}

	if levenshtein.ComputeDistance(name, q) <= MaxSearchDistance {
		return true
	}

	for _, word := range strings.Fields(name) {
		if levenshtein.ComputeDistance(word, q) <= MaxSearchDistance {
			return true
		}
	}
	return false
}

// Search returns the contacts matching the query in their original order.
func Search(contacts []models.Contact, query string) []models.Contact {
	return filter(contacts, func(c models.Contact) bool {
		return Matches(c, query)
	})
}

// MatchName returns the contacts whose full name matches the glob pattern,
// e.g. "An*". Only "*" is a wildcard.
func MatchName(contacts []models.Contact, pattern string) []models.Contact {
	return filter(contacts, func(c models.Contact) bool {
		return glob.Glob(pattern, c.FullName())
	})
}

func filter(contacts []models.Contact, keep func(models.Contact) bool) []models.Contact {
	result := []models.Contact{}
	for _, c := range contacts {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}
