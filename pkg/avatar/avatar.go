// Package avatar derives the initials and background color shown for a contact.
package avatar

import (
	"strings"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

// Initials returns the upper-cased first letter of each name.
func Initials(firstName, lastName string) string {
	return strings.ToUpper(first(firstName) + first(lastName))
}

func first(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// Hue hashes a name to a hue in [0, 360). The hash folds over the UTF-16
// code units of the name with 32-bit overflow.
func Hue(name string) int {
	var acc int32
	for _, c := range utf16.Encode([]rune(name)) {
		acc = int32(c) + acc*37
	}

	h := int(acc % 360)
	if h < 0 {
		h = -h
	}
	return h
}

// Color returns the avatar background for a contact as #rrggbb. The hue
// is derived from the full name.
func Color(firstName, lastName string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	return colorful.Hsl(float64(Hue(name)), 0.5, 0.4).Hex()
}
