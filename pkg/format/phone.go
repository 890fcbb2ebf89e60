// Package format renders record values for display.
package format

import "strings"

// Phone formats a digits-only phone number.
//
//	55988887777 => (55) 98888-7777
//	5588887777  => (55) 8888-7777
//
// Shorter input is formatted as far as it goes, so the function can be used
// on partial input while typing.
func Phone(digits string) string {
	var b strings.Builder
	n := len(digits)

	for i, r := range []rune(digits) {
		switch {
		case i == 0:
			b.WriteString("(")
		case i == 2:
			b.WriteString(") ")
		case (i == 6 && n < 11) || (i == 7 && n == 11):
			b.WriteString("-")
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OffsetMapping translates cursor positions between raw input and its
// formatted representation.
type OffsetMapping interface {
	OriginalToTransformed(offset int) int
	TransformedToOriginal(offset int) int
}

// PhoneOffsetMapping maps cursor positions between a phone number and its
// formatted representation.
type PhoneOffsetMapping struct{}

var _ OffsetMapping = PhoneOffsetMapping{}

func (PhoneOffsetMapping) OriginalToTransformed(offset int) int {
	switch {
	case offset > 6:
		return offset + 4
	case offset > 2:
		return offset + 3
	case offset > 0:
		return offset + 1
	}
	return offset
}

// TransformedToOriginal is the inverse of OriginalToTransformed. Positions
// inside inserted separators map to the digit after them.
func (PhoneOffsetMapping) TransformedToOriginal(offset int) int {
	switch {
	case offset <= 1:
		return 0
	case offset <= 3:
		return offset - 1
	case offset <= 5:
		return 2
	case offset <= 9:
		return offset - 3
	case offset == 10:
		return 7
	}
	return offset - 4
}

// Transformation is formatted text together with the mapping between cursor
// positions in the raw and formatted text.
type Transformation struct {
	Text    string
	Mapping OffsetMapping
}

// PhoneTransformation formats digits for display while editing.
func PhoneTransformation(digits string) Transformation {
	return Transformation{
		Text:    Phone(digits),
		Mapping: PhoneOffsetMapping{},
	}
}
