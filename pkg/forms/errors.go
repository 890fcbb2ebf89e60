package forms

// ErrorCode identifies why a form field is invalid. NoError marks a valid field.
type ErrorCode int

const (
	NoError ErrorCode = iota
	FirstNameRequired
	PhoneInvalid
	EmailInvalid
	NetWorthInvalid
	DescriptionRequired
	DateInvalid
	AmountRequired
	AmountInvalid
	AmountNegative
	PaidInvalid
	TypeInvalid
)

var messages = map[ErrorCode]string{
	NoError:             "",
	FirstNameRequired:   "First name is required",
	PhoneInvalid:        "Phone number must have 10 or 11 digits",
	EmailInvalid:        "E-Mail address is not valid",
	NetWorthInvalid:     "Net worth must be a decimal number",
	DescriptionRequired: "Description is required",
	DateInvalid:         "Date must be formatted as YYYY-MM-DD",
	AmountRequired:      "Amount is required",
	AmountInvalid:       "Amount must be a decimal number",
	AmountNegative:      "Amount must not be negative",
	PaidInvalid:         "Paid must be true or false",
	TypeInvalid:         "Type is not valid",
}

// Message returns the human readable message for the code.
func (c ErrorCode) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return "unknown error"
}

func (c ErrorCode) String() string {
	return c.Message()
}
