package forms

import (
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/models"
)

// ContactForm holds the state of the contact create and edit form.
//
// Change handlers only touch a field when the value actually changes and
// validate the new value right away.
type ContactForm struct {
	ContactID int
	Record    models.Contact

	FirstName  FormField[string]
	LastName   FormField[string]
	Phone      FormField[string]
	Email      FormField[string]
	IsFavorite FormField[bool]
	BirthDate  FormField[types.Date]
	Type       FormField[models.ContactType]
	NetWorth   FormField[string]
}

// NewContactForm returns an empty form for the contact. A contactID that is
// not positive creates a new contact.
func NewContactForm(contactID int, today types.Date) *ContactForm {
	if contactID < 0 {
		contactID = 0
	}

	return &ContactForm{
		ContactID: contactID,
		BirthDate: FormField[types.Date]{Value: today},
		Type:      FormField[models.ContactType]{Value: models.ContactTypePersonal},
	}
}

func (f *ContactForm) IsNew() bool {
	return f.ContactID <= 0
}

// IsValid reports whether no field carries an error. It does not re-run
// the validators, use Validate for that.
func (f *ContactForm) IsValid() bool {
	return f.FirstName.IsValid() &&
		f.LastName.IsValid() &&
		f.Phone.IsValid() &&
		f.Email.IsValid() &&
		f.IsFavorite.IsValid() &&
		f.BirthDate.IsValid() &&
		f.Type.IsValid() &&
		f.NetWorth.IsValid()
}

// Validate re-runs all validators and reports if the form is valid.
func (f *ContactForm) Validate() bool {
	f.FirstName.ErrorCode = ValidateFirstName(f.FirstName.Value)
	f.Phone.ErrorCode = ValidatePhone(f.Phone.Value)
	f.Email.ErrorCode = ValidateEmail(f.Email.Value)
	f.NetWorth.ErrorCode = ValidateNetWorth(f.NetWorth.Value)
	f.Type.ErrorCode = ValidateContactType(string(f.Type.Value))

	return f.IsValid()
}

// Load fills the form from a stored contact. A contact without a type is
// loaded as personal.
func (f *ContactForm) Load(c models.Contact) {
	if c.Type == "" {
		c.Type = models.ContactTypePersonal
	}

	f.ContactID = c.ID
	f.Record = c
	f.FirstName = FormField[string]{Value: c.FirstName}
	f.LastName = FormField[string]{Value: c.LastName}
	f.Phone = FormField[string]{Value: c.PhoneNumber}
	f.Email = FormField[string]{Value: c.Email}
	f.IsFavorite = FormField[bool]{Value: c.IsFavorite}
	f.BirthDate = FormField[types.Date]{Value: c.BirthDate}
	f.Type = FormField[models.ContactType]{Value: c.Type}
	f.NetWorth = FormField[string]{Value: c.NetWorth.String()}
}

func (f *ContactForm) SetFirstName(value string) {
	if f.FirstName.Value != value {
		f.FirstName = FormField[string]{Value: value, ErrorCode: ValidateFirstName(value)}
	}
}

func (f *ContactForm) SetLastName(value string) {
	if f.LastName.Value != value {
		f.LastName.Value = value
	}
}

// SetPhone stores the digits of value. Input with more than MaxPhoneDigits
// digits is ignored.
func (f *ContactForm) SetPhone(value string) {
	phone := SanitizePhone(value)
	if len(phone) <= MaxPhoneDigits && f.Phone.Value != phone {
		f.Phone = FormField[string]{Value: phone, ErrorCode: ValidatePhone(phone)}
	}
}

func (f *ContactForm) SetEmail(value string) {
	if f.Email.Value != value {
		f.Email = FormField[string]{Value: value, ErrorCode: ValidateEmail(value)}
	}
}

func (f *ContactForm) SetFavorite(value bool) {
	if f.IsFavorite.Value != value {
		f.IsFavorite.Value = value
	}
}

func (f *ContactForm) SetBirthDate(value types.Date) {
	if f.BirthDate.Value != value {
		f.BirthDate = FormField[types.Date]{Value: value}
	}
}

// SetBirthDateInput parses a YYYY-MM-DD string. Unparseable input keeps
// the previous date and flags the field.
func (f *ContactForm) SetBirthDateInput(value string) {
	d, err := types.ParseDate(value)
	if err != nil {
		f.BirthDate.ErrorCode = DateInvalid
		return
	}
	f.SetBirthDate(d)
	f.BirthDate.ErrorCode = NoError
}

func (f *ContactForm) SetType(value models.ContactType) {
	if f.Type.Value != value {
		f.Type = FormField[models.ContactType]{Value: value, ErrorCode: ValidateContactType(string(value))}
	}
}

func (f *ContactForm) SetNetWorth(value string) {
	if f.NetWorth.Value != value {
		f.NetWorth = FormField[string]{Value: value, ErrorCode: ValidateNetWorth(value)}
	}
}

// Contact returns the loaded contact with the values of the form applied.
// The form must be valid.
func (f *ContactForm) Contact() models.Contact {
	c := f.Record
	c.ID = f.ContactID
	c.FirstName = f.FirstName.Value
	c.LastName = f.LastName.Value
	c.PhoneNumber = f.Phone.Value
	c.Email = f.Email.Value
	c.IsFavorite = f.IsFavorite.Value
	c.BirthDate = f.BirthDate.Value
	c.Type = f.Type.Value
	c.NetWorth, _ = ParseNetWorth(f.NetWorth.Value)
	return c
}
