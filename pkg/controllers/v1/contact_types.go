package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/avatar"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/shopspring/decimal"
)

type ContactEditable struct {
	FirstName   string             `json:"firstName" binding:"notblank" example:"Ana"`                                                     // First name, must not be blank
	LastName    string             `json:"lastName" example:"Cordeiro"`                                                                    // Last name
	PhoneNumber string             `json:"phoneNumber" binding:"phone" example:"55988887777"`                                              // Digits only, 10 or 11 digits when set
	Email       string             `json:"email" binding:"emailaddress" example:"ana@example.com"`                                         // E-Mail address
	IsFavorite  bool               `json:"isFavorite" example:"false" default:"false"`                                                     // Is the contact a favorite?
	BirthDate   types.Date         `json:"birthDate" swaggertype:"string" example:"1990-01-15"`                                            // Date of birth. Defaults to today
	Type        models.ContactType `json:"type" binding:"contacttype" example:"PERSONAL" enums:"PERSONAL,PROFESSIONAL" default:"PERSONAL"` // Type of the contact
	NetWorth    decimal.Decimal    `json:"netWorth" swaggertype:"string" example:"1500.25" default:"0"`                                    // Net worth
}

// defaultContactEditable returns the values used for fields missing
// in a create request.
func defaultContactEditable(today types.Date) ContactEditable {
	return ContactEditable{
		BirthDate: today,
		Type:      models.ContactTypePersonal,
	}
}

func newContactEditable(model models.Contact) ContactEditable {
	return ContactEditable{
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		PhoneNumber: model.PhoneNumber,
		Email:       model.Email,
		IsFavorite:  model.IsFavorite,
		BirthDate:   model.BirthDate,
		Type:        model.Type,
		NetWorth:    model.NetWorth,
	}
}

// apply returns the contact with the editable fields replaced.
func (editable ContactEditable) apply(model models.Contact) models.Contact {
	model.FirstName = editable.FirstName
	model.LastName = editable.LastName
	model.PhoneNumber = editable.PhoneNumber
	model.Email = editable.Email
	model.IsFavorite = editable.IsFavorite
	model.BirthDate = editable.BirthDate
	model.Type = editable.Type
	model.NetWorth = editable.NetWorth
	return model
}

type ContactLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/contacts/3"`              // The contact itself
	Favorite string `json:"favorite" example:"https://example.com/api/v1/contacts/3/favorite"` // Toggles the favorite flag
}

// ContactDisplay contains the contact's values formatted for display.
type ContactDisplay struct {
	FullName    string `json:"fullName" example:"Ana Cordeiro"`      // First and last name
	Phone       string `json:"phone" example:"(55) 98888-7777"`      // Formatted phone number
	Initials    string `json:"initials" example:"AC"`                // Initials for the avatar
	AvatarColor string `json:"avatarColor" example:"#99337a"`        // Background color for the avatar
	BirthDate   string `json:"birthDate" example:"15/01/1990"`       // Formatted date of birth
	NetWorth    string `json:"netWorth" example:"R$1.500,25"`        // Formatted net worth
	CreatedAt   string `json:"createdAt" example:"02/04/2024 19:28"` // Formatted creation time
}

// Contact is the API v1 representation of a Contact.
type Contact struct {
	models.Contact
	Display ContactDisplay `json:"display"`
	Links   ContactLinks   `json:"links"`
}

func newContact(c *gin.Context, model models.Contact) Contact {
	url := c.GetString(string(models.DBContextURL))

	return Contact{
		Contact: model,
		Display: ContactDisplay{
			FullName:    model.FullName(),
			Phone:       format.Phone(model.PhoneNumber),
			Initials:    avatar.Initials(model.FirstName, model.LastName),
			AvatarColor: avatar.Color(model.FirstName, model.LastName),
			BirthDate:   format.Date(model.BirthDate),
			NetWorth:    format.Currency(model.NetWorth),
			CreatedAt:   format.DateTime(model.CreatedAt),
		},
		Links: ContactLinks{
			Self:     fmt.Sprintf("%s/v1/contacts/%d", url, model.ID),
			Favorite: fmt.Sprintf("%s/v1/contacts/%d/favorite", url, model.ID),
		},
	}
}

func newContacts(c *gin.Context, records []models.Contact) []Contact {
	// Empty list instead of null in JSON
	data := make([]Contact, 0, len(records))
	for _, model := range records {
		data = append(data, newContact(c, model))
	}
	return data
}

// ContactGroup is a list of contacts sharing the same initial.
type ContactGroup struct {
	Initial  string    `json:"initial" example:"A"` // Initial of the contacts' full names, "#" for non-letters
	Contacts []Contact `json:"contacts"`            // Contacts in the group
}

type ContactListResponse struct {
	Data       []Contact      `json:"data"`                                                              // List of contacts
	Groups     []ContactGroup `json:"groups,omitempty"`                                                  // Contacts grouped by initial when requested with group=initial
	Error      *string        `json:"error" example:"the group query parameter only supports 'initial'"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                        // Pagination information
}

type ContactResponse struct {
	Data             *Contact                   `json:"data"`                                                    // Data for the contact
	Error            *string                    `json:"error" example:"there is no contact matching your query"` // The error, if any occurred
	ValidationErrors []httputil.ValidationError `json:"validationErrors,omitempty"`                              // Invalid fields of the request body
}

type ContactQueryFilter struct {
	Favorite bool               `form:"favorite"` // Is the contact a favorite?
	Type     models.ContactType `form:"type"`     // By type
	Name     string             `form:"name"`     // Glob pattern on the full name, e.g. "An*"
	Search   string             `form:"search"`   // Fuzzy search on the full name
	Group    string             `form:"group"`    // Set to "initial" to group the contacts
	Offset   uint               `form:"offset"`   // The offset of the first Contact returned. Defaults to 0.
	Limit    int                `form:"limit"`    // Maximum number of Contacts to return. Defaults to 50.
}
