package models

import (
	"strings"
	"time"

	"github.com/pocketbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ContactType string

const (
	ContactTypePersonal     ContactType = "PERSONAL"
	ContactTypeProfessional ContactType = "PROFESSIONAL"
)

// ParseContactType parses the string representation of a ContactType.
func ParseContactType(s string) (ContactType, error) {
	switch t := ContactType(s); t {
	case ContactTypePersonal, ContactTypeProfessional:
		return t, nil
	}

	return "", ErrContactTypeInvalid
}

// Contact is a person in the address book.
type Contact struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement:false" example:"3"`                          // Assigned by the data source on insert
	CreatedAt   time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`                               // Time the contact was created
	FirstName   string          `json:"firstName" example:"Ana"`                                                       // First name, required
	LastName    string          `json:"lastName" example:"Cordeiro"`                                                   // Last name
	PhoneNumber string          `json:"phoneNumber" example:"55988887777"`                                             // Phone number, digits only. 10 or 11 digits when set
	Email       string          `json:"email" example:"ana@example.com"`                                               // E-Mail address
	IsFavorite  bool            `json:"isFavorite" example:"false"`                                                    // Favorites are highlighted in lists
	BirthDate   types.Date      `json:"birthDate" swaggertype:"string" example:"1990-01-15"`                           // Date of birth
	Type        ContactType     `json:"type" gorm:"default:PERSONAL" example:"PERSONAL" enums:"PERSONAL,PROFESSIONAL"` // Type of the contact
	NetWorth    decimal.Decimal `json:"netWorth" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"1500.25"`     // Net worth
}

func (Contact) TableName() string {
	return "contacts"
}

func (c Contact) Identifier() int {
	return c.ID
}

func (c Contact) WithID(id int) Contact {
	c.ID = id
	return c
}

// Stamp returns a copy of the contact with CreatedAt set to now unless it was set before.
func (c Contact) Stamp(now time.Time) Contact {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now.UTC()
	}
	return c
}

// FullName is the first name and last name separated by a space.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
