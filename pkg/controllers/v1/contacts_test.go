package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/pkg/forms"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestContactsCreate() {
	r := suite.createTestContact(map[string]any{
		"lastName":    "Cordeiro",
		"phoneNumber": "55988887777",
		"email":       "ana@example.com",
		"netWorth":    "1500.25",
	})

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal(1, r.Data.ID)
	suite.Assert().Equal("Ana Cordeiro", r.Data.Display.FullName)
	suite.Assert().Equal("(55) 98888-7777", r.Data.Display.Phone)
	suite.Assert().Equal("AC", r.Data.Display.Initials)
	suite.Assert().Equal("R$1.500,25", r.Data.Display.NetWorth)
	suite.Assert().Equal(today, r.Data.BirthDate, "birth date defaults to today")
	suite.Assert().Equal(models.ContactTypePersonal, r.Data.Type)
	suite.Assert().False(r.Data.CreatedAt.IsZero())
	suite.Assert().Equal("http://example.com/v1/contacts/1", r.Data.Links.Self)

	second := suite.createTestContact(map[string]any{"firstName": "Bruno"})
	suite.Assert().Equal(2, second.Data.ID)
}

func (suite *TestSuiteStandard) TestContactsCreateInvalid() {
	tests := []struct {
		name  string
		body  map[string]any
		field string
		code  forms.ErrorCode
	}{
		{"Blank first name", map[string]any{"firstName": "  "}, "firstName", forms.FirstNameRequired},
		{"Short phone", map[string]any{"phoneNumber": "12345"}, "phoneNumber", forms.PhoneInvalid},
		{"Formatted phone", map[string]any{"phoneNumber": "(55) 98888-7777"}, "phoneNumber", forms.PhoneInvalid},
		{"Email", map[string]any{"email": "ana@"}, "email", forms.EmailInvalid},
		{"Type", map[string]any{"type": "FAMILY"}, "type", forms.TypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createTestContact(tt.body, http.StatusBadRequest)
			require.Len(t, r.ValidationErrors, 1)
			assert.Equal(t, tt.field, r.ValidationErrors[0].Field)
			assert.Equal(t, tt.code, r.ValidationErrors[0].Code)
			assert.Equal(t, tt.code.Message(), r.ValidationErrors[0].Message)
			assert.Contains(t, *r.Error, "invalid values")
		})
	}
}

func (suite *TestSuiteStandard) TestContactsCreateBrokenBody() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contacts", `{ "firstName": "Ana" `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "un-parseable")

	r = test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contacts", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "must not be empty")
}

func (suite *TestSuiteStandard) TestContactsGet() {
	created := suite.createTestContact(map[string]any{"lastName": "Cordeiro"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContactResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Cordeiro", response.Data.LastName)
}

func (suite *TestSuiteStandard) TestContactsGetErrors() {
	tests := []struct {
		name   string
		id     string
		status int
		err    string
	}{
		{"Not found", "17", http.StatusNotFound, "there is no contact matching your query"},
		{"Not a number", "abc", http.StatusBadRequest, "invalid syntax"},
		{"Zero", "0", http.StatusBadRequest, "invalid values"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/contacts/"+tt.id, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestContactsList() {
	for _, name := range []string{"Bruno", "Ana", "Érica", "André"} {
		suite.createTestContact(map[string]any{"firstName": name})
	}

	r := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/contacts/3", map[string]any{"isFavorite": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All", "", []string{"Bruno", "Ana", "Érica", "André"}},
		{"Favorites", "favorite=true", []string{"Érica"}},
		{"Not favorites", "favorite=false", []string{"Bruno", "Ana", "André"}},
		{"Glob", "name=An*", []string{"Ana", "André"}},
		{"Search", "search=erica", []string{"Érica"}},
		{"Fuzzy search", "search=Brno", []string{"Bruno"}},
		{"Type", "type=PROFESSIONAL", []string{}},
		{"Offset", "offset=1&limit=2", []string{"Ana", "Érica"}},
		{"Limit zero", "limit=0", []string{}},
		{"Offset past the end", "offset=9", []string{}},
		{"Largest offset", "offset=18446744073709551615", []string{}},
		{"Largest limit", "offset=1&limit=9223372036854775807", []string{"Ana", "Érica", "André"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/contacts?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ContactListResponse
			test.DecodeResponse(t, &r, &response)

			names := []string{}
			for _, c := range response.Data {
				names = append(names, c.FirstName)
			}
			assert.Equal(t, tt.expected, names)
			assert.Equal(t, len(tt.expected), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestContactsListPagination() {
	for i := 0; i < 3; i++ {
		suite.createTestContact(map[string]any{})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/contacts?offset=2", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContactListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Pagination{Count: 1, Offset: 2, Limit: 50, Total: 3}, *response.Pagination)
}

func (suite *TestSuiteStandard) TestContactsListGrouped() {
	for _, name := range []string{"Bruno", "ana", "Érica", "Álvaro", "9 Lives"} {
		suite.createTestContact(map[string]any{"firstName": name})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/contacts?group=initial", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContactListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	initials := []string{}
	for _, g := range response.Groups {
		initials = append(initials, g.Initial)
	}
	suite.Assert().Equal([]string{"A", "B", "E", "#"}, initials)
	suite.Require().Len(response.Groups[0].Contacts, 2)
	suite.Assert().Equal("Álvaro", response.Groups[0].Contacts[0].FirstName)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/contacts?group=type", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContactsUpdate() {
	created := suite.createTestContact(map[string]any{"lastName": "Cordeiro", "email": "ana@example.com"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, created.Data.Links.Self, map[string]any{
		"lastName": "Souza",
		"type":     "PROFESSIONAL",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContactResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Souza", response.Data.LastName)
	suite.Assert().Equal("ana@example.com", response.Data.Email, "fields missing in the body are kept")
	suite.Assert().Equal(models.ContactTypeProfessional, response.Data.Type)
	suite.Assert().Equal(created.Data.CreatedAt.Unix(), response.Data.CreatedAt.Unix())

	r = test.Request(suite.T(), suite.router, http.MethodPatch, created.Data.Links.Self, map[string]any{"firstName": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/contacts/99", map[string]any{"firstName": "X"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContactsToggleFavorite() {
	created := suite.createTestContact(map[string]any{})

	for _, expected := range []bool{true, false} {
		r := test.Request(suite.T(), suite.router, http.MethodPost, created.Data.Links.Favorite, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.ContactResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Equal(expected, response.Data.IsFavorite)
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contacts/42/favorite", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContactsDelete() {
	created := suite.createTestContact(map[string]any{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodGet, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContactsOptions() {
	created := suite.createTestContact(map[string]any{})

	tests := []struct {
		path    string
		status  int
		allowed string
	}{
		{"/v1/contacts", http.StatusNoContent, "OPTIONS, GET, POST"},
		{fmt.Sprintf("/v1/contacts/%d", created.Data.ID), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{fmt.Sprintf("/v1/contacts/%d/favorite", created.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/contacts/1000", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allowed, r.Header().Get("allow"))
		})
	}
}

// TestContactsSimulatedFailure verifies that failing store access is
// reported as a temporary error.
func (suite *TestSuiteStandard) TestContactsSimulatedFailure() {
	created := suite.createTestContact(map[string]any{})
	suite.failAll()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		status int
	}{
		{"List", http.MethodGet, "http://example.com/v1/contacts", nil, http.StatusServiceUnavailable},
		{"Get", http.MethodGet, created.Data.Links.Self, nil, http.StatusServiceUnavailable},
		{"Create", http.MethodPost, "http://example.com/v1/contacts", map[string]any{"firstName": "Ana"}, http.StatusServiceUnavailable},
		{"Update", http.MethodPatch, created.Data.Links.Self, map[string]any{"lastName": "Lima"}, http.StatusServiceUnavailable},
		{"Delete", http.MethodDelete, created.Data.Links.Self, nil, http.StatusServiceUnavailable},
		{"Toggle favorite is never simulated", http.MethodPost, created.Data.Links.Favorite, nil, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusServiceUnavailable {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), "please try again")
			}
		})
	}

	contacts, err := suite.controller.Contacts.FindAll(suite.T().Context())
	suite.Require().Nil(err)
	suite.Assert().Len(contacts, 1, "failed saves do not change the store")
	suite.Assert().Equal("", contacts[0].LastName)
}
