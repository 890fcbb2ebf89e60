package v1_test

import (
	"net/http"

	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/test"
)

func (suite *TestSuiteStandard) createTestContact(c map[string]any, expectedStatus ...int) v1.ContactResponse {
	if _, ok := c["firstName"]; !ok {
		c["firstName"] = "Ana"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contacts", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.ContactResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) createTestConta(c map[string]any, expectedStatus ...int) v1.ContaResponse {
	if _, ok := c["description"]; !ok {
		c["description"] = "Electricity bill"
	}

	if _, ok := c["amount"]; !ok {
		c["amount"] = "189.90"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contas", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.ContaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}
