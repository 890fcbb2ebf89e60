package v1_test

import (
	"net/http"

	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(v1.Links{
		Contacts:     "http://example.com/v1/contacts",
		Contas:       "http://example.com/v1/contas",
		ContaSummary: "http://example.com/v1/contas/summary",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/v1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
