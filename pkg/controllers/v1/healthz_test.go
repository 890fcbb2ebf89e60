package v1_test

import (
	"context"
	"net/http"

	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/test"
)

// brokenContas is a store that cannot be read.
type brokenContas struct {
	*datasource.Memory[models.Conta]
}

func (brokenContas) FindAll(context.Context) ([]models.Conta, error) {
	return nil, models.ErrGeneral
}

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzIgnoresSimulator() {
	suite.failAll()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzBrokenStore() {
	suite.controller.Contas = brokenContas{datasource.NewMemory[models.Conta]()}
	suite.route()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response struct{ Error string }
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("the contas store cannot be accessed", response.Error)
}

func (suite *TestSuiteStandard) TestHealthzOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
