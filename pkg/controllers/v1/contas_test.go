package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/pkg/forms"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestContasCreate() {
	r := suite.createTestConta(map[string]any{})

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal(1, r.Data.ID)
	suite.Assert().Equal("Electricity bill", r.Data.Description)
	suite.Assert().True(decimal.RequireFromString("189.90").Equal(r.Data.Amount))
	suite.Assert().Equal(today, r.Data.Date, "date defaults to today")
	suite.Assert().False(r.Data.Paid)
	suite.Assert().Equal(models.ContaTypeExpense, r.Data.Type)
	suite.Assert().Equal("10/03/2024", r.Data.Display.Date)
	suite.Assert().Equal("-R$189,90", r.Data.Display.Amount)
	suite.Assert().Equal("http://example.com/v1/contas/1", r.Data.Links.Self)

	income := suite.createTestConta(map[string]any{"type": "INCOME", "amount": 3000, "paid": true, "date": "2024-02-29"})
	suite.Assert().Equal(2, income.Data.ID)
	suite.Assert().Equal("R$3.000,00", income.Data.Display.Amount)
	suite.Assert().Equal("29/02/2024", income.Data.Display.Date)
}

func (suite *TestSuiteStandard) TestContasCreateInvalid() {
	tests := []struct {
		name  string
		body  map[string]any
		field string
		code  forms.ErrorCode
	}{
		{"Blank description", map[string]any{"description": " "}, "description", forms.DescriptionRequired},
		{"Negative amount", map[string]any{"amount": "-10"}, "amount", forms.AmountNegative},
		{"Type", map[string]any{"type": "TRANSFER"}, "type", forms.TypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createTestConta(tt.body, http.StatusBadRequest)
			require.Len(t, r.ValidationErrors, 1)
			assert.Equal(t, tt.field, r.ValidationErrors[0].Field)
			assert.Equal(t, tt.code, r.ValidationErrors[0].Code)
		})
	}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/contas", map[string]any{
		"description": "Rent",
		"amount":      "100",
		"date":        "2024-13-45",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContasGetUpdateDelete() {
	created := suite.createTestConta(map[string]any{})

	r := test.Request(suite.T(), suite.router, http.MethodGet, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.router, http.MethodPatch, created.Data.Links.Self, map[string]any{"paid": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Paid)
	suite.Assert().Equal("Electricity bill", response.Data.Description, "fields missing in the body are kept")

	r = test.Request(suite.T(), suite.router, http.MethodPatch, created.Data.Links.Self, map[string]any{"amount": "-1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, created.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		r = test.Request(suite.T(), suite.router, method, created.Data.Links.Self, map[string]any{})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestContasList() {
	suite.createTestConta(map[string]any{"description": "Rent", "amount": "1200", "paid": true, "date": "2024-03-05"})
	suite.createTestConta(map[string]any{"description": "Salary", "amount": "3000", "type": "INCOME", "paid": true, "date": "2024-03-01"})
	suite.createTestConta(map[string]any{"description": "Water bill", "amount": "80", "date": "2024-03-20"})
	suite.createTestConta(map[string]any{"description": "Phone bill", "amount": "60", "date": "2024-02-20"})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All", "", []string{"Rent", "Salary", "Water bill", "Phone bill"}},
		{"Paid", "paid=true", []string{"Rent", "Salary"}},
		{"Unpaid", "paid=false", []string{"Water bill", "Phone bill"}},
		{"Income", "type=INCOME", []string{"Salary"}},
		{"Month", "month=2024-02", []string{"Phone bill"}},
		{"Description", "description=*bill", []string{"Water bill", "Phone bill"}},
		{"Combined", "month=2024-03&description=*bill", []string{"Water bill"}},
		{"Paginated", "offset=1&limit=1", []string{"Salary"}},
		{"Largest offset", "offset=18446744073709551615", []string{}},
		{"Largest limit", "offset=1&limit=9223372036854775807", []string{"Salary", "Water bill", "Phone bill"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/contas?"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ContaListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := []string{}
			for _, c := range response.Data {
				descriptions = append(descriptions, c.Description)
			}
			assert.Equal(t, tt.expected, descriptions)
		})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/contas?month=March", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "YYYY-MM")
}

func (suite *TestSuiteStandard) TestContasSummary() {
	suite.createTestConta(map[string]any{"description": "Rent", "amount": "1200", "paid": true})
	suite.createTestConta(map[string]any{"description": "Salary", "amount": "3000.50", "type": "INCOME", "paid": true})
	suite.createTestConta(map[string]any{"description": "Water bill", "amount": "80.25"})
	suite.createTestConta(map[string]any{"description": "Bonus", "amount": "500", "type": "INCOME", "date": "2024-04-01"})

	tests := []struct {
		name       string
		query      string
		balance    string
		projection string
		count      int
	}{
		{"All", "", "R$1.800,50", "R$2.220,25", 4},
		{"Month", "?month=2024-03", "R$1.800,50", "R$1.720,25", 3},
		{"Expenses", "?type=EXPENSE", "-R$1.200,00", "-R$1.280,25", 2},
		{"None", "?description=Nothing", "R$0,00", "R$0,00", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/contas/summary"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ContaSummaryResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)
			assert.Equal(t, tt.balance, response.Data.Formatted.Balance)
			assert.Equal(t, tt.projection, response.Data.Formatted.Projection)
			assert.Equal(t, tt.count, response.Data.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestContasOptions() {
	tests := []struct {
		path    string
		allowed string
	}{
		{"/v1/contas", "OPTIONS, GET, POST"},
		{"/v1/contas/summary", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodOptions, "http://example.com"+tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allowed, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestContasSimulatedFailure() {
	created := suite.createTestConta(map[string]any{})
	suite.failAll()

	for _, tt := range []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/contas", nil},
		{http.MethodGet, "http://example.com/v1/contas/summary", nil},
		{http.MethodGet, created.Data.Links.Self, nil},
		{http.MethodPost, "http://example.com/v1/contas", map[string]any{"description": "Rent", "amount": "10"}},
		{http.MethodPatch, created.Data.Links.Self, map[string]any{"paid": true}},
		{http.MethodDelete, created.Data.Links.Self, nil},
	} {
		r := test.Request(suite.T(), suite.router, tt.method, tt.url, tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)
	}
}
