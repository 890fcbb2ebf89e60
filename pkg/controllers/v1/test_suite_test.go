package v1_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/types"
	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/router"
	"github.com/stretchr/testify/suite"
)

var today = types.NewDate(2024, time.March, 10)

type TestSuiteStandard struct {
	suite.Suite

	controller v1.Controller
	router     *gin.Engine
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	suite.controller = v1.Controller{
		Contacts: datasource.NewMemory[models.Contact](),
		Contas:   datasource.NewMemory[models.Conta](),
		Today:    func() types.Date { return today },
	}
	suite.route()
}

// route builds the router for the current controller.
func (suite *TestSuiteStandard) route() {
	url, _ := url.Parse("http://example.com")

	r, err := router.Config(url, router.Options{})
	suite.Require().Nil(err, "Router initialization failed")

	router.AttachRoutes(suite.controller, r.Group("/"))
	suite.router = r
}

// failAll makes every fallible store access fail.
func (suite *TestSuiteStandard) failAll() {
	suite.controller.Simulator = &datasource.Simulator{
		Enabled:     true,
		FailureRate: 1,
		FailLoads:   true,
	}
	suite.route()
}
