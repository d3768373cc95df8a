package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"team-access-backend/internal/api/handlers"
	"team-access-backend/internal/mocks"
	"team-access-backend/internal/service"
	"team-access-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LookupHandlerTestSuite defines the test suite for LookupHandler
type LookupHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockEmployeeService   *mocks.MockEmployeeServiceInterface
	mockMembershipService *mocks.MockMembershipServiceInterface
	httpSuite             *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LookupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeService = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.mockMembershipService = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	handler := handlers.NewLookupHandler(suite.mockEmployeeService, suite.mockMembershipService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/autocomplete", handler.Autocomplete)
	suite.httpSuite.Router.POST("/get_existing_team_ids", handler.GetExistingTeamIDs)
	suite.httpSuite.Router.POST("/get_assigned_employees", handler.GetAssignedEmployees)
}

// TearDownTest cleans up after each test
func (suite *LookupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LookupHandlerTestSuite) TestAutocomplete() {
	suite.T().Run("Matches", func(t *testing.T) {
		suite.mockEmployeeService.EXPECT().
			SearchByEmail(gomock.Any(), "ann").
			Return([]service.EmployeeSummary{{ID: 1, Email: "ann@x.com"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/autocomplete", url.Values{"search_term": {"ann"}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"id":1,"email":"ann@x.com"}]`, recorder.Body.String())
	})

	suite.T().Run("Missing term", func(t *testing.T) {
		recorder := suite.httpSuite.MakeFormRequest("/autocomplete", url.Values{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "search_term")
	})
}

func (suite *LookupHandlerTestSuite) TestGetExistingTeamIDs() {
	suite.T().Run("Known employee", func(t *testing.T) {
		suite.mockMembershipService.EXPECT().
			ListTeamIDsForEmployee(gomock.Any(), uint(3)).
			Return([]uint{1, 2}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/get_existing_team_ids", url.Values{"emp_id": {"3"}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"team_ids":[1,2]}`, recorder.Body.String())
	})

	suite.T().Run("No teams", func(t *testing.T) {
		suite.mockMembershipService.EXPECT().
			ListTeamIDsForEmployee(gomock.Any(), uint(4)).
			Return([]uint{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/get_existing_team_ids", url.Values{"emp_id": {"4"}})

		assert.JSONEq(t, `{"team_ids":[]}`, recorder.Body.String())
	})

	suite.T().Run("Invalid emp_id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeFormRequest("/get_existing_team_ids", url.Values{"emp_id": {"abc"}})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "emp_id")
	})
}

func (suite *LookupHandlerTestSuite) TestGetAssignedEmployees() {
	suite.mockMembershipService.EXPECT().
		ListEmployeesInTeam(gomock.Any(), uint(2)).
		Return([]service.EmployeeSummary{{ID: 5, Email: "ann@x.com"}, {ID: 6, Email: "bob@x.com"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeFormRequest("/get_assigned_employees", url.Values{"team_id": {"2"}})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(),
		`[{"id":5,"email":"ann@x.com"},{"id":6,"email":"bob@x.com"}]`,
		recorder.Body.String())

	recorder = suite.httpSuite.MakeFormRequest("/get_assigned_employees", url.Values{})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team_id")

	recorder = suite.httpSuite.MakeFormRequest("/get_assigned_employees", url.Values{"team_id": {"18446744073709551615"}})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team_id")
}

// TestLookupHandlerTestSuite runs the test suite
func TestLookupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LookupHandlerTestSuite))
}
