//go:build integration
// +build integration

package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/repository"
	"team-access-backend/internal/service"
	"team-access-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// ScenarioTestSuite drives the services against a real database
type ScenarioTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context

	teams       *service.TeamService
	employees   *service.EmployeeService
	memberships *service.MembershipService
	dashboard   *service.DashboardService
}

func (suite *ScenarioTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	validator := service.NewValidator()

	teamRepo := repository.NewTeamRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	suite.teams = service.NewTeamService(teamRepo, validator)
	suite.employees = service.NewEmployeeService(employeeRepo, validator)
	suite.memberships = service.NewMembershipService(membershipRepo, employeeRepo, teamRepo, validator)
	suite.dashboard = service.NewDashboardService(suite.teams, suite.memberships)
	suite.ctx = context.Background()
}

func (suite *ScenarioTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ScenarioTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ScenarioTestSuite) TestRosterLifecycle() {
	alpha, err := suite.teams.Create(suite.ctx, &service.CreateTeamRequest{Name: "Alpha"})
	suite.Require().NoError(err)
	beta, err := suite.teams.Create(suite.ctx, &service.CreateTeamRequest{Name: "Beta"})
	suite.Require().NoError(err)

	_, err = suite.teams.Create(suite.ctx, &service.CreateTeamRequest{Name: "Alpha"})
	suite.True(errors.Is(err, apperrors.ErrTeamExists))

	ann, err := suite.employees.Create(suite.ctx, &service.CreateEmployeeRequest{Name: "Ann", Email: "ann@x.com"})
	suite.Require().NoError(err)

	_, err = suite.employees.Create(suite.ctx, &service.CreateEmployeeRequest{Name: "Annie", Email: "ann@x.com"})
	suite.True(errors.Is(err, apperrors.ErrEmployeeExists))

	_, err = suite.memberships.AssignTeams(suite.ctx, &service.AssignTeamsRequest{
		Email:   "ann@x.com",
		TeamIDs: []uint{alpha.ID, beta.ID},
	})
	suite.Require().NoError(err)

	ids, err := suite.memberships.ListTeamIDsForEmployee(suite.ctx, ann.ID)
	suite.Require().NoError(err)
	suite.Equal([]uint{alpha.ID, beta.ID}, ids)

	board, err := suite.dashboard.Get(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Equal(alpha.ID, *board.SelectedTeamID)
	suite.Equal("Beta", board.Teams[0].Name)
	suite.Equal([]uint{ann.ID}, board.SelectedEmployeeIDs)

	_, err = suite.memberships.AssignTeams(suite.ctx, &service.AssignTeamsRequest{
		Email:   "ann@x.com",
		TeamIDs: []uint{beta.ID},
	})
	suite.Require().NoError(err)

	members, err := suite.memberships.ListEmployeesInTeam(suite.ctx, alpha.ID)
	suite.Require().NoError(err)
	suite.Empty(members)

	members, err = suite.memberships.ListEmployeesInTeam(suite.ctx, beta.ID)
	suite.Require().NoError(err)
	suite.Equal([]service.EmployeeSummary{{ID: ann.ID, Email: "ann@x.com"}}, members)
}

func (suite *ScenarioTestSuite) TestRejectedAssignmentKeepsMemberships() {
	alpha, err := suite.teams.Create(suite.ctx, &service.CreateTeamRequest{Name: "Alpha"})
	suite.Require().NoError(err)
	ann, err := suite.employees.Create(suite.ctx, &service.CreateEmployeeRequest{Name: "Ann", Email: "ann@x.com"})
	suite.Require().NoError(err)

	_, err = suite.memberships.AssignTeams(suite.ctx, &service.AssignTeamsRequest{Email: "ann@x.com", TeamIDs: []uint{alpha.ID}})
	suite.Require().NoError(err)

	_, err = suite.memberships.AssignTeams(suite.ctx, &service.AssignTeamsRequest{
		Email:   "ann@x.com",
		TeamIDs: []uint{alpha.ID + 100},
	})
	suite.True(errors.Is(err, apperrors.ErrTeamNotFound))

	_, err = suite.memberships.AssignTeams(suite.ctx, &service.AssignTeamsRequest{
		Email:   "ghost@x.com",
		TeamIDs: []uint{alpha.ID},
	})
	suite.True(errors.Is(err, apperrors.ErrEmployeeNotFound))

	ids, err := suite.memberships.ListTeamIDsForEmployee(suite.ctx, ann.ID)
	suite.Require().NoError(err)
	suite.Equal([]uint{alpha.ID}, ids)
}

func (suite *ScenarioTestSuite) TestEmptyDashboard() {
	board, err := suite.dashboard.Get(suite.ctx, nil)

	suite.Require().NoError(err)
	suite.Nil(board.SelectedTeamID)
	suite.Empty(board.Teams)
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
