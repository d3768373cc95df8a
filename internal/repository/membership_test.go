//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"team-access-backend/internal/database"
	"team-access-backend/internal/database/models"
	"team-access-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	teamRepo      *TeamRepository
	employeeRepo  *EmployeeRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	alpha, beta, gamma *models.Team
	ann, bob           *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewMembershipRepository(db)
	suite.teamRepo = NewTeamRepository(db)
	suite.employeeRepo = NewEmployeeRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// SetupTest creates three teams and two employees for every test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.alpha = suite.factories.Team.WithName("Alpha")
	suite.beta = suite.factories.Team.WithName("Beta")
	suite.gamma = suite.factories.Team.WithName("Gamma")
	for _, team := range []*models.Team{suite.alpha, suite.beta, suite.gamma} {
		suite.Require().NoError(suite.teamRepo.Create(suite.ctx, team))
	}

	suite.ann = suite.factories.Employee.WithNameAndEmail("Ann", "ann@x.com")
	suite.bob = suite.factories.Employee.WithNameAndEmail("Bob", "bob@x.com")
	for _, employee := range []*models.Employee{suite.ann, suite.bob} {
		suite.Require().NoError(suite.employeeRepo.Create(suite.ctx, employee))
	}
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MembershipRepositoryTestSuite) teamIDsOf(employee *models.Employee) []uint {
	ids, err := suite.repo.GetTeamIDsByEmployeeID(suite.ctx, employee.ID)
	suite.Require().NoError(err)
	return ids
}

// TestReplaceForEmployee tests assigning an employee to several teams
func (suite *MembershipRepositoryTestSuite) TestReplaceForEmployee() {
	err := suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.beta.ID})

	suite.NoError(err)
	suite.Equal([]uint{suite.alpha.ID, suite.beta.ID}, suite.teamIDsOf(suite.ann))
}

// TestReplaceDropsPreviousSet tests that assignments are replaced rather than merged
func (suite *MembershipRepositoryTestSuite) TestReplaceDropsPreviousSet() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.beta.ID}))

	suite.NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.gamma.ID}))

	suite.Equal([]uint{suite.gamma.ID}, suite.teamIDsOf(suite.ann))
}

// TestReplaceWithEmptyListClearsMemberships tests removal from every team
func (suite *MembershipRepositoryTestSuite) TestReplaceWithEmptyListClearsMemberships() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID}))

	suite.NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{}))

	suite.Empty(suite.teamIDsOf(suite.ann))
}

// TestReplaceIsIdempotent tests that repeating an assignment changes nothing
func (suite *MembershipRepositoryTestSuite) TestReplaceIsIdempotent() {
	ids := []uint{suite.alpha.ID, suite.gamma.ID}
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, ids))
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, ids))

	suite.Equal(ids, suite.teamIDsOf(suite.ann))
}

// TestReplaceLeavesOtherEmployeesAlone tests isolation between employees
func (suite *MembershipRepositoryTestSuite) TestReplaceLeavesOtherEmployeesAlone() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.bob.ID, []uint{suite.alpha.ID}))

	suite.NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.beta.ID}))
	suite.NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, nil))

	suite.Equal([]uint{suite.alpha.ID}, suite.teamIDsOf(suite.bob))
}

// TestFailedReplaceKeepsPreviousSet tests that a failing insert rolls back the delete
func (suite *MembershipRepositoryTestSuite) TestFailedReplaceKeepsPreviousSet() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.beta.ID}))

	missingTeamID := suite.gamma.ID + 1000
	err := suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.gamma.ID, missingTeamID})

	suite.Error(err)
	suite.True(database.IsForeignKeyViolation(err))
	suite.Equal([]uint{suite.alpha.ID, suite.beta.ID}, suite.teamIDsOf(suite.ann))
}

// TestGetEmployeesByTeamID tests listing the members of a team
func (suite *MembershipRepositoryTestSuite) TestGetEmployeesByTeamID() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.bob.ID, []uint{suite.alpha.ID}))
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.beta.ID}))

	members, err := suite.repo.GetEmployeesByTeamID(suite.ctx, suite.alpha.ID)
	suite.NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal(suite.ann.ID, members[0].ID)
	suite.Equal("ann@x.com", members[0].Email)
	suite.Equal(suite.bob.ID, members[1].ID)

	members, err = suite.repo.GetEmployeesByTeamID(suite.ctx, suite.gamma.ID)
	suite.NoError(err)
	suite.Empty(members)

	members, err = suite.repo.GetEmployeesByTeamID(suite.ctx, suite.gamma.ID+1000)
	suite.NoError(err)
	suite.Empty(members)
}

// TestMembershipViewsAgree tests that both lookups describe the same pairs
func (suite *MembershipRepositoryTestSuite) TestMembershipViewsAgree() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.gamma.ID}))
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.bob.ID, []uint{suite.gamma.ID}))

	for _, employee := range []*models.Employee{suite.ann, suite.bob} {
		for _, team := range []*models.Team{suite.alpha, suite.beta, suite.gamma} {
			members, err := suite.repo.GetEmployeesByTeamID(suite.ctx, team.ID)
			suite.Require().NoError(err)

			inTeam := false
			for _, member := range members {
				if member.ID == employee.ID {
					inTeam = true
				}
			}
			suite.Equal(inTeam, containsID(suite.teamIDsOf(employee), team.ID),
				"employee %d / team %d", employee.ID, team.ID)
		}
	}
}

// TestDeletingTeamRemovesMemberships tests the cascading foreign key
func (suite *MembershipRepositoryTestSuite) TestDeletingTeamRemovesMemberships() {
	suite.Require().NoError(suite.repo.ReplaceForEmployee(suite.ctx, suite.ann.ID, []uint{suite.alpha.ID, suite.beta.ID}))

	suite.Require().NoError(suite.baseTestSuite.DB.Delete(&models.Team{}, suite.alpha.ID).Error)

	suite.Equal([]uint{suite.beta.ID}, suite.teamIDsOf(suite.ann))
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
