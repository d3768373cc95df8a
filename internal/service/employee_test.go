package service_test

import (
	"context"
	"errors"
	"testing"

	"team-access-backend/internal/database/models"
	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/mocks"
	"team-access-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	employeeService  *service.EmployeeService
	ctx              context.Context
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.employeeService = service.NewEmployeeService(suite.mockEmployeeRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) TestCreate() {
	suite.mockEmployeeRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, employee *models.Employee) error {
			suite.Equal("Ann", employee.Name)
			suite.Equal("ann@x.com", employee.Email)
			employee.ID = 3
			return nil
		}).
		Times(1)

	response, err := suite.employeeService.Create(suite.ctx, &service.CreateEmployeeRequest{
		Name:  "Ann",
		Email: " ann@x.com ",
	})

	suite.Require().NoError(err)
	suite.Equal(uint(3), response.ID)
	suite.Equal("ann@x.com", response.Email)
	suite.Equal(service.MsgEmployeeCreated, response.Message)
}

func (suite *EmployeeServiceTestSuite) TestCreateDuplicateEmail() {
	suite.mockEmployeeRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.employeeService.Create(suite.ctx, &service.CreateEmployeeRequest{
		Name:  "Ann",
		Email: "ann@x.com",
	})

	suite.Nil(response)
	suite.True(errors.Is(err, apperrors.ErrEmployeeExists))
}

func (suite *EmployeeServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name     string
		request  *service.CreateEmployeeRequest
		errorMsg string
	}{
		{
			name:     "Missing name",
			request:  &service.CreateEmployeeRequest{Email: "ann@x.com"},
			errorMsg: "name - is required",
		},
		{
			name:     "Name too short",
			request:  &service.CreateEmployeeRequest{Name: "A", Email: "ann@x.com"},
			errorMsg: "name - must be at least 2 characters",
		},
		{
			name:     "Name too long",
			request:  &service.CreateEmployeeRequest{Name: "Maximiliane", Email: "max@x.com"},
			errorMsg: "name - must be at most 10 characters",
		},
		{
			name:     "Missing email",
			request:  &service.CreateEmployeeRequest{Name: "Ann"},
			errorMsg: "email - is required",
		},
		{
			name:     "Malformed email",
			request:  &service.CreateEmployeeRequest{Name: "Ann", Email: "not-an-email"},
			errorMsg: "email - must be a valid email address",
		},
		{
			name:     "NUL byte in name",
			request:  &service.CreateEmployeeRequest{Name: "An\x00n", Email: "ann@x.com"},
			errorMsg: "name - must be valid UTF-8 without NUL bytes",
		},
		{
			name:     "Invalid UTF-8 in email",
			request:  &service.CreateEmployeeRequest{Name: "Ann", Email: "ann\xff@x.com"},
			errorMsg: "email - must be valid UTF-8 without NUL bytes",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			response, err := suite.employeeService.Create(suite.ctx, tc.request)

			assert.Nil(t, response)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tc.errorMsg)
		})
	}
}

func (suite *EmployeeServiceTestSuite) TestSearchByEmail() {
	suite.mockEmployeeRepo.EXPECT().
		SearchByEmail(gomock.Any(), "x.co").
		Return([]models.Employee{
			{BaseModel: models.BaseModel{ID: 1}, Name: "Ann", Email: "ann@x.com"},
			{BaseModel: models.BaseModel{ID: 2}, Name: "Bob", Email: "bob@x.com"},
		}, nil).
		Times(1)

	results, err := suite.employeeService.SearchByEmail(suite.ctx, "x.co")

	suite.Require().NoError(err)
	suite.Equal([]service.EmployeeSummary{
		{ID: 1, Email: "ann@x.com"},
		{ID: 2, Email: "bob@x.com"},
	}, results)
}

func (suite *EmployeeServiceTestSuite) TestSearchByEmailNoMatch() {
	suite.mockEmployeeRepo.EXPECT().
		SearchByEmail(gomock.Any(), "nobody").
		Return(nil, nil).
		Times(1)

	results, err := suite.employeeService.SearchByEmail(suite.ctx, "nobody")

	suite.NoError(err)
	suite.NotNil(results)
	suite.Empty(results)
}

func (suite *EmployeeServiceTestSuite) TestSearchByEmailRejectsUnstorableFragment() {
	suite.mockEmployeeRepo.EXPECT().SearchByEmail(gomock.Any(), gomock.Any()).Times(0)

	for _, fragment := range []string{"a\x00b", "\xff"} {
		results, err := suite.employeeService.SearchByEmail(suite.ctx, fragment)

		suite.Nil(results)
		suite.True(apperrors.IsValidation(err))
		suite.Contains(err.Error(), "search_term")
	}
}

func (suite *EmployeeServiceTestSuite) TestGetByIDNotFound() {
	suite.mockEmployeeRepo.EXPECT().
		GetByID(gomock.Any(), uint(42)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.employeeService.GetByID(suite.ctx, 42)

	suite.True(errors.Is(err, apperrors.ErrEmployeeNotFound))
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
