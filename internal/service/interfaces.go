package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id uint) (*TeamResponse, error)
	List(ctx context.Context, order string) (*TeamListResponse, error)
	Oldest(ctx context.Context) (*TeamResponse, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (*EmployeeResponse, error)
	SearchByEmail(ctx context.Context, fragment string) ([]EmployeeSummary, error)
}

// MembershipServiceInterface defines the interface for team membership service
type MembershipServiceInterface interface {
	AssignTeams(ctx context.Context, req *AssignTeamsRequest) (*AssignTeamsResponse, error)
	ListEmployeesInTeam(ctx context.Context, teamID uint) ([]EmployeeSummary, error)
	ListTeamIDsForEmployee(ctx context.Context, employeeID uint) ([]uint, error)
}

// DashboardServiceInterface defines the interface for the roster dashboard
type DashboardServiceInterface interface {
	Get(ctx context.Context, teamID *uint) (*DashboardResponse, error)
}
