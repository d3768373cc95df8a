package repository

import (
	"context"

	"team-access-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SortOrder controls the id ordering of team listings
type SortOrder string

const (
	OrderNewestFirst SortOrder = "newest"
	OrderOldestFirst SortOrder = "oldest"
)

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	GetAll(ctx context.Context, order SortOrder) ([]models.Team, error)
	GetOldest(ctx context.Context) (*models.Team, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	SearchByEmail(ctx context.Context, fragment string) ([]models.Employee, error)
}

// MembershipRepositoryInterface defines the interface for team_employee operations
type MembershipRepositoryInterface interface {
	ReplaceForEmployee(ctx context.Context, employeeID uint, teamIDs []uint) error
	GetEmployeesByTeamID(ctx context.Context, teamID uint) ([]models.Employee, error)
	GetTeamIDsByEmployeeID(ctx context.Context, employeeID uint) ([]uint, error)
}
