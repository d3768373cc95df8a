package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"team-access-backend/internal/database"
	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/logger"
	"team-access-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MsgTeamsAssigned is the notice returned after an assignment
const MsgTeamsAssigned = "Team(s) assigned successfully!"

// MembershipService handles team <-> employee assignments and roster lookups
type MembershipService struct {
	repo         repository.MembershipRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	validator    *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:         repo,
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		validator:    validator,
	}
}

// AssignTeamsRequest replaces the whole membership set of the employee with TeamIDs.
// An empty TeamIDs removes the employee from every team.
type AssignTeamsRequest struct {
	Email   string `json:"email" validate:"required,storable,email" example:"ann@example.com"`
	TeamIDs []uint `json:"team_ids" validate:"dive,gt=0,lte=9223372036854775807"`
}

// AssignTeamsResponse represents the result of an assignment
type AssignTeamsResponse struct {
	EmployeeID uint   `json:"employee_id"`
	TeamIDs    []uint `json:"team_ids"`
	Message    string `json:"message"`
}

// TeamIDsResponse wraps the team ids of an employee
type TeamIDsResponse struct {
	TeamIDs []uint `json:"team_ids"`
}

// AssignTeams resolves the employee by email and replaces its memberships.
// Nothing is changed when the employee or any of the teams does not exist.
func (s *MembershipService) AssignTeams(ctx context.Context, req *AssignTeamsRequest) (*AssignTeamsResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	teamIDs := uniqueSortedIDs(req.TeamIDs)
	if len(teamIDs) > 0 {
		count, err := s.teamRepo.CountByIDs(ctx, teamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to verify teams: %w", err)
		}
		if count != int64(len(teamIDs)) {
			return nil, apperrors.ErrTeamNotFound
		}
	}

	if err := s.repo.ReplaceForEmployee(ctx, employee.ID, teamIDs); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to assign teams: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employee_id": employee.ID,
		"team_ids":    teamIDs,
	}).Info("team memberships replaced")

	return &AssignTeamsResponse{
		EmployeeID: employee.ID,
		TeamIDs:    teamIDs,
		Message:    MsgTeamsAssigned,
	}, nil
}

// ListEmployeesInTeam returns the members of a team ordered by id.
// Unknown teams yield an empty list.
func (s *MembershipService) ListEmployeesInTeam(ctx context.Context, teamID uint) ([]EmployeeSummary, error) {
	employees, err := s.repo.GetEmployeesByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team employees: %w", err)
	}
	return toEmployeeSummaries(employees), nil
}

// ListTeamIDsForEmployee returns the ids of the teams an employee belongs to
func (s *MembershipService) ListTeamIDsForEmployee(ctx context.Context, employeeID uint) ([]uint, error) {
	teamIDs, err := s.repo.GetTeamIDsByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee teams: %w", err)
	}
	if teamIDs == nil {
		teamIDs = []uint{}
	}
	return teamIDs, nil
}

func uniqueSortedIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
