package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "team-access-backend/internal/errors"
)

// DashboardService composes the roster view shown to product owners
type DashboardService struct {
	teamService       TeamServiceInterface
	membershipService MembershipServiceInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(teamService TeamServiceInterface, membershipService MembershipServiceInterface) *DashboardService {
	return &DashboardService{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// DashboardResponse lists the teams for the selector and the roster of the selected team
type DashboardResponse struct {
	Teams               []TeamResponse    `json:"teams"`
	SelectedTeamID      *uint             `json:"selected_team_id"`
	Employees           []EmployeeSummary `json:"employees"`
	SelectedEmployeeIDs []uint            `json:"selected_employee_ids"`
}

// Get builds the dashboard. Without teamID the oldest team is selected;
// with no teams at all an empty dashboard is returned.
func (s *DashboardService) Get(ctx context.Context, teamID *uint) (*DashboardResponse, error) {
	teams, err := s.teamService.List(ctx, "newest")
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard teams: %w", err)
	}

	dashboard := &DashboardResponse{
		Teams:               teams.Teams,
		Employees:           []EmployeeSummary{},
		SelectedEmployeeIDs: []uint{},
	}

	var selected uint
	if teamID != nil {
		if !containsTeam(teams.Teams, *teamID) {
			return nil, apperrors.ErrTeamNotFound
		}
		selected = *teamID
	} else {
		oldest, err := s.teamService.Oldest(ctx)
		if err != nil {
			if errors.Is(err, apperrors.ErrTeamNotFound) {
				return dashboard, nil
			}
			return nil, fmt.Errorf("failed to load default team: %w", err)
		}
		selected = oldest.ID
	}
	dashboard.SelectedTeamID = &selected

	employees, err := s.membershipService.ListEmployeesInTeam(ctx, selected)
	if err != nil {
		return nil, err
	}
	dashboard.Employees = employees
	for _, employee := range employees {
		dashboard.SelectedEmployeeIDs = append(dashboard.SelectedEmployeeIDs, employee.ID)
	}

	return dashboard, nil
}

func containsTeam(teams []TeamResponse, id uint) bool {
	for _, team := range teams {
		if team.ID == id {
			return true
		}
	}
	return false
}
