package service

import (
	"context"
	"fmt"
	"strings"

	"team-access-backend/internal/database"
	"team-access-backend/internal/database/models"
	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/logger"
	"team-access-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MsgTeamCreated is the notice returned after a team is added
const MsgTeamCreated = "Team has been added successfully!"

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,storable,min=2,max=50" example:"Payments"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

// TeamListResponse represents the list of all teams
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
	Order string         `json:"order"`
}

// Create creates a new team. Uniqueness of the name is enforced by the store.
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{Name: req.Name}
	if err := s.repo.Create(ctx, team); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   team.ID,
		"team_name": team.Name,
	}).Info("team created")

	resp := toTeamResponse(team)
	resp.Message = MsgTeamCreated
	return resp, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uint) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// List retrieves all teams; order is "newest" (default) or "oldest"
func (s *TeamService) List(ctx context.Context, order string) (*TeamListResponse, error) {
	sortOrder, err := parseSortOrder(order)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.GetAll(ctx, sortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams: responses,
		Total: len(responses),
		Order: string(sortOrder),
	}, nil
}

// Oldest retrieves the first team created
func (s *TeamService) Oldest(ctx context.Context) (*TeamResponse, error) {
	team, err := s.repo.GetOldest(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get oldest team: %w", err)
	}
	return toTeamResponse(team), nil
}

func parseSortOrder(order string) (repository.SortOrder, error) {
	switch repository.SortOrder(strings.ToLower(strings.TrimSpace(order))) {
	case "", repository.OrderNewestFirst:
		return repository.OrderNewestFirst, nil
	case repository.OrderOldestFirst:
		return repository.OrderOldestFirst, nil
	default:
		return "", apperrors.ErrInvalidTeamOrder
	}
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:   team.ID,
		Name: team.Name,
	}
}
