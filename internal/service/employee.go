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

// MsgEmployeeCreated is the notice returned after an employee is added
const MsgEmployeeCreated = "Employee has been added successfully!"

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,storable,min=2,max=10" example:"Ann"`
	Email string `json:"email" validate:"required,storable,email,max=255" example:"ann@example.com"`
}

// EmployeeResponse represents the response data for an employee
type EmployeeResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// EmployeeSummary is the id/email pair used by lookups and rosters
type EmployeeSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Create creates a new employee. Uniqueness of the email is enforced by the store.
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	logger.WithContext(ctx).WithField("employee_id", employee.ID).Info("employee created")

	resp := toEmployeeResponse(employee)
	resp.Message = MsgEmployeeCreated
	return resp, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// SearchByEmail returns every employee whose email contains fragment
func (s *EmployeeService) SearchByEmail(ctx context.Context, fragment string) ([]EmployeeSummary, error) {
	if !isStorableText(fragment) {
		return nil, apperrors.NewValidationError("search_term", "must be valid UTF-8 without NUL bytes")
	}
	employees, err := s.repo.SearchByEmail(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return toEmployeeSummaries(employees), nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:    employee.ID,
		Name:  employee.Name,
		Email: employee.Email,
	}
}

func toEmployeeSummaries(employees []models.Employee) []EmployeeSummary {
	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, employee := range employees {
		summaries = append(summaries, EmployeeSummary{
			ID:    employee.ID,
			Email: employee.Email,
		})
	}
	return summaries
}
