package repository

import (
	"context"
	"strings"

	"team-access-backend/internal/database/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by exact email
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).First(&employee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// SearchByEmail retrieves employees whose email contains fragment.
// The fragment is matched literally; an empty fragment matches every employee.
func (r *EmployeeRepository) SearchByEmail(ctx context.Context, fragment string) ([]models.Employee, error) {
	var employees []models.Employee
	pattern := "%" + likeEscaper.Replace(fragment) + "%"
	err := r.db.WithContext(ctx).
		Where(`email LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}
