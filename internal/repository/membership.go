package repository

import (
	"context"

	"team-access-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for the team_employee association
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// ReplaceForEmployee deletes every membership of the employee and inserts one row per team id.
// Both steps share a transaction: if any insert fails the previous set is restored.
func (r *MembershipRepository) ReplaceForEmployee(ctx context.Context, employeeID uint, teamIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("emp_id = ?", employeeID).Delete(&models.TeamEmployee{}).Error; err != nil {
			return err
		}
		if len(teamIDs) == 0 {
			return nil
		}

		rows := make([]models.TeamEmployee, 0, len(teamIDs))
		for _, teamID := range teamIDs {
			rows = append(rows, models.TeamEmployee{TeamID: teamID, EmpID: employeeID})
		}
		return tx.Omit(clause.Associations).Create(&rows).Error
	})
}

// GetEmployeesByTeamID retrieves the employees assigned to a team ordered by employee id
func (r *MembershipRepository) GetEmployeesByTeamID(ctx context.Context, teamID uint) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Select("employee.id, employee.name, employee.email").
		Joins("JOIN team_employee ON employee.id = team_employee.emp_id").
		Where("team_employee.team_id = ?", teamID).
		Order("employee.id ASC").
		Find(&employees).Error
	return employees, err
}

// GetTeamIDsByEmployeeID retrieves the ids of the teams an employee belongs to
func (r *MembershipRepository) GetTeamIDsByEmployeeID(ctx context.Context, employeeID uint) ([]uint, error) {
	var teamIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.TeamEmployee{}).
		Where("emp_id = ?", employeeID).
		Order("team_id ASC").
		Pluck("team_id", &teamIDs).Error
	return teamIDs, err
}
