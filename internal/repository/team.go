package repository

import (
	"context"

	"team-access-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams ordered by id in the requested direction
func (r *TeamRepository) GetAll(ctx context.Context, order SortOrder) ([]models.Team, error) {
	direction := "id DESC"
	if order == OrderOldestFirst {
		direction = "id ASC"
	}

	var teams []models.Team
	err := r.db.WithContext(ctx).Order(direction).Find(&teams).Error
	return teams, err
}

// GetOldest retrieves the first team ever created
func (r *TeamRepository) GetOldest(ctx context.Context) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Order("id ASC").First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// CountByIDs returns how many of the given ids reference existing teams
func (r *TeamRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
