package models

// Team represents a named grouping of employees
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_team_name" validate:"required,min=2,max=50"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "team"
}
