package models

// TeamEmployee is the team <-> employee association row.
// The composite primary key keeps each pair unique.
type TeamEmployee struct {
	TeamID uint `json:"team_id" gorm:"column:team_id;primaryKey;autoIncrement:false"`
	EmpID  uint `json:"emp_id" gorm:"column:emp_id;primaryKey;autoIncrement:false;index"`

	Team     Team     `json:"-" gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"-" gorm:"foreignKey:EmpID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamEmployee
func (TeamEmployee) TableName() string {
	return "team_employee"
}
