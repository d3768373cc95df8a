package models

// Employee represents a person, identified uniquely by email
type Employee struct {
	BaseModel
	Name  string `json:"name" gorm:"size:50;not null" validate:"required,min=2,max=10"`
	Email string `json:"email" gorm:"size:255;not null;uniqueIndex:idx_employee_email" validate:"required,email,max=255"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employee"
}
