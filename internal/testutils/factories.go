package testutils

import (
	"fmt"
	"sync/atomic"

	"team-access-backend/internal/database/models"
)

var sequence atomic.Uint64

func nextSeq() uint64 {
	return sequence.Add(1)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name: fmt.Sprintf("Team %d", nextSeq()),
	}
}

// WithName creates a test Team with the given name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with a unique email
func (f *EmployeeFactory) Create() *models.Employee {
	n := nextSeq()
	return &models.Employee{
		Name:  fmt.Sprintf("Emp %d", n%1000),
		Email: fmt.Sprintf("employee%d@example.com", n),
	}
}

// WithEmail creates a test Employee with the given email
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// WithNameAndEmail creates a test Employee with the given name and email
func (f *EmployeeFactory) WithNameAndEmail(name, email string) *models.Employee {
	return &models.Employee{
		Name:  name,
		Email: email,
	}
}

// FactorySet bundles the factories used by repository suites
type FactorySet struct {
	Team     *TeamFactory
	Employee *EmployeeFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		Employee: NewEmployeeFactory(),
	}
}
