package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"team-access-backend/internal/config"
	"team-access-backend/internal/database"
	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/repository"
	"team-access-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedFile is the layout of the initial data YAML
type SeedFile struct {
	Teams       []TeamData       `yaml:"teams"`
	Employees   []EmployeeData   `yaml:"employees"`
	Assignments []AssignmentData `yaml:"assignments"`
}

type TeamData struct {
	Name string `yaml:"name"`
}

type EmployeeData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// AssignmentData lists the teams of an employee by team name
type AssignmentData struct {
	Email string   `yaml:"email"`
	Teams []string `yaml:"teams"`
}

func main() {
	file := flag.String("file", "scripts/data/initial_data.yaml", "path to the seed YAML file")
	flag.Parse()

	log.Printf("Loading initial data from %s", *file)

	seed, err := parseSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeed(context.Background(), db, seed); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func parseSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &seed, nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeed applies the seed through the service layer so the usual validation holds.
// Records that already exist are skipped.
func loadSeed(ctx context.Context, db *gorm.DB, seed *SeedFile) error {
	validator := service.NewValidator()
	teamRepo := repository.NewTeamRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	teamService := service.NewTeamService(teamRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, employeeRepo, teamRepo, validator)

	teamsCreated := 0
	for _, teamData := range seed.Teams {
		_, err := teamService.Create(ctx, &service.CreateTeamRequest{Name: teamData.Name})
		switch {
		case err == nil:
			teamsCreated++
		case errors.Is(err, apperrors.ErrTeamExists):
			log.Printf("Team %q already exists, skipping", teamData.Name)
		default:
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
	}
	log.Printf("Teams: %d created, %d total", teamsCreated, len(seed.Teams))

	employeesCreated := 0
	for _, employeeData := range seed.Employees {
		_, err := employeeService.Create(ctx, &service.CreateEmployeeRequest{
			Name:  employeeData.Name,
			Email: employeeData.Email,
		})
		switch {
		case err == nil:
			employeesCreated++
		case errors.Is(err, apperrors.ErrEmployeeExists):
			log.Printf("Employee %q already exists, skipping", employeeData.Email)
		default:
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Email, err)
		}
	}
	log.Printf("Employees: %d created, %d total", employeesCreated, len(seed.Employees))

	for _, assignment := range seed.Assignments {
		teamIDs := make([]uint, 0, len(assignment.Teams))
		for _, name := range assignment.Teams {
			team, err := teamRepo.GetByName(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to resolve team %s for %s: %w", name, assignment.Email, err)
			}
			teamIDs = append(teamIDs, team.ID)
		}

		if _, err := membershipService.AssignTeams(ctx, &service.AssignTeamsRequest{
			Email:   assignment.Email,
			TeamIDs: teamIDs,
		}); err != nil {
			return fmt.Errorf("failed to assign teams to %s: %w", assignment.Email, err)
		}
	}
	log.Printf("Assignments: %d applied", len(seed.Assignments))

	return nil
}
