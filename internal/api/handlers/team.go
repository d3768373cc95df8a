package handlers

import (
	"net/http"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService       service.TeamServiceInterface
	membershipService service.MembershipServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, membershipService service.MembershipServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a new team with a unique name
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Description Get all teams, newest first unless order=oldest
// @Tags teams
// @Produce json
// @Param order query string false "Sort order" Enums(newest, oldest) default(newest)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid order"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context(), c.Query("order"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), apperrors.ErrInvalidTeamID)
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamEmployees handles GET /teams/:id/employees
// @Summary List the employees of a team
// @Description Members ordered by id. An unknown team has no members.
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.EmployeeSummary "Team members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/employees [get]
func (h *TeamHandler) GetTeamEmployees(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), apperrors.ErrInvalidTeamID)
	if !ok {
		return
	}

	employees, err := h.membershipService.ListEmployeesInTeam(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}
