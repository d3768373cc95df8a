package handlers

import (
	"net/http"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees and their team assignments
type EmployeeHandler struct {
	employeeService   service.EmployeeServiceInterface
	membershipService service.MembershipServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface, membershipService service.MembershipServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService:   employeeService,
		membershipService: membershipService,
	}
}

// CreateEmployee handles POST /employees
// @Summary Create a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Employee already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), apperrors.ErrInvalidEmpID)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// SearchEmployees handles GET /employees/search
// @Summary Search employees by email
// @Description Case-sensitive substring match on the email. An empty query returns everyone.
// @Tags employees
// @Produce json
// @Param q query string false "Email fragment"
// @Success 200 {array} service.EmployeeSummary "Matching employees"
// @Failure 400 {object} ErrorResponse "Fragment is not storable text"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/search [get]
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	results, err := h.employeeService.SearchByEmail(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetEmployeeTeamIDs handles GET /employees/:id/team-ids
// @Summary List the team ids of an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} service.TeamIDsResponse "Team ids"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/{id}/team-ids [get]
func (h *EmployeeHandler) GetEmployeeTeamIDs(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), apperrors.ErrInvalidEmpID)
	if !ok {
		return
	}

	teamIDs, err := h.membershipService.ListTeamIDsForEmployee(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.TeamIDsResponse{TeamIDs: teamIDs})
}

// AssignTeams handles PUT /employees/teams
// @Summary Replace the team assignments of an employee
// @Description The employee ends up in exactly the given teams. An empty list removes every assignment.
// @Tags employees
// @Accept json
// @Produce json
// @Param assignment body service.AssignTeamsRequest true "Employee email and team ids"
// @Success 200 {object} service.AssignTeamsResponse "Assignments replaced"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Employee or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/teams [put]
func (h *EmployeeHandler) AssignTeams(c *gin.Context) {
	var req service.AssignTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.membershipService.AssignTeams(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
