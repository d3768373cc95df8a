package handlers

import (
	"net/http"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the form-encoded lookups used by the page scripts
type LookupHandler struct {
	employeeService   service.EmployeeServiceInterface
	membershipService service.MembershipServiceInterface
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(employeeService service.EmployeeServiceInterface, membershipService service.MembershipServiceInterface) *LookupHandler {
	return &LookupHandler{
		employeeService:   employeeService,
		membershipService: membershipService,
	}
}

// Autocomplete handles POST /autocomplete
// @Summary Email autocomplete
// @Tags lookups
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string true "Email fragment"
// @Success 200 {array} service.EmployeeSummary "Matching employees"
// @Failure 400 {object} ErrorResponse "Missing search_term"
func (h *LookupHandler) Autocomplete(c *gin.Context) {
	term, ok := c.GetPostForm("search_term")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search_term is required"})
		return
	}

	results, err := h.employeeService.SearchByEmail(c.Request.Context(), term)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetExistingTeamIDs handles POST /get_existing_team_ids
// @Summary Team ids of an employee
// @Tags lookups
// @Accept x-www-form-urlencoded
// @Produce json
// @Param emp_id formData int true "Employee ID"
// @Success 200 {object} service.TeamIDsResponse "Team ids"
// @Failure 400 {object} ErrorResponse "Invalid emp_id"
func (h *LookupHandler) GetExistingTeamIDs(c *gin.Context) {
	id, ok := parseID(c, c.PostForm("emp_id"), apperrors.ErrInvalidEmpID)
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

// GetAssignedEmployees handles POST /get_assigned_employees
// @Summary Members of a team
// @Tags lookups
// @Accept x-www-form-urlencoded
// @Produce json
// @Param team_id formData int true "Team ID"
// @Success 200 {array} service.EmployeeSummary "Team members"
// @Failure 400 {object} ErrorResponse "Invalid team_id"
func (h *LookupHandler) GetAssignedEmployees(c *gin.Context) {
	id, ok := parseID(c, c.PostForm("team_id"), apperrors.ErrInvalidTeamID)
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
