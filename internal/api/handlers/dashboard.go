package handlers

import (
	"net/http"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the team roster dashboard
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Team roster dashboard
// @Description Teams for the selector plus the members of the selected team (oldest team by default)
// @Tags dashboard
// @Produce json
// @Param team_id query int false "Selected team ID"
// @Success 200 {object} service.DashboardResponse "Dashboard"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var teamID *uint
	if raw, ok := c.GetQuery("team_id"); ok && raw != "" {
		id, valid := parseID(c, raw, apperrors.ErrInvalidTeamID)
		if !valid {
			return
		}
		teamID = &id
	}

	dashboard, err := h.dashboardService.Get(c.Request.Context(), teamID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
