package controller

import (
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// StudentStats godoc
// @Summary The current student's progress dashboard
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StudentStats}
// @Router /api/dashboard [get]
func (c *DashboardController) StudentStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	stats, err := c.DashboardService.StudentStats(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GroupAverages godoc
// @Summary Average completed score per group
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]repository.GroupAverageRow}
// @Router /api/admin/stats/groups [get]
func (c *DashboardController) GroupAverages(ctx *gin.Context) {
	rows, err := c.DashboardService.GroupAverages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
