package controller

import (
	"strconv"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// ListUsers godoc
// @Summary List users, optionally filtered by role
// @Tags users
// @Produce  json
// @Security BearerAuth
// @Param   role query string false "student|mentor|admin"
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.ListUsers(model.UserRole(ctx.Query("role")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// DisableRequest defines model for enabling/disabling an account
// swagger:model DisableRequest
type DisableRequest struct {
	Disabled bool `json:"disabled"`
}

// SetDisabled godoc
// @Summary Enable or disable an account
// @Tags users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "user id"
// @Param   body body DisableRequest true "desired state"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req DisableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(util.MustParseUint(ctx.Param("id")), req.Disabled); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RoleRequest defines model for changing a user's role
// swagger:model RoleRequest
type RoleRequest struct {
	Role string `json:"role" binding:"required,oneof=student mentor admin"`
}

// SetRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "user id"
// @Param   body body RoleRequest true "new role"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) SetRole(ctx *gin.Context) {
	var req RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetRole(util.MustParseUint(ctx.Param("id")), model.UserRole(req.Role)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
