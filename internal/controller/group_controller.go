package controller

import (
	"errors"
	"strconv"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// GroupRequest defines model for group creation
// swagger:model GroupRequest
type GroupRequest struct {
	Name     string `json:"name" binding:"required"`
	MentorID uint   `json:"mentorId" binding:"required"`
}

// CreateGroup godoc
// @Summary Create a study group
// @Tags groups
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body GroupRequest true "group fields"
// @Success 201 {object} util.Response{data=model.Group}
// @Failure 400 {object} util.Response "mentor not found or wrong role"
// @Router /api/admin/groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group := &model.Group{Name: req.Name, MentorID: req.MentorID}
	if err := c.GroupService.CreateGroup(group); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.BadRequest(ctx, "mentor not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, group)
}

// ListGroups godoc
// @Summary List groups
// @Tags groups
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	groups, total, err := c.GroupService.ListGroups(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: groups, Total: total, Page: page, Limit: limit})
}

// GetGroup godoc
// @Summary Group with its students
// @Tags groups
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "group id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "not found"
// @Router /api/admin/groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	group, err := c.GroupService.GetGroup(id)
	if err != nil {
		if errors.Is(err, util.ErrGroupNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	students, err := c.GroupService.ListStudents(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"group": group, "students": students})
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags groups
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "group id"
// @Success 200 {object} util.Response
// @Router /api/admin/groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	if err := c.GroupService.DeleteGroup(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MyGroups godoc
// @Summary Groups led by the current mentor
// @Tags groups
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Group}
// @Router /api/mentor/groups [get]
func (c *GroupController) MyGroups(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	groups, err := c.GroupService.MentorGroups(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// EnrollRequest defines model for enrolling a student
// swagger:model EnrollRequest
type EnrollRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

// AddStudent godoc
// @Summary Enroll a student in a group
// @Tags groups
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "group id"
// @Param   body body EnrollRequest true "student"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "student not found, wrong role, or already enrolled elsewhere"
// @Failure 404 {object} util.Response "group not found"
// @Router /api/admin/groups/{id}/students [post]
func (c *GroupController) AddStudent(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.GroupService.AddStudent(util.MustParseUint(ctx.Param("id")), req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.BadRequest(ctx, "student not found")
		case errors.Is(err, util.ErrStudentAlreadyEnrolled):
			util.BadRequest(ctx, "student already belongs to a group")
		case errors.Is(err, util.ErrGroupNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// RemoveStudent godoc
// @Summary Remove a student from a group
// @Tags groups
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "group id"
// @Param   studentId path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/admin/groups/{id}/students/{studentId} [delete]
func (c *GroupController) RemoveStudent(ctx *gin.Context) {
	err := c.GroupService.RemoveStudent(util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
