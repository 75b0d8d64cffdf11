package controller

import (
	"errors"
	"fmt"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService   *service.AttemptService
	ReviewService    *service.ReviewService
	DashboardService *service.DashboardService
}

func NewAttemptController(attemptService *service.AttemptService, reviewService *service.ReviewService, dashboardService *service.DashboardService) *AttemptController {
	return &AttemptController{
		AttemptService:   attemptService,
		ReviewService:    reviewService,
		DashboardService: dashboardService,
	}
}

// Submit godoc
// @Summary Submit an exam attempt
// @Description Multipart form. Answer fields are q_<subQuestionId> (objective),
// @Description task_<taskId> (writing) and part_<partId> (speaking); speaking
// @Description recordings upload as part_<partId>_audio files. Reading and
// @Description listening attempts are auto-scored on the spot.
// @Tags attempts
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Success 200 {object} util.Response{data=object} "attempt id, status and redirect"
// @Failure 400 {object} util.Response "attempt already submitted"
// @Failure 403 {object} util.Response "not a student"
// @Failure 404 {object} util.Response "exam not found"
// @Router /api/exams/{id}/submit [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	examID := util.MustParseUint(ctx.Param("id"))

	if err := ctx.Request.ParseMultipartForm(64 << 20); err != nil {
		util.BadRequest(ctx, "invalid multipart form")
		return
	}

	answers := service.DecodeAnswerForm(ctx.Request.MultipartForm.Value)
	uploads := service.CollectAudioUploads(ctx.Request.MultipartForm.File)

	attempt, err := c.AttemptService.Submit(ctx.Request.Context(), claims.UserID, claims.Role, examID, answers, uploads)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "only students submit attempts")
		case errors.Is(err, util.ErrExamNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAttemptAlreadySubmitted):
			util.BadRequest(ctx, "this exam has already been submitted")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.DashboardService.InvalidateStudentStats(ctx.Request.Context(), claims.UserID)

	util.Success(ctx, gin.H{
		"attemptId": attempt.ID,
		"status":    attempt.Status,
		"redirect":  fmt.Sprintf("/attempts/%d", attempt.ID),
	})
}

// MyAttempts godoc
// @Summary List the current student's attempts
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Attempt}
// @Router /api/attempts [get]
func (c *AttemptController) MyAttempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	attempts, err := c.AttemptService.ListByStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// MyExamAttempt godoc
// @Summary The current student's attempt at one exam, if any
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Success 200 {object} util.Response{data=model.Attempt}
// @Router /api/exams/{id}/attempt [get]
func (c *AttemptController) MyExamAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	attempt, err := c.AttemptService.FindForExam(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

// GetAttempt godoc
// @Summary Attempt detail with decoded answers, recordings and review
// @Description Students see only their own attempts; mentors and admins see any.
// @Tags attempts
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=service.AttemptDetail}
// @Failure 404 {object} util.Response "not found"
// @Router /api/attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	detail, err := c.AttemptService.GetAttemptDetail(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if claims.Role == model.Student && detail.Attempt.StudentID != claims.UserID {
		util.NotFound(ctx)
		return
	}

	review, err := c.ReviewService.GetReview(detail.Attempt.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	detail.Review = review

	util.Success(ctx, detail)
}
