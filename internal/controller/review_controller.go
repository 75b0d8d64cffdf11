package controller

import (
	"errors"
	"strconv"

	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService    *service.ReviewService
	AttemptService   *service.AttemptService
	DashboardService *service.DashboardService
}

func NewReviewController(reviewService *service.ReviewService, attemptService *service.AttemptService, dashboardService *service.DashboardService) *ReviewController {
	return &ReviewController{
		ReviewService:    reviewService,
		AttemptService:   attemptService,
		DashboardService: dashboardService,
	}
}

// Pending godoc
// @Summary Submitted writing/speaking attempts awaiting this mentor
// @Tags reviews
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Attempt}
// @Failure 403 {object} util.Response "not a mentor"
// @Router /api/mentor/reviews/pending [get]
func (c *ReviewController) Pending(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	attempts, err := c.ReviewService.PendingReviews(claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx, "")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, attempts)
}

// MyReviews godoc
// @Summary Reviews the current mentor has written
// @Tags reviews
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/mentor/reviews [get]
func (c *ReviewController) MyReviews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	reviews, total, err := c.ReviewService.MentorReviews(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: reviews, Total: total, Page: page, Limit: limit})
}

// SubmitReview godoc
// @Summary Score a writing or speaking attempt
// @Description Saves the four criterion scores, sets the overall to their mean
// @Description and completes the attempt. Re-posting replaces the review.
// @Tags reviews
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "attempt id"
// @Param   body body service.ReviewRequest true "criterion scores and feedback"
// @Success 200 {object} util.Response{data=model.Review}
// @Failure 400 {object} util.Response "attempt is auto-scored, not reviewable"
// @Failure 403 {object} util.Response "not a mentor"
// @Failure 404 {object} util.Response "attempt not found"
// @Router /api/mentor/attempts/{id}/review [post]
func (c *ReviewController) SubmitReview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.ReviewService.SubmitReview(claims.UserID, claims.Role, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "")
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAttemptNotReviewable):
			util.BadRequest(ctx, "reading and listening attempts are scored automatically")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if attempt, err := c.AttemptService.GetAttempt(review.AttemptID); err == nil {
		c.DashboardService.InvalidateStudentStats(ctx.Request.Context(), attempt.StudentID)
	}

	util.Success(ctx, review)
}

// GetReview godoc
// @Summary Review for one attempt, if any
// @Tags reviews
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "attempt id"
// @Success 200 {object} util.Response{data=model.Review}
// @Router /api/attempts/{id}/review [get]
func (c *ReviewController) GetReview(ctx *gin.Context) {
	review, err := c.ReviewService.GetReview(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, review)
}
