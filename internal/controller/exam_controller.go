package controller

import (
	"errors"
	"path/filepath"
	"strconv"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/service"
	"ielts_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExamController struct {
	ExamService  *service.ExamService
	GroupService *service.GroupService
}

func NewExamController(examService *service.ExamService, groupService *service.GroupService) *ExamController {
	return &ExamController{ExamService: examService, GroupService: groupService}
}

// ExamRequest defines model for exam creation and update
// swagger:model ExamRequest
type ExamRequest struct {
	Title       string `json:"title" binding:"required"`
	SectionType string `json:"sectionType" binding:"required,oneof=listening reading writing speaking"`
	Description string `json:"description"`
	TimeLimit   int    `json:"timeLimit"`
	IsPublished bool   `json:"isPublished"`
}

// CreateExam godoc
// @Summary Create an exam
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ExamRequest true "exam fields"
// @Success 201 {object} util.Response{data=model.Exam}
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/admin/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam := &model.Exam{
		Title:       req.Title,
		SectionType: model.SectionType(req.SectionType),
		Description: req.Description,
		TimeLimit:   req.TimeLimit,
		IsPublished: req.IsPublished,
	}
	if err := c.ExamService.CreateExam(exam); err != nil {
		if errors.Is(err, util.ErrWrongSectionType) {
			util.BadRequest(ctx, "unknown section type")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, exam)
}

// ListExams godoc
// @Summary List exams
// @Description Filter by section type; students only ever see published exams
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   section query string false "section type"
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	section := model.SectionType(ctx.Query("section"))

	claims := util.GetUserFromContext(ctx)
	publishedOnly := claims == nil || claims.Role == model.Student

	exams, total, err := c.ExamService.ListExams(section, publishedOnly, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: exams, Total: total, Page: page, Limit: limit})
}

// GetExam godoc
// @Summary Exam with full content tree
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Success 200 {object} util.Response{data=model.Exam}
// @Failure 404 {object} util.Response "not found"
// @Router /api/exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	exam, err := c.ExamService.GetExamContent(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !exam.IsPublished && claims != nil && claims.Role == model.Student {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, exam)
}

// UpdateExam godoc
// @Summary Update exam metadata
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Param   body body ExamRequest true "exam fields"
// @Success 200 {object} util.Response{data=model.Exam}
// @Router /api/admin/exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	exam, err := c.ExamService.GetExam(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam.Title = req.Title
	exam.SectionType = model.SectionType(req.SectionType)
	exam.Description = req.Description
	exam.TimeLimit = req.TimeLimit
	exam.IsPublished = req.IsPublished

	if err := c.ExamService.UpdateExam(exam); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// DeleteExam godoc
// @Summary Delete an exam
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Success 200 {object} util.Response
// @Router /api/admin/exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.ExamService.DeleteExam(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AssignRequest defines model for exam assignment
// swagger:model AssignRequest
type AssignRequest struct {
	GroupID   *uint `json:"groupId"`
	AllGroups bool  `json:"allGroups"`
}

// AssignExam godoc
// @Summary Assign an exam to a group or to everyone
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "exam id"
// @Param   body body AssignRequest true "target group, or allGroups"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "exam not found"
// @Router /api/admin/exams/{id}/assign [post]
func (c *ExamController) AssignExam(ctx *gin.Context) {
	var req AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.GroupID == nil && !req.AllGroups {
		util.BadRequest(ctx, "groupId or allGroups is required")
		return
	}

	err := c.ExamService.AssignExam(util.MustParseUint(ctx.Param("id")), req.GroupID, req.AllGroups)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// AssignedExams godoc
// @Summary Exams visible to the current student's group
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Exam}
// @Router /api/exams/assigned [get]
func (c *ExamController) AssignedExams(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	group, err := c.GroupService.StudentGroup(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	var groupID uint
	if group != nil {
		groupID = group.ID
	}
	exams, err := c.ExamService.ListAssignedExams(groupID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exams)
}

// SavePassage godoc
// @Summary Create or update a reading passage
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.ReadingPassage true "passage"
// @Success 200 {object} util.Response{data=model.ReadingPassage}
// @Router /api/admin/passages [post]
func (c *ExamController) SavePassage(ctx *gin.Context) {
	var passage model.ReadingPassage
	if err := ctx.ShouldBindJSON(&passage); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExamService.SavePassage(&passage); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, passage)
}

// DeletePassage godoc
// @Summary Delete a reading passage
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "passage id"
// @Success 200 {object} util.Response
// @Router /api/admin/passages/{id} [delete]
func (c *ExamController) DeletePassage(ctx *gin.Context) {
	if err := c.ExamService.DeletePassage(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SaveReadingQuestion godoc
// @Summary Save a reading question block
// @Description Persists the block and regenerates its subquestions to match the number range
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.ReadingQuestion true "question block"
// @Success 200 {object} util.Response{data=model.ReadingQuestion}
// @Router /api/admin/reading-questions [post]
func (c *ExamController) SaveReadingQuestion(ctx *gin.Context) {
	var q model.ReadingQuestion
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExamService.SaveReadingQuestion(&q); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// SaveListeningQuestion godoc
// @Summary Save a listening question block
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.ListeningQuestion true "question block"
// @Success 200 {object} util.Response{data=model.ListeningQuestion}
// @Router /api/admin/listening-questions [post]
func (c *ExamController) SaveListeningQuestion(ctx *gin.Context) {
	var q model.ListeningQuestion
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExamService.SaveListeningQuestion(&q); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// DeleteReadingQuestion godoc
// @Summary Delete a reading question block and its subquestions
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/reading-questions/{id} [delete]
func (c *ExamController) DeleteReadingQuestion(ctx *gin.Context) {
	if err := c.ExamService.DeleteReadingQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// DeleteListeningQuestion godoc
// @Summary Delete a listening question block and its subquestions
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/listening-questions/{id} [delete]
func (c *ExamController) DeleteListeningQuestion(ctx *gin.Context) {
	if err := c.ExamService.DeleteListeningQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UpdateReadingSubQuestion godoc
// @Summary Update a reading subquestion (text, choices, answer key)
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "subquestion id"
// @Param   body body model.ReadingSubQuestion true "subquestion"
// @Success 200 {object} util.Response{data=model.ReadingSubQuestion}
// @Router /api/admin/reading-sub-questions/{id} [put]
func (c *ExamController) UpdateReadingSubQuestion(ctx *gin.Context) {
	var sub model.ReadingSubQuestion
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sub.ID = util.MustParseUint(ctx.Param("id"))
	if err := c.ExamService.UpdateReadingSubQuestion(&sub); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// UpdateListeningSubQuestion godoc
// @Summary Update a listening subquestion
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "subquestion id"
// @Param   body body model.ListeningSubQuestion true "subquestion"
// @Success 200 {object} util.Response{data=model.ListeningSubQuestion}
// @Router /api/admin/listening-sub-questions/{id} [put]
func (c *ExamController) UpdateListeningSubQuestion(ctx *gin.Context) {
	var sub model.ListeningSubQuestion
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	sub.ID = util.MustParseUint(ctx.Param("id"))
	if err := c.ExamService.UpdateListeningSubQuestion(&sub); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// SaveListeningAudio godoc
// @Summary Create or update a listening audio section
// @Description Multipart form: an optional audio file plus section fields
// @Tags exams
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   examId formData int true "exam id"
// @Param   audio formData file false "audio file"
// @Success 200 {object} util.Response{data=model.ListeningAudio}
// @Router /api/admin/listening-audios [post]
func (c *ExamController) SaveListeningAudio(ctx *gin.Context) {
	audio := model.ListeningAudio{
		ExamID:     util.MustParseUint(ctx.PostForm("examId")),
		Transcript: ctx.PostForm("transcript"),
	}
	audio.ID = util.MustParseUint(ctx.PostForm("id"))
	if order, err := strconv.Atoi(ctx.PostForm("order")); err == nil {
		audio.Order = order
	}

	header, err := ctx.FormFile("audio")
	if err == nil {
		src, err := header.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer src.Close()

		ext := filepath.Ext(header.Filename)
		if ext == "" {
			ext = ".mp3"
		}
		if err := c.ExamService.SaveListeningAudio(ctx.Request.Context(), &audio, src, header.Size, ext); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	} else {
		if err := c.ExamService.SaveListeningAudio(ctx.Request.Context(), &audio, nil, 0, ""); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}
	util.Success(ctx, audio)
}

// DeleteListeningAudio godoc
// @Summary Delete a listening audio section
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "audio id"
// @Success 200 {object} util.Response
// @Router /api/admin/listening-audios/{id} [delete]
func (c *ExamController) DeleteListeningAudio(ctx *gin.Context) {
	if err := c.ExamService.DeleteListeningAudio(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SaveWritingTask godoc
// @Summary Create or update a writing task
// @Description Multipart form: task fields plus an optional chart/diagram image
// @Tags exams
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   examId formData int true "exam id"
// @Param   image formData file false "task 1 chart or diagram"
// @Success 200 {object} util.Response{data=model.WritingTask}
// @Router /api/admin/writing-tasks [post]
func (c *ExamController) SaveWritingTask(ctx *gin.Context) {
	task := model.WritingTask{
		ExamID:      util.MustParseUint(ctx.PostForm("examId")),
		TaskType:    model.WritingTaskType(ctx.DefaultPostForm("taskType", string(model.WritingTask1))),
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}
	task.ID = util.MustParseUint(ctx.PostForm("id"))
	if minWords, err := strconv.Atoi(ctx.PostForm("minWords")); err == nil {
		task.MinWords = minWords
	}
	if timeLimit, err := strconv.Atoi(ctx.PostForm("timeLimit")); err == nil {
		task.TimeLimit = timeLimit
	}

	header, err := ctx.FormFile("image")
	if err == nil {
		src, err := header.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer src.Close()

		if err := c.ExamService.SaveWritingTask(ctx.Request.Context(), &task, src, header.Size, filepath.Ext(header.Filename)); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	} else {
		if err := c.ExamService.SaveWritingTask(ctx.Request.Context(), &task, nil, 0, ""); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}
	util.Success(ctx, task)
}

// DeleteWritingTask godoc
// @Summary Delete a writing task
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "task id"
// @Success 200 {object} util.Response
// @Router /api/admin/writing-tasks/{id} [delete]
func (c *ExamController) DeleteWritingTask(ctx *gin.Context) {
	if err := c.ExamService.DeleteWritingTask(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SaveSpeakingPart godoc
// @Summary Create or update a speaking part
// @Tags exams
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.SpeakingPart true "speaking part"
// @Success 200 {object} util.Response{data=model.SpeakingPart}
// @Router /api/admin/speaking-parts [post]
func (c *ExamController) SaveSpeakingPart(ctx *gin.Context) {
	var part model.SpeakingPart
	if err := ctx.ShouldBindJSON(&part); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ExamService.SaveSpeakingPart(&part); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, part)
}

// DeleteSpeakingPart godoc
// @Summary Delete a speaking part
// @Tags exams
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "part id"
// @Success 200 {object} util.Response
// @Router /api/admin/speaking-parts/{id} [delete]
func (c *ExamController) DeleteSpeakingPart(ctx *gin.Context) {
	if err := c.ExamService.DeleteSpeakingPart(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
