package app

import (
	"ielts_edu_backend/docs"
	"ielts_edu_backend/internal/config"
	"ielts_edu_backend/internal/middleware"
	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)

		authGroup.GET("/exams", c.exam.ListExams)
		authGroup.GET("/exams/:id", c.exam.GetExam)
		authGroup.GET("/exams/assigned", c.exam.AssignedExams)
		authGroup.GET("/exams/:id/attempt", c.attempt.MyExamAttempt)
		authGroup.POST("/exams/:id/submit", c.attempt.Submit)

		authGroup.GET("/attempts", c.attempt.MyAttempts)
		authGroup.GET("/attempts/:id", c.attempt.GetAttempt)
		authGroup.GET("/attempts/:id/review", c.review.GetReview)

		authGroup.GET("/dashboard", c.dashboard.StudentStats)

		mentor := authGroup.Group("/mentor")
		mentor.Use(middleware.RoleMiddleware(model.Mentor, model.Admin))
		{
			mentor.GET("/groups", c.group.MyGroups)
			mentor.GET("/reviews", c.review.MyReviews)
			mentor.GET("/reviews/pending", c.review.Pending)
			mentor.POST("/attempts/:id/review", c.review.SubmitReview)
		}

		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.POST("/exams", c.exam.CreateExam)
			admin.PUT("/exams/:id", c.exam.UpdateExam)
			admin.DELETE("/exams/:id", c.exam.DeleteExam)
			admin.POST("/exams/:id/assign", c.exam.AssignExam)

			admin.POST("/passages", c.exam.SavePassage)
			admin.DELETE("/passages/:id", c.exam.DeletePassage)
			admin.POST("/reading-questions", c.exam.SaveReadingQuestion)
			admin.DELETE("/reading-questions/:id", c.exam.DeleteReadingQuestion)
			admin.PUT("/reading-sub-questions/:id", c.exam.UpdateReadingSubQuestion)
			admin.POST("/listening-audios", c.exam.SaveListeningAudio)
			admin.DELETE("/listening-audios/:id", c.exam.DeleteListeningAudio)
			admin.POST("/listening-questions", c.exam.SaveListeningQuestion)
			admin.DELETE("/listening-questions/:id", c.exam.DeleteListeningQuestion)
			admin.PUT("/listening-sub-questions/:id", c.exam.UpdateListeningSubQuestion)
			admin.POST("/writing-tasks", c.exam.SaveWritingTask)
			admin.DELETE("/writing-tasks/:id", c.exam.DeleteWritingTask)
			admin.POST("/speaking-parts", c.exam.SaveSpeakingPart)
			admin.DELETE("/speaking-parts/:id", c.exam.DeleteSpeakingPart)

			admin.POST("/groups", c.group.CreateGroup)
			admin.GET("/groups", c.group.ListGroups)
			admin.GET("/groups/:id", c.group.GetGroup)
			admin.DELETE("/groups/:id", c.group.DeleteGroup)
			admin.POST("/groups/:id/students", c.group.AddStudent)
			admin.DELETE("/groups/:id/students/:studentId", c.group.RemoveStudent)

			admin.GET("/users", c.user.ListUsers)
			admin.PUT("/users/:id/disabled", c.user.SetDisabled)
			admin.PUT("/users/:id/role", c.user.SetRole)
			admin.DELETE("/users/:id", c.user.DeleteUser)

			admin.GET("/stats/groups", c.dashboard.GroupAverages)
		}
	}
}
