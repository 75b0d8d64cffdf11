package service

import (
	"time"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/internal/util"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo        *repository.ReviewRepository
	AttemptRepo *repository.AttemptRepository
}

func NewReviewService(repo *repository.ReviewRepository, attemptRepo *repository.AttemptRepository) *ReviewService {
	return &ReviewService{Repo: repo, AttemptRepo: attemptRepo}
}

// ReviewRequest carries the four criterion scores a mentor assigns. Range
// checking is left to the band-score picker on the client; out-of-range
// values are a data-quality issue, not a request error.
type ReviewRequest struct {
	TaskAchievement   float64 `json:"taskAchievement"`
	CoherenceCohesion float64 `json:"coherenceCohesion"`
	LexicalResource   float64 `json:"lexicalResource"`
	GrammaticalRange  float64 `json:"grammaticalRange"`
	Feedback          string  `json:"feedback"`
	Strengths         string  `json:"strengths"`
	Improvements      string  `json:"improvements"`
}

// Overall is the review aggregate: the plain arithmetic mean of the four
// criterion scores, stored unrounded. Rounding is a presentation concern.
func Overall(taskAchievement, coherenceCohesion, lexicalResource, grammaticalRange float64) float64 {
	return (taskAchievement + coherenceCohesion + lexicalResource + grammaticalRange) / 4
}

// SubmitReview records or updates the mentor's assessment and completes the
// attempt in the same pass: the overall score becomes the attempt's total.
// Re-reviewing updates the single review row in place.
func (s *ReviewService) SubmitReview(mentorID uint, role model.UserRole, attemptID uint, req ReviewRequest) (*model.Review, error) {
	if !role.Can(model.CapReviewAttempt) {
		return nil, util.ErrPermissionDenied
	}

	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}

	if attempt.Exam != nil && attempt.Exam.SectionType.IsObjective() {
		return nil, util.ErrAttemptNotReviewable
	}

	overall := Overall(req.TaskAchievement, req.CoherenceCohesion, req.LexicalResource, req.GrammaticalRange)

	review := &model.Review{
		AttemptID:         attemptID,
		MentorID:          mentorID,
		TaskAchievement:   req.TaskAchievement,
		CoherenceCohesion: req.CoherenceCohesion,
		LexicalResource:   req.LexicalResource,
		GrammaticalRange:  req.GrammaticalRange,
		OverallScore:      overall,
		Feedback:          req.Feedback,
		Strengths:         req.Strengths,
		Improvements:      req.Improvements,
	}

	if err := s.Repo.Upsert(review); err != nil {
		return nil, err
	}

	now := time.Now()
	attempt.TotalScore = &overall
	if attempt.Exam != nil {
		switch attempt.Exam.SectionType {
		case model.SectionWriting:
			attempt.WritingScore = &overall
		case model.SectionSpeaking:
			attempt.SpeakingScore = &overall
		}
	}
	attempt.Status = model.AttemptCompleted
	attempt.CompletedAt = &now

	if err := s.AttemptRepo.Update(attempt); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) GetReview(attemptID uint) (*model.Review, error) {
	review, err := s.Repo.FindByAttempt(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return review, nil
}

// MentorReviews pages through the reviews a mentor has written.
func (s *ReviewService) MentorReviews(mentorID uint, page, limit int) ([]model.Review, int64, error) {
	return s.Repo.ListByMentor(mentorID, page, limit)
}

// PendingReviews lists submitted writing/speaking attempts waiting on the
// mentor's groups.
func (s *ReviewService) PendingReviews(mentorID uint, role model.UserRole) ([]model.Attempt, error) {
	if !role.Can(model.CapReviewAttempt) {
		return nil, util.ErrPermissionDenied
	}
	return s.AttemptRepo.ListPendingReview(mentorID)
}
