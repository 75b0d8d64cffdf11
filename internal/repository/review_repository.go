package repository

import (
	"ielts_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByAttempt(attemptID uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.Preload("Mentor").Where("attempt_id = ?", attemptID).First(&review).Error
	return &review, err
}

// Upsert writes the review, updating in place when the attempt has already
// been reviewed. Exactly one review row exists per attempt afterwards.
func (r *ReviewRepository) Upsert(review *model.Review) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attempt_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mentor_id",
			"task_achievement", "coherence_cohesion", "lexical_resource", "grammatical_range",
			"overall_score",
			"feedback", "strengths", "improvements",
			"updated_at",
		}),
	}).Create(review).Error
}

func (r *ReviewRepository) ListByMentor(mentorID uint, page, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64
	query := r.DB.Model(&model.Review{}).Where("mentor_id = ?", mentorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&reviews).Error
	return reviews, total, err
}
