package repository

import (
	"ielts_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MySQL 8 reserves GROUPS as a keyword. GORM quotes identifiers it
// generates itself but passes Joins/Select/Group strings through verbatim,
// so every raw fragment naming the table must quote it.
const (
	groupsJoin           = "JOIN `groups` ON `groups`.id = attempts.group_id"
	groupsMentorFilter   = "`groups`.mentor_id = ?"
	groupAveragesSelect  = "attempts.group_id, `groups`.name AS group_name, AVG(attempts.total_score) AS average_score, COUNT(*) AS completed_count"
	groupAveragesGroupBy = "attempts.group_id, `groups`.name"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// GetOrCreate inserts the attempt, relying on the (exam_id, student_id)
// unique index to collapse concurrent double submissions into one row.
// When the insert is a no-op the existing row is loaded and created=false.
func (r *AttemptRepository) GetOrCreate(attempt *model.Attempt) (created bool, err error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exam_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(attempt)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var existing model.Attempt
	err = r.DB.Where("exam_id = ? AND student_id = ?", attempt.ExamID, attempt.StudentID).
		First(&existing).Error
	if err != nil {
		return false, err
	}
	*attempt = existing
	return false, nil
}

func (r *AttemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.DB.Preload("Exam").Preload("Student").First(&attempt, id).Error
	return &attempt, err
}

func (r *AttemptRepository) FindByExamAndStudent(examID, studentID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.DB.Where("exam_id = ? AND student_id = ?", examID, studentID).First(&attempt).Error
	return &attempt, err
}

func (r *AttemptRepository) Update(attempt *model.Attempt) error {
	return r.DB.Save(attempt).Error
}

func (r *AttemptRepository) ListByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Preload("Exam").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&attempts).Error
	return attempts, err
}

// ListPendingReview returns submitted writing/speaking attempts awaiting a
// mentor, oldest first. Mentors of a group only see their own students.
func (r *AttemptRepository) ListPendingReview(mentorID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Preload("Exam").Preload("Student").
		Joins("JOIN exams ON exams.id = attempts.exam_id").
		Joins(groupsJoin).
		Where("attempts.status = ?", model.AttemptSubmitted).
		Where("exams.section_type IN ?", []model.SectionType{model.SectionWriting, model.SectionSpeaking}).
		Where(groupsMentorFilter, mentorID).
		Order("attempts.submitted_at asc").
		Find(&attempts).Error
	return attempts, err
}

// UpsertAudio stores one recording per (attempt, part), replacing the file
// reference when the part is re-uploaded.
func (r *AttemptRepository) UpsertAudio(audio *model.AttemptAudio) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "part_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"audio_file", "duration", "updated_at"}),
	}).Create(audio).Error
}

func (r *AttemptRepository) ListAudios(attemptID uint) ([]model.AttemptAudio, error) {
	var audios []model.AttemptAudio
	err := r.DB.Where("attempt_id = ?", attemptID).Order("part_id asc").Find(&audios).Error
	return audios, err
}

// GroupAverages computes per-group average total score over completed attempts.
func (r *AttemptRepository) GroupAverages() ([]GroupAverageRow, error) {
	var rows []GroupAverageRow
	err := r.DB.Model(&model.Attempt{}).
		Select(groupAveragesSelect).
		Joins(groupsJoin).
		Where("attempts.status = ? AND attempts.total_score IS NOT NULL", model.AttemptCompleted).
		Group(groupAveragesGroupBy).
		Scan(&rows).Error
	return rows, err
}

type GroupAverageRow struct {
	GroupID        uint    `json:"groupId"`
	GroupName      string  `json:"groupName"`
	AverageScore   float64 `json:"averageScore"`
	CompletedCount int64   `json:"completedCount"`
}
