package model

import "time"

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptSubmitted  AttemptStatus = "submitted"
	AttemptCompleted  AttemptStatus = "completed"
)

// Attempt is one student's single recorded pass at one exam. The
// (exam_id, student_id) pair is unique; concurrent first submissions race on
// the index and the loser adopts the winner's row.
//
// swagger:model Attempt
type Attempt struct {
	BaseModel
	ExamID    uint  `gorm:"uniqueIndex:uniq_exam_student;type:bigint unsigned" json:"examId"`
	StudentID uint  `gorm:"uniqueIndex:uniq_exam_student;type:bigint unsigned" json:"studentId"`
	GroupID   *uint `gorm:"index;type:bigint unsigned" json:"groupId,omitempty"`

	Exam    *Exam `gorm:"foreignKey:ExamID" json:"exam,omitempty"`
	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`

	Status AttemptStatus `gorm:"size:20;default:'in_progress'" json:"status"`

	ReadingScore   *float64 `json:"readingScore,omitempty"`
	ListeningScore *float64 `json:"listeningScore,omitempty"`
	WritingScore   *float64 `json:"writingScore,omitempty"`
	SpeakingScore  *float64 `json:"speakingScore,omitempty"`
	TotalScore     *float64 `json:"totalScore,omitempty"`

	CorrectCount   *int `json:"correctCount,omitempty"`
	IncorrectCount *int `json:"incorrectCount,omitempty"`

	// JSON-encoded AnswerSet. Undecodable history degrades to "no answers".
	Answers string `gorm:"type:json" json:"-"`

	StartedAt   time.Time  `gorm:"autoCreateTime" json:"startedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptAudio holds one uploaded speaking recording per (attempt, part).
// Re-submission for the same part replaces the file in place.
type AttemptAudio struct {
	BaseModel
	AttemptID uint    `gorm:"uniqueIndex:uniq_attempt_part;type:bigint unsigned" json:"attemptId"`
	PartID    int     `gorm:"uniqueIndex:uniq_attempt_part" json:"partId"`
	AudioFile string  `gorm:"size:512;not null" json:"audioFile"`
	Duration  float64 `gorm:"default:0" json:"duration"` // seconds
}

func (AttemptAudio) TableName() string {
	return "attempt_audios"
}
