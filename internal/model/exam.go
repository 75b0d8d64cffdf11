package model

import "time"

type SectionType string

const (
	SectionListening SectionType = "listening"
	SectionReading   SectionType = "reading"
	SectionWriting   SectionType = "writing"
	SectionSpeaking  SectionType = "speaking"
)

// IsObjective reports whether the section is graded automatically from an
// answer key. Writing and speaking always go through mentor review.
func (s SectionType) IsObjective() bool {
	return s == SectionReading || s == SectionListening
}

func (s SectionType) Valid() bool {
	switch s {
	case SectionListening, SectionReading, SectionWriting, SectionSpeaking:
		return true
	}
	return false
}

// swagger:model Exam
type Exam struct {
	BaseModel
	Title       string      `gorm:"size:255;not null" json:"title"`
	SectionType SectionType `gorm:"type:enum('listening','reading','writing','speaking');not null" json:"sectionType"`
	Description string      `gorm:"type:text" json:"description"`
	TimeLimit   int         `gorm:"default:60" json:"timeLimit"` // minutes
	IsPublished bool        `gorm:"default:false" json:"isPublished"`

	ReadingPassages []ReadingPassage `gorm:"foreignKey:ExamID" json:"readingPassages,omitempty"`
	ListeningAudios []ListeningAudio `gorm:"foreignKey:ExamID" json:"listeningAudios,omitempty"`
	WritingTasks    []WritingTask    `gorm:"foreignKey:ExamID" json:"writingTasks,omitempty"`
	SpeakingParts   []SpeakingPart   `gorm:"foreignKey:ExamID" json:"speakingParts,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamAssignment makes an exam visible to one group, or to all groups at once.
type ExamAssignment struct {
	BaseModel
	ExamID     uint      `gorm:"uniqueIndex:uniq_exam_group;type:bigint unsigned" json:"examId"`
	GroupID    *uint     `gorm:"uniqueIndex:uniq_exam_group;type:bigint unsigned" json:"groupId,omitempty"`
	AllGroups  bool      `gorm:"default:false" json:"allGroups"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assignedAt"`
}

func (ExamAssignment) TableName() string {
	return "exam_assignments"
}
