package model

import "strings"

type SpeakingPartType string

const (
	SpeakingPart1 SpeakingPartType = "part1"
	SpeakingPart2 SpeakingPartType = "part2"
	SpeakingPart3 SpeakingPartType = "part3"
)

// swagger:model SpeakingPart
type SpeakingPart struct {
	BaseModel
	ExamID    uint             `gorm:"index;type:bigint unsigned" json:"examId"`
	PartType  SpeakingPartType `gorm:"size:20;not null" json:"partType"`
	Title     string           `gorm:"size:300;not null" json:"title"`
	Subtitle  string           `gorm:"size:300" json:"subtitle,omitempty"`
	Questions string           `gorm:"type:text" json:"questions"` // one prompt per line
	TimeLimit int              `gorm:"default:5" json:"timeLimit"` // minutes

	SubQuestions []SpeakingSubQuestion `gorm:"foreignKey:PartID" json:"subQuestions,omitempty"`
}

func (SpeakingPart) TableName() string {
	return "speaking_parts"
}

// QuestionsList splits the legacy newline-separated prompt field.
func (p *SpeakingPart) QuestionsList() []string {
	var out []string
	for _, q := range strings.Split(p.Questions, "\n") {
		if q = strings.TrimSpace(q); q != "" {
			out = append(out, q)
		}
	}
	return out
}

type SpeakingSubQuestion struct {
	BaseModel
	PartID uint             `gorm:"index;type:bigint unsigned" json:"partId"`
	Text   string           `gorm:"type:text" json:"text"`
	Kind   SpeakingPartType `gorm:"size:20;default:'part1'" json:"kind"`
}

func (SpeakingSubQuestion) TableName() string {
	return "speaking_sub_questions"
}
