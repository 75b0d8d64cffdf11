package model

import "time"

// Review is a mentor's scored assessment of a writing/speaking attempt.
// One review per attempt; re-reviewing updates the existing row.
//
// swagger:model Review
type Review struct {
	BaseModel
	AttemptID uint  `gorm:"uniqueIndex;type:bigint unsigned" json:"attemptId"`
	MentorID  uint  `gorm:"index;type:bigint unsigned" json:"mentorId"`
	Mentor    *User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`

	TaskAchievement   float64 `json:"taskAchievement"`
	CoherenceCohesion float64 `json:"coherenceCohesion"`
	LexicalResource   float64 `json:"lexicalResource"`
	GrammaticalRange  float64 `json:"grammaticalRange"`

	// Arithmetic mean of the four criteria, stored unrounded.
	OverallScore float64 `json:"overallScore"`

	Feedback     string `gorm:"type:text" json:"feedback"`
	Strengths    string `gorm:"type:text" json:"strengths"`
	Improvements string `gorm:"type:text" json:"improvements"`

	ReviewedAt time.Time `gorm:"autoCreateTime" json:"reviewedAt"`
}

func (Review) TableName() string {
	return "reviews"
}
