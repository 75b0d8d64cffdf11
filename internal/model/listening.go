package model

// swagger:model ListeningAudio
type ListeningAudio struct {
	BaseModel
	ExamID     uint    `gorm:"index;type:bigint unsigned" json:"examId"`
	AudioFile  string  `gorm:"size:512" json:"audioFile"`
	Transcript string  `gorm:"type:text" json:"transcript,omitempty"`
	Duration   float64 `gorm:"default:0" json:"duration"` // seconds
	Order      int     `gorm:"column:display_order;default:0" json:"order"`

	Questions []ListeningQuestion `gorm:"foreignKey:AudioID" json:"questions,omitempty"`
}

func (ListeningAudio) TableName() string {
	return "listening_audios"
}

// swagger:model ListeningQuestion
type ListeningQuestion struct {
	BaseModel
	AudioID      uint         `gorm:"index;type:bigint unsigned" json:"audioId"`
	QuestionType QuestionType `gorm:"size:50;default:'mcq'" json:"questionType"`
	StartNumber  int          `json:"startNumber"`
	EndNumber    int          `json:"endNumber"`
	Instruction  string       `gorm:"type:text" json:"instruction"`

	SubQuestions []ListeningSubQuestion `gorm:"foreignKey:QuestionID" json:"subQuestions,omitempty"`
}

func (ListeningQuestion) TableName() string {
	return "listening_questions"
}

// swagger:model ListeningSubQuestion
type ListeningSubQuestion struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Text       string `gorm:"type:text" json:"text"`

	ChoiceA string `gorm:"size:255" json:"choiceA,omitempty"`
	ChoiceB string `gorm:"size:255" json:"choiceB,omitempty"`
	ChoiceC string `gorm:"size:255" json:"choiceC,omitempty"`
	ChoiceD string `gorm:"size:255" json:"choiceD,omitempty"`
	ChoiceE string `gorm:"size:255" json:"choiceE,omitempty"`

	OptionsList string `gorm:"type:text" json:"optionsList,omitempty"`
	Title       string `gorm:"size:255" json:"title,omitempty"`

	CorrectAnswer string `gorm:"size:255;not null" json:"correctAnswer"`
}

func (ListeningSubQuestion) TableName() string {
	return "listening_sub_questions"
}
