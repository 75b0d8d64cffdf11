package model

// swagger:model ReadingPassage
type ReadingPassage struct {
	BaseModel
	ExamID   uint   `gorm:"index;type:bigint unsigned" json:"examId"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Subtitle string `gorm:"type:text" json:"subtitle"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Time     int    `gorm:"default:20" json:"time"` // minutes
	Order    int    `gorm:"column:display_order;default:0" json:"order"`

	Questions []ReadingQuestion `gorm:"foreignKey:PassageID" json:"questions,omitempty"`
}

func (ReadingPassage) TableName() string {
	return "reading_passages"
}

// swagger:model ReadingQuestion
type ReadingQuestion struct {
	BaseModel
	PassageID    uint         `gorm:"index;type:bigint unsigned" json:"passageId"`
	QuestionType QuestionType `gorm:"size:50;default:'mcq'" json:"questionType"`
	StartNumber  int          `json:"startNumber"`
	EndNumber    int          `json:"endNumber"`
	Instruction  string       `gorm:"type:text" json:"instruction"`

	SubQuestions []ReadingSubQuestion `gorm:"foreignKey:QuestionID" json:"subQuestions,omitempty"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}

// swagger:model ReadingSubQuestion
type ReadingSubQuestion struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Text       string `gorm:"type:text" json:"text"`

	ChoiceA string `gorm:"size:255" json:"choiceA,omitempty"`
	ChoiceB string `gorm:"size:255" json:"choiceB,omitempty"`
	ChoiceC string `gorm:"size:255" json:"choiceC,omitempty"`
	ChoiceD string `gorm:"size:255" json:"choiceD,omitempty"`
	ChoiceE string `gorm:"size:255" json:"choiceE,omitempty"`

	// For matching questions, one option per line.
	OptionsList string `gorm:"type:text" json:"optionsList,omitempty"`
	// For fill-in-the-blank and one-word answers.
	Title string `gorm:"size:255" json:"title,omitempty"`

	CorrectAnswer string `gorm:"size:255;not null" json:"correctAnswer"`
}

func (ReadingSubQuestion) TableName() string {
	return "reading_sub_questions"
}
