package model

type WritingTaskType string

const (
	WritingTask1 WritingTaskType = "task1"
	WritingTask2 WritingTaskType = "task2"
)

// swagger:model WritingTask
type WritingTask struct {
	BaseModel
	ExamID      uint            `gorm:"index;type:bigint unsigned" json:"examId"`
	TaskType    WritingTaskType `gorm:"size:20;default:'task1'" json:"taskType"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Image       string          `gorm:"size:512" json:"image,omitempty"`
	MinWords    int             `gorm:"default:150" json:"minWords"`
	TimeLimit   int             `gorm:"default:20" json:"timeLimit"` // minutes
}

func (WritingTask) TableName() string {
	return "writing_tasks"
}
