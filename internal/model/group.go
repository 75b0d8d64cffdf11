package model

// swagger:model Group
type Group struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name"`
	MentorID uint   `gorm:"index;type:bigint unsigned" json:"mentorId"`
	Mentor   *User  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupStudent links one student to one group. The unique index sits on the
// student alone: membership in two groups at once is not allowed.
type GroupStudent struct {
	BaseModel
	GroupID   uint  `gorm:"index;type:bigint unsigned" json:"groupId"`
	StudentID uint  `gorm:"uniqueIndex:uniq_student_membership;type:bigint unsigned" json:"studentId"`
	Student   *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (GroupStudent) TableName() string {
	return "group_students"
}
