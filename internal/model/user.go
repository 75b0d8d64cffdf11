package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Mentor  UserRole = "mentor"
	Admin   UserRole = "admin"
)

// Capability is an action a role may perform. Services check capabilities
// instead of comparing role strings at every call site.
type Capability string

const (
	CapSubmitAttempt Capability = "attempt:submit"
	CapReviewAttempt Capability = "attempt:review"
	CapManageContent Capability = "content:manage"
	CapManageUsers   Capability = "users:manage"
	CapViewOwnStats  Capability = "stats:own"
)

var roleCapabilities = map[UserRole]map[Capability]bool{
	Student: {
		CapSubmitAttempt: true,
		CapViewOwnStats:  true,
	},
	Mentor: {
		CapReviewAttempt: true,
		CapViewOwnStats:  true,
	},
	Admin: {
		CapReviewAttempt: true,
		CapManageContent: true,
		CapManageUsers:   true,
	},
}

func (r UserRole) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('student','mentor','admin');default:'student'" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
