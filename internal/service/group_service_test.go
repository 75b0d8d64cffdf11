package service

import (
	"testing"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/util"
)

func TestCanEnroll(t *testing.T) {
	inGroup := func(id uint) *model.Group {
		g := &model.Group{Name: "morning cohort"}
		g.ID = id
		return g
	}

	tests := []struct {
		name    string
		current *model.Group
		groupID uint
		wantErr error
	}{
		{"no membership yet", nil, 3, nil},
		{"re-adding to same group", inGroup(3), 3, nil},
		{"already in another group", inGroup(2), 3, util.ErrStudentAlreadyEnrolled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanEnroll(tt.current, tt.groupID); err != tt.wantErr {
				t.Errorf("CanEnroll() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
