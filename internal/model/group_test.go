package model

import (
	"reflect"
	"strings"
	"testing"
)

// The membership index must sit on the student alone, otherwise a student
// could be enrolled in two groups at once.
func TestGroupStudentMembershipUniquePerStudent(t *testing.T) {
	field, ok := reflect.TypeOf(GroupStudent{}).FieldByName("StudentID")
	if !ok {
		t.Fatal("GroupStudent has no StudentID field")
	}
	tag := field.Tag.Get("gorm")
	if !strings.Contains(tag, "uniqueIndex") {
		t.Errorf("StudentID gorm tag %q lacks a unique index", tag)
	}

	groupField, _ := reflect.TypeOf(GroupStudent{}).FieldByName("GroupID")
	if strings.Contains(groupField.Tag.Get("gorm"), "uniqueIndex") {
		t.Errorf("GroupID gorm tag %q must not share the unique index", groupField.Tag.Get("gorm"))
	}
}
