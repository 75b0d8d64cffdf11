package util

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailRegistered         = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrPermissionDenied        = errors.New("permission denied")
	ErrExamNotFound            = errors.New("exam not found")
	ErrExamNotPublished        = errors.New("exam not published or not accessible")
	ErrAttemptNotFound         = errors.New("attempt not found")
	ErrAttemptAlreadySubmitted = errors.New("attempt already submitted")
	ErrAttemptNotReviewable    = errors.New("attempt does not require review")
	ErrGroupNotFound           = errors.New("group not found")
	ErrStudentAlreadyEnrolled  = errors.New("student already belongs to a group")
	ErrWrongSectionType        = errors.New("operation does not apply to this section type")
)
