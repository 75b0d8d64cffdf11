package service

import (
	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/internal/util"

	"gorm.io/gorm"
)

type GroupService struct {
	Repo     *repository.GroupRepository
	UserRepo *repository.UserRepository
}

func NewGroupService(repo *repository.GroupRepository, userRepo *repository.UserRepository) *GroupService {
	return &GroupService{Repo: repo, UserRepo: userRepo}
}

func (s *GroupService) CreateGroup(group *model.Group) error {
	mentor, err := s.UserRepo.FindByID(group.MentorID)
	if err != nil || mentor.Role != model.Mentor {
		return util.ErrUserNotFound
	}
	return s.Repo.Create(group)
}

func (s *GroupService) GetGroup(id uint) (*model.Group, error) {
	group, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(page, limit int) ([]model.Group, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *GroupService) UpdateGroup(group *model.Group) error {
	return s.Repo.Update(group)
}

func (s *GroupService) DeleteGroup(id uint) error {
	return s.Repo.Delete(id)
}

// CanEnroll checks the one-group-per-student rule. Re-adding a student to
// the group they are already in is allowed so the operation stays idempotent.
func CanEnroll(current *model.Group, groupID uint) error {
	if current != nil && current.ID != groupID {
		return util.ErrStudentAlreadyEnrolled
	}
	return nil
}

// AddStudent enrolls a student. A student sits in one group at a time;
// moving them requires removing the old membership first.
func (s *GroupService) AddStudent(groupID, studentID uint) error {
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil || student.Role != model.Student {
		return util.ErrUserNotFound
	}
	if _, err := s.Repo.FindByID(groupID); err != nil {
		return util.ErrGroupNotFound
	}
	current, err := s.Repo.FindGroupByStudent(studentID)
	if err != nil {
		return err
	}
	if err := CanEnroll(current, groupID); err != nil {
		return err
	}
	return s.Repo.AddStudent(groupID, studentID)
}

func (s *GroupService) RemoveStudent(groupID, studentID uint) error {
	return s.Repo.RemoveStudent(groupID, studentID)
}

func (s *GroupService) ListStudents(groupID uint) ([]model.GroupStudent, error) {
	return s.Repo.ListStudents(groupID)
}

func (s *GroupService) StudentGroup(studentID uint) (*model.Group, error) {
	return s.Repo.FindGroupByStudent(studentID)
}

func (s *GroupService) MentorGroups(mentorID uint) ([]model.Group, error) {
	return s.Repo.ListByMentor(mentorID)
}
