package service

import (
	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.Repo.FindByID(id)
}

func (s *UserService) ListUsers(role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.Repo.List(role, page, limit)
}

func (s *UserService) SetDisabled(id uint, disabled bool) error {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	user.Disabled = disabled
	return s.Repo.Update(user)
}

func (s *UserService) SetRole(id uint, role model.UserRole) error {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	user.Role = role
	return s.Repo.Update(user)
}

func (s *UserService) DeleteUser(id uint) error {
	return s.Repo.Delete(id)
}
