package repository

import (
	"ielts_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var g model.Group
	err := r.DB.Preload("Mentor").First(&g, id).Error
	return &g, err
}

func (r *GroupRepository) List(page, limit int) ([]model.Group, int64, error) {
	var groups []model.Group
	var total int64
	query := r.DB.Model(&model.Group{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Mentor").Order("created_at desc").Offset(offset).Limit(limit).Find(&groups).Error
	return groups, total, err
}

func (r *GroupRepository) ListByMentor(mentorID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Where("mentor_id = ?", mentorID).Order("created_at desc").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}

func (r *GroupRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Group{}, id).Error
}

// AddStudent enrolls a student, ignoring the insert when the membership row
// already exists.
func (r *GroupRepository) AddStudent(groupID, studentID uint) error {
	member := model.GroupStudent{GroupID: groupID, StudentID: studentID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error
}

func (r *GroupRepository) RemoveStudent(groupID, studentID uint) error {
	return r.DB.Where("group_id = ? AND student_id = ?", groupID, studentID).
		Delete(&model.GroupStudent{}).Error
}

func (r *GroupRepository) ListStudents(groupID uint) ([]model.GroupStudent, error) {
	var members []model.GroupStudent
	err := r.DB.Preload("Student").Where("group_id = ?", groupID).Find(&members).Error
	return members, err
}

// FindGroupByStudent returns the group a student is enrolled in, or nil.
func (r *GroupRepository) FindGroupByStudent(studentID uint) (*model.Group, error) {
	var member model.GroupStudent
	err := r.DB.Where("student_id = ?", studentID).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	var g model.Group
	if err := r.DB.First(&g, member.GroupID).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
