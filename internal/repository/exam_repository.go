package repository

import (
	"ielts_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

// FindWithContent loads the exam plus its full section content tree in
// display order. Scoring depends on this ordering being deterministic.
func (r *ExamRepository) FindWithContent(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.
		Preload("ReadingPassages", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Preload("ReadingPassages.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_number asc, id asc")
		}).
		Preload("ReadingPassages.Questions.SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("ListeningAudios", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Preload("ListeningAudios.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_number asc, id asc")
		}).
		Preload("ListeningAudios.Questions.SubQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("WritingTasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_type asc, id asc")
		}).
		Preload("SpeakingParts", func(db *gorm.DB) *gorm.DB {
			return db.Order("part_type asc, id asc")
		}).
		Preload("SpeakingParts.SubQuestions").
		First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) List(sectionType model.SectionType, publishedOnly bool, page, limit int) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64
	query := r.DB.Model(&model.Exam{})
	if sectionType != "" {
		query = query.Where("section_type = ?", sectionType)
	}
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

func (r *ExamRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Exam{}, id).Error
}

// Assignments

func (r *ExamRepository) AssignToGroup(examID uint, groupID *uint, allGroups bool) error {
	assignment := model.ExamAssignment{ExamID: examID, GroupID: groupID, AllGroups: allGroups}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error
}

func (r *ExamRepository) ListAssignedExams(groupID uint) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.
		Joins("JOIN exam_assignments ON exam_assignments.exam_id = exams.id").
		Where("exams.is_published = ? AND (exam_assignments.group_id = ? OR exam_assignments.all_groups = ?)", true, groupID, true).
		Where("exam_assignments.deleted_at IS NULL").
		Order("exams.created_at desc").
		Find(&exams).Error
	return exams, err
}

// Reading content

func (r *ExamRepository) CreatePassage(p *model.ReadingPassage) error {
	return r.DB.Create(p).Error
}

func (r *ExamRepository) UpdatePassage(p *model.ReadingPassage) error {
	return r.DB.Save(p).Error
}

func (r *ExamRepository) DeletePassage(id uint) error {
	return r.DB.Delete(&model.ReadingPassage{}, id).Error
}

func (r *ExamRepository) SaveReadingQuestion(q *model.ReadingQuestion) error {
	return r.DB.Save(q).Error
}

func (r *ExamRepository) DeleteReadingQuestion(id uint) error {
	return r.DB.Delete(&model.ReadingQuestion{}, id).Error
}

func (r *ExamRepository) ListReadingSubQuestions(questionID uint) ([]model.ReadingSubQuestion, error) {
	var subs []model.ReadingSubQuestion
	err := r.DB.Where("question_id = ?", questionID).Order("id asc").Find(&subs).Error
	return subs, err
}

func (r *ExamRepository) CreateReadingSubQuestion(sub *model.ReadingSubQuestion) error {
	return r.DB.Create(sub).Error
}

func (r *ExamRepository) UpdateReadingSubQuestion(sub *model.ReadingSubQuestion) error {
	return r.DB.Save(sub).Error
}

func (r *ExamRepository) DeleteReadingSubQuestions(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Delete(&model.ReadingSubQuestion{}, ids).Error
}

// Listening content

func (r *ExamRepository) CreateAudio(a *model.ListeningAudio) error {
	return r.DB.Create(a).Error
}

func (r *ExamRepository) UpdateAudio(a *model.ListeningAudio) error {
	return r.DB.Save(a).Error
}

func (r *ExamRepository) DeleteAudio(id uint) error {
	return r.DB.Delete(&model.ListeningAudio{}, id).Error
}

func (r *ExamRepository) SaveListeningQuestion(q *model.ListeningQuestion) error {
	return r.DB.Save(q).Error
}

func (r *ExamRepository) DeleteListeningQuestion(id uint) error {
	return r.DB.Delete(&model.ListeningQuestion{}, id).Error
}

func (r *ExamRepository) ListListeningSubQuestions(questionID uint) ([]model.ListeningSubQuestion, error) {
	var subs []model.ListeningSubQuestion
	err := r.DB.Where("question_id = ?", questionID).Order("id asc").Find(&subs).Error
	return subs, err
}

func (r *ExamRepository) CreateListeningSubQuestion(sub *model.ListeningSubQuestion) error {
	return r.DB.Create(sub).Error
}

func (r *ExamRepository) UpdateListeningSubQuestion(sub *model.ListeningSubQuestion) error {
	return r.DB.Save(sub).Error
}

func (r *ExamRepository) DeleteListeningSubQuestions(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Delete(&model.ListeningSubQuestion{}, ids).Error
}

// Writing / speaking content

func (r *ExamRepository) SaveWritingTask(t *model.WritingTask) error {
	return r.DB.Save(t).Error
}

func (r *ExamRepository) DeleteWritingTask(id uint) error {
	return r.DB.Delete(&model.WritingTask{}, id).Error
}

func (r *ExamRepository) SaveSpeakingPart(p *model.SpeakingPart) error {
	return r.DB.Save(p).Error
}

func (r *ExamRepository) DeleteSpeakingPart(id uint) error {
	return r.DB.Delete(&model.SpeakingPart{}, id).Error
}
