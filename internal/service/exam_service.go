package service

import (
	"context"
	"fmt"
	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/internal/util"
	"io"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
)

type ExamService struct {
	Repo    *repository.ExamRepository
	Storage *StorageService
}

func NewExamService(repo *repository.ExamRepository, storage *StorageService) *ExamService {
	return &ExamService{Repo: repo, Storage: storage}
}

// NormalizeQuestionRange clamps an inverted or open range. A missing end
// becomes the start; an end before the start is pulled up to the start, so a
// saved question always covers at least one number.
func NormalizeQuestionRange(start, end int) (int, int) {
	if start > 0 && end == 0 {
		return start, start
	}
	if start > 0 && end > 0 && start > end {
		return start, start
	}
	return start, end
}

// RequiredSubQuestionCount derives how many gradable subquestions a question
// block owns. Multi-answer MCQ blocks collect all selections under a single
// subquestion no matter how wide their number range is.
func RequiredSubQuestionCount(questionType model.QuestionType, start, end int) int {
	if start <= 0 || end <= 0 {
		return 0
	}
	if questionType == model.MCQMultipleAnswer {
		return 1
	}
	return end - start + 1
}

// SubQuestionReconciliation is the explicit plan for bringing a question's
// subquestions in line with its numbering: how many to create and which
// existing rows are surplus. Computing the plan is separated from applying
// it so the fan-out is testable without a database.
type SubQuestionReconciliation struct {
	ToCreate int
	ToDelete []uint
}

func ReconcileSubQuestions(required int, existingIDs []uint) SubQuestionReconciliation {
	var plan SubQuestionReconciliation
	if len(existingIDs) > required {
		plan.ToDelete = existingIDs[required:]
	} else {
		plan.ToCreate = required - len(existingIDs)
	}
	return plan
}

func (s *ExamService) CreateExam(exam *model.Exam) error {
	if !exam.SectionType.Valid() {
		return util.ErrWrongSectionType
	}
	return s.Repo.Create(exam)
}

func (s *ExamService) GetExam(id uint) (*model.Exam, error) {
	return s.Repo.FindByID(id)
}

func (s *ExamService) GetExamContent(id uint) (*model.Exam, error) {
	return s.Repo.FindWithContent(id)
}

func (s *ExamService) ListExams(sectionType model.SectionType, publishedOnly bool, page, limit int) ([]model.Exam, int64, error) {
	return s.Repo.List(sectionType, publishedOnly, page, limit)
}

func (s *ExamService) UpdateExam(exam *model.Exam) error {
	return s.Repo.Update(exam)
}

func (s *ExamService) DeleteExam(id uint) error {
	return s.Repo.Delete(id)
}

func (s *ExamService) AssignExam(examID uint, groupID *uint, allGroups bool) error {
	if _, err := s.Repo.FindByID(examID); err != nil {
		return util.ErrExamNotFound
	}
	return s.Repo.AssignToGroup(examID, groupID, allGroups)
}

func (s *ExamService) ListAssignedExams(groupID uint) ([]model.Exam, error) {
	return s.Repo.ListAssignedExams(groupID)
}

// SaveReadingQuestion persists the question block and then reconciles its
// subquestions against the (normalized) number range. Reconciliation runs
// here, in the editing workflow, never as a persistence hook.
func (s *ExamService) SaveReadingQuestion(q *model.ReadingQuestion) error {
	q.StartNumber, q.EndNumber = NormalizeQuestionRange(q.StartNumber, q.EndNumber)
	if err := s.Repo.SaveReadingQuestion(q); err != nil {
		return err
	}

	existing, err := s.Repo.ListReadingSubQuestions(q.ID)
	if err != nil {
		return err
	}
	ids := make([]uint, len(existing))
	for i, sub := range existing {
		ids[i] = sub.ID
	}

	required := RequiredSubQuestionCount(q.QuestionType, q.StartNumber, q.EndNumber)
	plan := ReconcileSubQuestions(required, ids)

	if err := s.Repo.DeleteReadingSubQuestions(plan.ToDelete); err != nil {
		return err
	}
	for i := 0; i < plan.ToCreate; i++ {
		sub := &model.ReadingSubQuestion{
			QuestionID: q.ID,
			Text:       fmt.Sprintf("Question %d", q.StartNumber+len(existing)+i),
		}
		if err := s.Repo.CreateReadingSubQuestion(sub); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExamService) SaveListeningQuestion(q *model.ListeningQuestion) error {
	q.StartNumber, q.EndNumber = NormalizeQuestionRange(q.StartNumber, q.EndNumber)
	if err := s.Repo.SaveListeningQuestion(q); err != nil {
		return err
	}

	existing, err := s.Repo.ListListeningSubQuestions(q.ID)
	if err != nil {
		return err
	}
	ids := make([]uint, len(existing))
	for i, sub := range existing {
		ids[i] = sub.ID
	}

	required := RequiredSubQuestionCount(q.QuestionType, q.StartNumber, q.EndNumber)
	plan := ReconcileSubQuestions(required, ids)

	if err := s.Repo.DeleteListeningSubQuestions(plan.ToDelete); err != nil {
		return err
	}
	for i := 0; i < plan.ToCreate; i++ {
		sub := &model.ListeningSubQuestion{
			QuestionID: q.ID,
			Text:       fmt.Sprintf("Question %d", q.StartNumber+len(existing)+i),
		}
		if err := s.Repo.CreateListeningSubQuestion(sub); err != nil {
			return err
		}
	}
	return nil
}

// DeleteReadingQuestion removes a question block and its subquestions.
func (s *ExamService) DeleteReadingQuestion(id uint) error {
	existing, err := s.Repo.ListReadingSubQuestions(id)
	if err != nil {
		return err
	}
	ids := make([]uint, len(existing))
	for i, sub := range existing {
		ids[i] = sub.ID
	}
	if err := s.Repo.DeleteReadingSubQuestions(ids); err != nil {
		return err
	}
	return s.Repo.DeleteReadingQuestion(id)
}

func (s *ExamService) DeleteListeningQuestion(id uint) error {
	existing, err := s.Repo.ListListeningSubQuestions(id)
	if err != nil {
		return err
	}
	ids := make([]uint, len(existing))
	for i, sub := range existing {
		ids[i] = sub.ID
	}
	if err := s.Repo.DeleteListeningSubQuestions(ids); err != nil {
		return err
	}
	return s.Repo.DeleteListeningQuestion(id)
}

func (s *ExamService) UpdateReadingSubQuestion(sub *model.ReadingSubQuestion) error {
	return s.Repo.UpdateReadingSubQuestion(sub)
}

func (s *ExamService) UpdateListeningSubQuestion(sub *model.ListeningSubQuestion) error {
	return s.Repo.UpdateListeningSubQuestion(sub)
}

func (s *ExamService) SavePassage(p *model.ReadingPassage) error {
	if p.ID == 0 {
		return s.Repo.CreatePassage(p)
	}
	return s.Repo.UpdatePassage(p)
}

func (s *ExamService) DeletePassage(id uint) error {
	return s.Repo.DeletePassage(id)
}

// SaveListeningAudio stores the uploaded recording, probes its duration and
// persists the audio row.
func (s *ExamService) SaveListeningAudio(ctx context.Context, a *model.ListeningAudio, file io.Reader, size int64, ext string) error {
	if file != nil {
		objectName := filepath.Join("listening", uuid.New().String()+ext)

		tmp, err := writeTemp("listening-*"+ext, file)
		if err != nil {
			return err
		}
		defer removeTemp(tmp)

		url, err := s.Storage.UploadFile(ctx, objectName, tmp, "audio/mpeg")
		if err != nil {
			return err
		}
		a.AudioFile = url
		a.Duration = util.ProbeAudioDuration(tmp)
	}

	if a.ID == 0 {
		return s.Repo.CreateAudio(a)
	}
	return s.Repo.UpdateAudio(a)
}

func (s *ExamService) DeleteListeningAudio(id uint) error {
	return s.Repo.DeleteAudio(id)
}

// SaveWritingTask optionally attaches an uploaded chart/diagram image.
func (s *ExamService) SaveWritingTask(ctx context.Context, t *model.WritingTask, image io.Reader, size int64, ext string) error {
	if image != nil {
		objectName := filepath.Join("writing_images", uuid.New().String()+ext)
		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		url, err := s.Storage.Upload(ctx, objectName, image, size, contentType)
		if err != nil {
			return err
		}
		t.Image = url
	}
	return s.Repo.SaveWritingTask(t)
}

func (s *ExamService) DeleteWritingTask(id uint) error {
	return s.Repo.DeleteWritingTask(id)
}

func (s *ExamService) SaveSpeakingPart(p *model.SpeakingPart) error {
	return s.Repo.SaveSpeakingPart(p)
}

func (s *ExamService) DeleteSpeakingPart(id uint) error {
	return s.Repo.DeleteSpeakingPart(id)
}
