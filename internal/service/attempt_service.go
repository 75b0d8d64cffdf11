package service

import (
	"context"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"
	"ielts_edu_backend/internal/scoring"
	"ielts_edu_backend/internal/util"
	"ielts_edu_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttemptService struct {
	Repo      *repository.AttemptRepository
	ExamRepo  *repository.ExamRepository
	GroupRepo *repository.GroupRepository
	Storage   *StorageService
}

func NewAttemptService(repo *repository.AttemptRepository, examRepo *repository.ExamRepository, groupRepo *repository.GroupRepository, storage *StorageService) *AttemptService {
	return &AttemptService{
		Repo:      repo,
		ExamRepo:  examRepo,
		GroupRepo: groupRepo,
		Storage:   storage,
	}
}

// AudioUpload is one speaking recording extracted from the submission form.
type AudioUpload struct {
	PartID int
	Header *multipart.FileHeader
}

// DecodeAnswerForm turns raw form fields into a typed answer set, once, at
// the submission boundary. Only q_ (objective), task_ (writing) and part_
// (speaking) fields are answers; the "[]" suffix some clients append to
// multi-valued fields is stripped before the prefix check. Fields whose id
// segment does not parse are ignored.
func DecodeAnswerForm(values url.Values) model.AnswerSet {
	set := model.AnswerSet{
		Objective: make(map[uint]model.AnswerValue),
		Writing:   make(map[uint]string),
		Speaking:  make(map[uint]string),
	}

	for key, vals := range values {
		name := strings.TrimSuffix(key, "[]")
		if len(vals) == 0 {
			continue
		}

		switch {
		case strings.HasPrefix(name, "q_"):
			id, err := strconv.ParseUint(strings.TrimPrefix(name, "q_"), 10, 32)
			if err != nil {
				continue
			}
			set.Objective[uint(id)] = model.AnswerValue(vals)
		case strings.HasPrefix(name, "task_"):
			id, err := strconv.ParseUint(strings.TrimPrefix(name, "task_"), 10, 32)
			if err != nil {
				continue
			}
			set.Writing[uint(id)] = vals[0]
		case strings.HasPrefix(name, "part_"):
			id, err := strconv.ParseUint(strings.TrimPrefix(name, "part_"), 10, 32)
			if err != nil {
				continue
			}
			set.Speaking[uint(id)] = vals[0]
		}
	}

	return set
}

// ParseAudioField extracts the speaking part id from an upload field name of
// the form "part_<id>_audio": the id is the second-to-last underscore token.
// Anything else reports false and the upload is skipped.
func ParseAudioField(field string) (int, bool) {
	if !strings.HasSuffix(field, "_audio") {
		return 0, false
	}
	tokens := strings.Split(field, "_")
	if len(tokens) < 2 {
		return 0, false
	}
	partID, err := strconv.Atoi(tokens[len(tokens)-2])
	if err != nil {
		return 0, false
	}
	return partID, true
}

// CollectAudioUploads filters a multipart form's files down to speaking
// recordings. Malformed field names are skipped silently: losing one
// recording must not fail the rest of the submission.
func CollectAudioUploads(files map[string][]*multipart.FileHeader) []AudioUpload {
	var uploads []AudioUpload
	for field, headers := range files {
		partID, ok := ParseAudioField(field)
		if !ok || len(headers) == 0 {
			continue
		}
		uploads = append(uploads, AudioUpload{PartID: partID, Header: headers[0]})
	}
	return uploads
}

// CanSubmit is the duplicate-submission guard: only a fresh attempt or one
// still in progress may be (re)submitted. Submitted and completed attempts
// reject further submissions, they never silently overwrite.
func CanSubmit(status model.AttemptStatus) bool {
	return status == model.AttemptInProgress
}

// Submit is the student-facing half of the attempt lifecycle. It creates or
// adopts the attempt row, persists the decoded answers and any speaking
// recordings, and either auto-grades (reading/listening) straight to
// completed or parks the attempt as submitted for mentor review.
func (s *AttemptService) Submit(ctx context.Context, studentID uint, role model.UserRole, examID uint, answers model.AnswerSet, uploads []AudioUpload) (*model.Attempt, error) {
	if !role.Can(model.CapSubmitAttempt) {
		return nil, util.ErrPermissionDenied
	}

	exam, err := s.ExamRepo.FindWithContent(examID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	var groupID *uint
	if group, err := s.GroupRepo.FindGroupByStudent(studentID); err == nil && group != nil {
		groupID = &group.ID
	}

	now := time.Now()
	attempt := &model.Attempt{
		ExamID:      examID,
		StudentID:   studentID,
		GroupID:     groupID,
		Status:      model.AttemptSubmitted,
		SubmittedAt: &now,
	}

	created, err := s.Repo.GetOrCreate(attempt)
	if err != nil {
		return nil, err
	}
	if !created && !CanSubmit(attempt.Status) {
		return nil, util.ErrAttemptAlreadySubmitted
	}

	attempt.Answers = answers.Encode()

	for _, upload := range uploads {
		if err := s.storeAudio(ctx, attempt.ID, upload); err != nil {
			logger.Log.Warn("failed to store speaking audio",
				zap.Uint("attemptId", attempt.ID),
				zap.Int("partId", upload.PartID),
				zap.Error(err))
		}
	}

	attempt.Status = model.AttemptSubmitted
	attempt.SubmittedAt = &now

	if exam.SectionType.IsObjective() {
		result := scoring.Score(exam, answers.Objective)

		if exam.SectionType == model.SectionReading {
			attempt.ReadingScore = &result.Band
		} else {
			attempt.ListeningScore = &result.Band
		}
		attempt.TotalScore = &result.Band
		attempt.CorrectCount = &result.Correct
		attempt.IncorrectCount = &result.Incorrect
		attempt.Status = model.AttemptCompleted
		attempt.CompletedAt = &now
	}

	if err := s.Repo.Update(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) storeAudio(ctx context.Context, attemptID uint, upload AudioUpload) error {
	src, err := upload.Header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	ext := filepath.Ext(upload.Header.Filename)
	if ext == "" {
		ext = ".webm"
	}
	objectName := filepath.Join("speaking_audios", uuid.New().String()+ext)

	tmp, err := writeTemp("speaking-*"+ext, src)
	if err != nil {
		return err
	}
	defer removeTemp(tmp)

	url, err := s.Storage.UploadFile(ctx, objectName, tmp, contentTypeForAudio(ext))
	if err != nil {
		return err
	}

	audio := &model.AttemptAudio{
		AttemptID: attemptID,
		PartID:    upload.PartID,
		AudioFile: url,
		Duration:  util.ProbeAudioDuration(tmp),
	}
	return s.Repo.UpsertAudio(audio)
}

func contentTypeForAudio(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	default:
		return "audio/webm"
	}
}

// AttemptDetail is an attempt joined with its decoded answers and recordings.
type AttemptDetail struct {
	Attempt *model.Attempt       `json:"attempt"`
	Answers model.AnswerSet      `json:"answers"`
	Audios  []model.AttemptAudio `json:"audios,omitempty"`
	Review  *model.Review        `json:"review,omitempty"`
}

func (s *AttemptService) GetAttempt(attemptID uint) (*model.Attempt, error) {
	attempt, err := s.Repo.FindByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) GetAttemptDetail(attemptID uint) (*AttemptDetail, error) {
	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	detail := &AttemptDetail{
		Attempt: attempt,
		Answers: model.DecodeAnswerSet(attempt.Answers),
	}

	if attempt.Exam != nil && attempt.Exam.SectionType == model.SectionSpeaking {
		audios, err := s.Repo.ListAudios(attempt.ID)
		if err != nil {
			return nil, err
		}
		detail.Audios = audios
	}

	return detail, nil
}

func (s *AttemptService) ListByStudent(studentID uint) ([]model.Attempt, error) {
	return s.Repo.ListByStudent(studentID)
}

// FindForExam returns the student's attempt at one exam, or nil when the
// exam has not been attempted yet.
func (s *AttemptService) FindForExam(examID, studentID uint) (*model.Attempt, error) {
	attempt, err := s.Repo.FindByExamAndStudent(examID, studentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return attempt, nil
}
