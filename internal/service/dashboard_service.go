package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"ielts_edu_backend/internal/model"
	"ielts_edu_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const studentStatsTTL = time.Minute

type DashboardService struct {
	AttemptRepo *repository.AttemptRepository
	Redis       *redis.Client
}

func NewDashboardService(attemptRepo *repository.AttemptRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{AttemptRepo: attemptRepo, Redis: rdb}
}

type SectionProgress struct {
	Section      model.SectionType `json:"section"`
	Total        int               `json:"total"`
	Completed    int               `json:"completed"`
	Percentage   int               `json:"percentage"`
	AverageScore float64           `json:"averageScore"`
}

type StudentStats struct {
	TotalAttempts     int               `json:"totalAttempts"`
	CompletedAttempts int               `json:"completedAttempts"`
	AverageScore      float64           `json:"averageScore"`
	SuccessRate       int               `json:"successRate"`
	Sections          []SectionProgress `json:"sections"`
	Attempts          []model.Attempt   `json:"attempts"`
}

// StudentStats aggregates one student's attempt history. Results are cached
// briefly in Redis; a stale minute on a dashboard is acceptable.
func (s *DashboardService) StudentStats(ctx context.Context, studentID uint) (*StudentStats, error) {
	cacheKey := cacheKeyStudentStats(studentID)
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached StudentStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	attempts, err := s.AttemptRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	stats := computeStudentStats(attempts)

	if s.Redis != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, cacheKey, raw, studentStatsTTL)
		}
	}
	return stats, nil
}

// InvalidateStudentStats drops the cached dashboard after a submission so
// the student sees the new attempt immediately.
func (s *DashboardService) InvalidateStudentStats(ctx context.Context, studentID uint) {
	if s.Redis != nil {
		s.Redis.Del(ctx, cacheKeyStudentStats(studentID))
	}
}

func cacheKeyStudentStats(studentID uint) string {
	return "dashboard:student_stats:" + strconv.FormatUint(uint64(studentID), 10)
}

func computeStudentStats(attempts []model.Attempt) *StudentStats {
	stats := &StudentStats{Attempts: attempts}
	stats.TotalAttempts = len(attempts)

	var scoreSum float64
	var scored int
	scoredPerSection := map[model.SectionType]int{}
	perSection := map[model.SectionType]*SectionProgress{}
	for _, section := range []model.SectionType{
		model.SectionReading, model.SectionListening, model.SectionWriting, model.SectionSpeaking,
	} {
		perSection[section] = &SectionProgress{Section: section}
	}

	for _, attempt := range attempts {
		var section model.SectionType
		if attempt.Exam != nil {
			section = attempt.Exam.SectionType
		}
		progress := perSection[section]

		if progress != nil {
			progress.Total++
		}
		if attempt.Status == model.AttemptCompleted {
			stats.CompletedAttempts++
			if progress != nil {
				progress.Completed++
			}
			if attempt.TotalScore != nil {
				scoreSum += *attempt.TotalScore
				scored++
				if progress != nil {
					progress.AverageScore += *attempt.TotalScore
					scoredPerSection[section]++
				}
			}
		}
	}

	if scored > 0 {
		stats.AverageScore = math.Round(scoreSum/float64(scored)*10) / 10
	}
	if stats.TotalAttempts > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.CompletedAttempts) / float64(stats.TotalAttempts) * 100))
	}

	for _, section := range []model.SectionType{
		model.SectionReading, model.SectionListening, model.SectionWriting, model.SectionSpeaking,
	} {
		progress := perSection[section]
		// Completed rows can carry a null total score, so the average
		// divides by the scored count, not the completed count.
		if n := scoredPerSection[section]; n > 0 {
			progress.AverageScore = math.Round(progress.AverageScore/float64(n)*10) / 10
		}
		if progress.Total > 0 {
			progress.Percentage = int(math.Round(float64(progress.Completed) / float64(progress.Total) * 100))
		}
		stats.Sections = append(stats.Sections, *progress)
	}

	return stats
}

// GroupAverages is the admin statistics view: average completed score per
// group.
func (s *DashboardService) GroupAverages() ([]repository.GroupAverageRow, error) {
	return s.AttemptRepo.GroupAverages()
}
