package service

import (
	"context"
	"time"

	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/specification"
	"ai-mindsupport-be/internal/repository/unitofwork"
	"ai-mindsupport-be/pkg/mood"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// StatsWindow is how many of the newest entries feed aggregation.
const StatsWindow = 30

const statsCacheTTL = 60 * time.Second

type IMoodService interface {
	LogMood(ctx context.Context, userId uuid.UUID, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.MoodEntryResponse, error)
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.MoodStatsResponse, error)
}

type moodService struct {
	uowFactory unitofwork.RepositoryFactory
	statsCache *gocache.Cache
}

func NewMoodService(uowFactory unitofwork.RepositoryFactory) IMoodService {
	return &moodService{
		uowFactory: uowFactory,
		statsCache: gocache.New(statsCacheTTL, 5*time.Minute),
	}
}

func statsCacheKey(userId uuid.UUID) string {
	return "mood_stats:" + userId.String()
}

func (s *moodService) LogMood(ctx context.Context, userId uuid.UUID, req *dto.LogMoodRequest) (*dto.MoodEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Intensity is stored exactly as supplied. The 1-10 scale is a client
	// convention, not a storage constraint.
	entry := entity.MoodEntry{
		Id:        uuid.New(),
		UserId:    userId,
		Mood:      req.Mood,
		Intensity: req.Intensity,
		Notes:     req.Notes,
		Triggers:  req.Triggers,
		CreatedAt: time.Now(),
	}

	if err := uow.MoodEntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	// New entry invalidates the cached summary.
	s.statsCache.Delete(statsCacheKey(userId))

	return &dto.MoodEntryResponse{
		Id:        entry.Id,
		Mood:      entry.Mood,
		Intensity: entry.Intensity,
		Notes:     entry.Notes,
		Triggers:  entry.Triggers,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (s *moodService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.MoodEntryResponse, error) {
	entries, err := s.loadRecent(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, &dto.MoodEntryResponse{
			Id:        entry.Id,
			Mood:      entry.Mood,
			Intensity: entry.Intensity,
			Notes:     entry.Notes,
			Triggers:  entry.Triggers,
			CreatedAt: entry.CreatedAt,
		})
	}

	return result, nil
}

// GetStats returns nil with no error when the user has no entries yet.
func (s *moodService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.MoodStatsResponse, error) {
	key := statsCacheKey(userId)
	if cached, found := s.statsCache.Get(key); found {
		return cached.(*mood.Summary), nil
	}

	entries, err := s.loadRecent(ctx, userId)
	if err != nil {
		return nil, err
	}

	summary := mood.Summarize(entries)
	s.statsCache.Set(key, summary, gocache.DefaultExpiration)

	return summary, nil
}

func (s *moodService) loadRecent(ctx context.Context, userId uuid.UUID) ([]*entity.MoodEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	return uow.MoodEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Take{Limit: StatsWindow},
	)
}
