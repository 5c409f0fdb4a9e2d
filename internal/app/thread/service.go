package thread

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"threadboard/internal/apperrors"
	"threadboard/internal/app/message"
	"threadboard/internal/providers/redis"
	"threadboard/internal/utils"
)

const maxTitleLength = 200

type Service interface {
	ListThreads(ctx context.Context) ([]*ThreadSummary, error)
	CreateThread(ctx context.Context, title string) (*Thread, error)
	GetThreadWithMessages(ctx context.Context, threadID uint64) (*ThreadWithMessages, error)
	DeleteThread(ctx context.Context, threadID uint64) error
	InvalidateListCache()
}

type service struct {
	repo     Repository
	messages message.Repository
	redisP   *redis.RedisProvider
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
	cacheKey string
}

func NewService(
	repo Repository,
	messages message.Repository,
	redisP *redis.RedisProvider,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		messages: messages,
		redisP:   redisP,
		eventBus: eventBus,
		logger:   logger.Sugar(),
		cacheKey: "threads:list",
	}
}

func (s *service) ListThreads(ctx context.Context) ([]*ThreadSummary, error) {
	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, s.cacheKey).Result()
		if err == nil && cached != "" {
			var summaries []*ThreadSummary
			if json.Unmarshal([]byte(cached), &summaries) == nil {
				return summaries, nil
			}
		}
	}

	summaries, err := s.repo.ListThreads()
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	if s.redisP != nil && len(summaries) > 0 {
		data, err := json.Marshal(summaries)
		if err == nil {
			s.redisP.SetEX(ctx, s.cacheKey, data, 5*time.Minute)
		}
	}
	return summaries, nil
}

func (s *service) CreateThread(ctx context.Context, title string) (*Thread, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", apperrors.ErrValidation, maxTitleLength)
	}

	thread, err := s.repo.CreateThread(title)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	s.InvalidateListCache()

	s.eventBus.Publish("thread_created", map[string]interface{}{
		"thread_id": thread.ID,
		"title":     thread.Title,
	})

	return thread, nil
}

func (s *service) GetThreadWithMessages(ctx context.Context, threadID uint64) (*ThreadWithMessages, error) {
	thread, err := s.repo.GetThreadByID(threadID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: thread %d", apperrors.ErrNotFound, threadID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	messages, err := s.messages.GetMessagesByThreadID(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread messages: %w", err)
	}
	if messages == nil {
		messages = []*message.Message{}
	}

	return &ThreadWithMessages{
		ID:        thread.ID,
		Title:     thread.Title,
		CreatedAt: thread.CreatedAt,
		Messages:  messages,
	}, nil
}

// DeleteThread drops the thread and every message in it through the cascading
// foreign key. Deleting a thread that does not exist is a success.
func (s *service) DeleteThread(ctx context.Context, threadID uint64) error {
	if err := s.repo.DeleteThread(threadID); err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}

	s.InvalidateListCache()

	s.eventBus.Publish("thread_deleted", map[string]interface{}{
		"thread_id": threadID,
	})

	return nil
}

func (s *service) InvalidateListCache() {
	if s.redisP == nil {
		return
	}
	if err := s.redisP.Del(context.Background(), s.cacheKey).Err(); err != nil {
		s.logger.Warnw("Failed to invalidate thread list cache", "error", err)
	}
}
