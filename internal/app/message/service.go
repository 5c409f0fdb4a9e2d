package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"threadboard/internal/apperrors"
	"threadboard/internal/utils"
)

// ThreadCache is the slice of the thread service a message mutation needs:
// message counts feed the cached thread summaries, so every create/delete
// has to drop that cache.
type ThreadCache interface {
	InvalidateListCache()
}

type Service interface {
	CreateMessage(ctx context.Context, threadID uint64, parentID *uint64, writerName, content string) (*Message, error)
	GetMessageByID(ctx context.Context, id uint64) (*Message, error)
	DeleteMessage(ctx context.Context, id uint64) error
}

type service struct {
	repo        Repository
	threadCache ThreadCache
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
}

func NewService(
	repo Repository,
	threadCache ThreadCache,
	eventBus *utils.EventBus,
	logger *zap.Logger,
) Service {
	return &service{
		repo:        repo,
		threadCache: threadCache,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
	}
}

func (s *service) CreateMessage(
	ctx context.Context,
	threadID uint64,
	parentID *uint64,
	writerName, content string,
) (*Message, error) {
	if threadID == 0 {
		return nil, fmt.Errorf("%w: thread_id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(writerName) == "" {
		return nil, fmt.Errorf("%w: writer_name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}

	exists, err := s.repo.ThreadExists(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: thread %d", apperrors.ErrNotFound, threadID)
	}

	if parentID != nil {
		parent, err := s.repo.GetMessageByID(*parentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: parent message %d", apperrors.ErrNotFound, *parentID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check parent message: %w", err)
		}
		// A reply tree never spans threads. Trusting the bare FK here would
		// let a thread delete orphan subtrees in other threads.
		if parent.ThreadID != threadID {
			return nil, fmt.Errorf("%w: parent message belongs to thread %d, not %d",
				apperrors.ErrValidation, parent.ThreadID, threadID)
		}
	}

	message, err := s.repo.CreateMessage(threadID, parentID, writerName, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if s.threadCache != nil {
		s.threadCache.InvalidateListCache()
	}

	s.eventBus.Publish("message_created", map[string]interface{}{
		"message_id": message.ID,
		"thread_id":  message.ThreadID,
		"parent_id":  message.ParentID,
	})

	return message, nil
}

func (s *service) GetMessageByID(ctx context.Context, id uint64) (*Message, error) {
	message, err := s.repo.GetMessageByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: message %d", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return message, nil
}

// DeleteMessage removes a message and, through the storage engine's cascading
// foreign key, every descendant reply. Deleting an id that no longer exists is
// a documented success, not an error.
func (s *service) DeleteMessage(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteMessage(id); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	if s.threadCache != nil {
		s.threadCache.InvalidateListCache()
	}

	s.eventBus.Publish("message_deleted", map[string]interface{}{
		"message_id": id,
	})

	return nil
}
