package layout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"threadboard/internal/utils"
)

type Service interface {
	UpdateThreadLayouts(ctx context.Context, threadID uint64, layouts map[uint64]string) error
	ClearThreadLayouts(ctx context.Context, threadID uint64) error
	UpdateMessageLayout(ctx context.Context, messageID uint64, layoutData *string) error
}

type service struct {
	repo     Repository
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func (s *service) UpdateThreadLayouts(ctx context.Context, threadID uint64, layouts map[uint64]string) error {
	if len(layouts) == 0 {
		return nil
	}

	updated, err := s.repo.UpdateThreadLayouts(threadID, layouts)
	if err != nil {
		return fmt.Errorf("failed to update thread layouts: %w", err)
	}

	if skipped := int64(len(layouts)) - updated; skipped > 0 {
		s.logger.Debugw("Skipped layout entries outside thread",
			"thread_id", threadID,
			"skipped", skipped,
		)
	}

	s.eventBus.Publish("thread_layouts_updated", map[string]interface{}{
		"thread_id": threadID,
		"updated":   updated,
	})

	return nil
}

func (s *service) ClearThreadLayouts(ctx context.Context, threadID uint64) error {
	if err := s.repo.ClearThreadLayouts(threadID); err != nil {
		return fmt.Errorf("failed to clear thread layouts: %w", err)
	}

	s.eventBus.Publish("thread_layouts_cleared", map[string]interface{}{
		"thread_id": threadID,
	})

	return nil
}

func (s *service) UpdateMessageLayout(ctx context.Context, messageID uint64, layoutData *string) error {
	if err := s.repo.UpdateMessageLayout(messageID, layoutData); err != nil {
		return fmt.Errorf("failed to update message layout: %w", err)
	}
	return nil
}
