package seeder

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"threadboard/internal/app/message"
	"threadboard/internal/app/thread"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedDemoThread(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedDemoThread creates one thread with a small reply tree so a fresh
// install has something to render. Parents are created before children,
// mirroring how real data arrives.
func (s *Seeder) seedDemoThread() error {
	var count int64
	s.db.Model(&thread.Thread{}).Count(&count)
	if count > 0 {
		s.logger.Info("Threads already exist, skipping seed")
		return nil
	}

	demo := thread.Thread{Title: "Welcome to Threadboard"}
	if err := s.db.Create(&demo).Error; err != nil {
		return err
	}

	root := message.Message{
		ThreadID:   demo.ID,
		WriterName: "admin",
		Content:    "This is a demo thread. Replies form a tree; drag nodes around and the layout is saved per message.",
	}
	if err := s.db.Create(&root).Error; err != nil {
		return err
	}

	replies := []message.Message{
		{ThreadID: demo.ID, ParentID: &root.ID, WriterName: "alice", Content: "Neat. Does deleting a reply remove its whole subtree?"},
		{ThreadID: demo.ID, ParentID: &root.ID, WriterName: "bob", Content: "Where is the layout stored?"},
	}
	for i := range replies {
		if err := s.db.Create(&replies[i]).Error; err != nil {
			return err
		}
	}

	nested := message.Message{
		ThreadID:   demo.ID,
		ParentID:   &replies[0].ID,
		WriterName: "admin",
		Content:    "Yes, the database cascades the delete through parent references.",
	}
	if err := s.db.Create(&nested).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded demo thread", zap.Uint64("thread_id", demo.ID), zap.Int("messages", 4))
	return nil
}
