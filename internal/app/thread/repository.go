package thread

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	ListThreads() ([]*ThreadSummary, error)
	CreateThread(title string) (*Thread, error)
	GetThreadByID(id uint64) (*Thread, error)
	DeleteThread(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListThreads() ([]*ThreadSummary, error) {
	var summaries []*ThreadSummary
	err := r.db.Table("threads").
		Select(`
			threads.id,
			threads.title,
			threads.created_at,
			COUNT(messages.id) AS message_count
		`).
		Joins("LEFT JOIN messages ON messages.thread_id = threads.id").
		Group("threads.id, threads.title, threads.created_at").
		Order("threads.created_at DESC, threads.id DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) CreateThread(title string) (*Thread, error) {
	thread := &Thread{
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(thread).Error; err != nil {
		return nil, err
	}
	return thread, nil
}

func (r *repository) GetThreadByID(id uint64) (*Thread, error) {
	var thread Thread
	err := r.db.Table("threads").
		Where("threads.id = ?", id).
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// DeleteThread removes the thread row; the cascading foreign key on
// messages.thread_id removes every message with it. Zero affected rows is a
// success, which makes the delete idempotent.
func (r *repository) DeleteThread(id uint64) error {
	return r.db.Delete(&Thread{}, id).Error
}
