package message

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CreateMessage(threadID uint64, parentID *uint64, writerName, content string) (*Message, error)
	GetMessageByID(id uint64) (*Message, error)
	GetMessagesByThreadID(threadID uint64) ([]*Message, error)
	DeleteMessage(id uint64) error
	ThreadExists(threadID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMessage(
	threadID uint64,
	parentID *uint64,
	writerName, content string,
) (*Message, error) {
	message := &Message{
		ThreadID:   threadID,
		ParentID:   parentID,
		WriterName: writerName,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := r.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (r *repository) GetMessageByID(id uint64) (*Message, error) {
	var message Message
	err := r.db.Table("messages").
		Where("messages.id = ?", id).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *repository) GetMessagesByThreadID(threadID uint64) ([]*Message, error) {
	var messages []*Message
	err := r.db.Table("messages").
		Where("messages.thread_id = ?", threadID).
		Order("messages.created_at ASC, messages.id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes a message by id. The ON DELETE CASCADE constraint on
// parent_id takes the whole subtree with it in the same statement, so the
// delete is total regardless of tree depth. Zero affected rows is a success.
func (r *repository) DeleteMessage(id uint64) error {
	return r.db.Delete(&Message{}, id).Error
}

func (r *repository) ThreadExists(threadID uint64) (bool, error) {
	var count int64
	err := r.db.Table("threads").
		Where("threads.id = ?", threadID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
