package thread

import (
	"time"

	"threadboard/internal/app/message"
)

// Thread owns its messages: the has-many constraint materializes as an
// ON DELETE CASCADE foreign key, so dropping a thread drops every message in it
// inside the same statement.
type Thread struct {
	ID        uint64            `json:"id" gorm:"primaryKey"`
	Title     string            `json:"title" gorm:"size:200;not null"`
	CreatedAt time.Time         `json:"created_at"`
	Messages  []message.Message `json:"-" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// ThreadSummary is a list row. MessageCount is computed live from the messages
// table, never stored.
type ThreadSummary struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int64     `json:"message_count"`
}

type ThreadWithMessages struct {
	ID        uint64             `json:"id"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"created_at"`
	Messages  []*message.Message `json:"messages"`
}

type CreateThreadRequest struct {
	Title string `json:"title" binding:"required"`
}
