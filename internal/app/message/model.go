package message

import "time"

// Message is a node in a per-thread reply tree. ParentID is nil for roots.
// LayoutData is an opaque blob written by the frontend layout engine; nil means
// the layout has to be recomputed on next render.
type Message struct {
	ID         uint64     `json:"id" gorm:"primaryKey"`
	ThreadID   uint64     `json:"thread_id" gorm:"not null;index"`
	ParentID   *uint64    `json:"parent_id" gorm:"index"`
	WriterName string     `json:"writer_name" gorm:"not null"`
	Content    string     `json:"content" gorm:"not null"`
	LayoutData *string    `json:"layout_data"`
	CreatedAt  time.Time  `json:"created_at"`
	Replies    []*Message `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

type CreateMessageRequest struct {
	ThreadID   uint64  `json:"thread_id" binding:"required"`
	ParentID   *uint64 `json:"parent_id"`
	WriterName string  `json:"writer_name" binding:"required"`
	Content    string  `json:"content" binding:"required"`
}
