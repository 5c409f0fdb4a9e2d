package layout

import "gorm.io/gorm"

type Repository interface {
	UpdateThreadLayouts(threadID uint64, layouts map[uint64]string) (int64, error)
	ClearThreadLayouts(threadID uint64) error
	UpdateMessageLayout(messageID uint64, layoutData *string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// UpdateThreadLayouts applies each entry as an independent keyed update scoped
// to the given thread. Entries whose message id is missing or belongs to
// another thread match zero rows and are skipped; the thread filter is a
// safety net, not an error condition. Returns the number of rows updated.
func (r *repository) UpdateThreadLayouts(threadID uint64, layouts map[uint64]string) (int64, error) {
	var updated int64
	for messageID, layoutData := range layouts {
		result := r.db.Table("messages").
			Where("id = ? AND thread_id = ?", messageID, threadID).
			Update("layout_data", layoutData)
		if result.Error != nil {
			return updated, result.Error
		}
		updated += result.RowsAffected
	}
	return updated, nil
}

// ClearThreadLayouts sets layout_data to NULL for every message in the thread,
// forcing the frontend to regenerate positions on next load.
func (r *repository) ClearThreadLayouts(threadID uint64) error {
	return r.db.Table("messages").
		Where("thread_id = ?", threadID).
		Update("layout_data", nil).Error
}

func (r *repository) UpdateMessageLayout(messageID uint64, layoutData *string) error {
	return r.db.Table("messages").
		Where("id = ?", messageID).
		Update("layout_data", layoutData).Error
}
