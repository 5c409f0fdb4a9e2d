package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"threadboard/internal/app/layout"
	"threadboard/internal/app/message"
	"threadboard/internal/app/thread"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&thread.Thread{}, &message.Message{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedThread(t *testing.T, db *gorm.DB, title string, messageCount int) (*thread.Thread, []*message.Message) {
	t.Helper()
	th := &thread.Thread{Title: title}
	require.NoError(t, db.Create(th).Error)

	messageRepo := message.NewRepository(db)
	var messages []*message.Message
	for i := 0; i < messageCount; i++ {
		m, err := messageRepo.CreateMessage(th.ID, nil, "writer", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		messages = append(messages, m)
	}
	return th, messages
}

func layoutOf(t *testing.T, db *gorm.DB, messageID uint64) *string {
	t.Helper()
	m, err := message.NewRepository(db).GetMessageByID(messageID)
	require.NoError(t, err)
	return m.LayoutData
}

func TestLayoutRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := layout.NewRepository(db)
	th, messages := seedThread(t, db, "roundtrip", 2)

	updated, err := repo.UpdateThreadLayouts(th.ID, map[uint64]string{
		messages[0].ID: `{"x":10,"y":20}`,
		messages[1].ID: `{"x":30,"y":40}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	first := layoutOf(t, db, messages[0].ID)
	require.NotNil(t, first)
	assert.Equal(t, `{"x":10,"y":20}`, *first)

	require.NoError(t, repo.ClearThreadLayouts(th.ID))
	assert.Nil(t, layoutOf(t, db, messages[0].ID))
	assert.Nil(t, layoutOf(t, db, messages[1].ID))
}

func TestLayoutUpdateScopedToThread(t *testing.T) {
	db := newTestDB(t)
	repo := layout.NewRepository(db)
	_, ours := seedThread(t, db, "ours", 1)
	other, theirs := seedThread(t, db, "theirs", 1)

	// Entry targeting a message from another thread matches zero rows.
	updated, err := repo.UpdateThreadLayouts(other.ID, map[uint64]string{
		ours[0].ID:   `{"x":1}`,
		theirs[0].ID: `{"x":2}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	assert.Nil(t, layoutOf(t, db, ours[0].ID))
	got := layoutOf(t, db, theirs[0].ID)
	require.NotNil(t, got)
	assert.Equal(t, `{"x":2}`, *got)
}

func TestClearLayoutsScopedToThread(t *testing.T) {
	db := newTestDB(t)
	repo := layout.NewRepository(db)
	ourThread, ours := seedThread(t, db, "clear-ours", 1)
	_, theirs := seedThread(t, db, "clear-theirs", 1)

	_, err := repo.UpdateThreadLayouts(ourThread.ID, map[uint64]string{ours[0].ID: `{"a":1}`})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateMessageLayout(theirs[0].ID, strPtr(`{"b":2}`)))

	require.NoError(t, repo.ClearThreadLayouts(ourThread.ID))

	assert.Nil(t, layoutOf(t, db, ours[0].ID))
	assert.NotNil(t, layoutOf(t, db, theirs[0].ID))
}

func TestClearLayoutsOnEmptyThread(t *testing.T) {
	db := newTestDB(t)
	repo := layout.NewRepository(db)
	th, _ := seedThread(t, db, "empty", 0)

	assert.NoError(t, repo.ClearThreadLayouts(th.ID))
	assert.NoError(t, repo.ClearThreadLayouts(th.ID+999))
}

func TestUpdateMessageLayoutSetAndClear(t *testing.T) {
	db := newTestDB(t)
	repo := layout.NewRepository(db)
	_, messages := seedThread(t, db, "single", 1)
	id := messages[0].ID

	require.NoError(t, repo.UpdateMessageLayout(id, strPtr(`{"x":5}`)))
	got := layoutOf(t, db, id)
	require.NotNil(t, got)
	assert.Equal(t, `{"x":5}`, *got)

	// Setting again overwrites, clearing with nil goes back to absent.
	require.NoError(t, repo.UpdateMessageLayout(id, strPtr(`{"x":6}`)))
	require.NoError(t, repo.UpdateMessageLayout(id, nil))
	assert.Nil(t, layoutOf(t, db, id))
}

func strPtr(s string) *string {
	return &s
}
