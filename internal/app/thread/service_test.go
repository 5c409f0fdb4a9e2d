package thread_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"threadboard/internal/apperrors"
	"threadboard/internal/app/message"
	"threadboard/internal/app/thread"
	"threadboard/internal/utils"
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

func newTestService(t *testing.T) (thread.Service, message.Repository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	messageRepo := message.NewRepository(db)
	svc := thread.NewService(thread.NewRepository(db), messageRepo, nil, utils.NewEventBus(), zap.NewNop())
	return svc, messageRepo, db
}

func TestCreateThreadValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateThread(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateThread(ctx, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	created, err := svc.CreateThread(ctx, "General")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "General", created.Title)
}

func TestListThreadsNewestFirstWithLiveCounts(t *testing.T) {
	svc, messageRepo, db := newTestService(t)
	ctx := context.Background()

	now := time.Now()
	older := thread.Thread{Title: "older", CreatedAt: now.Add(-2 * time.Hour)}
	newer := thread.Thread{Title: "newer", CreatedAt: now.Add(-1 * time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	root, err := messageRepo.CreateMessage(older.ID, nil, "a", "one")
	require.NoError(t, err)
	_, err = messageRepo.CreateMessage(older.ID, &root.ID, "b", "two")
	require.NoError(t, err)

	summaries, err := svc.ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "newer", summaries[0].Title)
	assert.Equal(t, int64(0), summaries[0].MessageCount)
	assert.Equal(t, "older", summaries[1].Title)
	assert.Equal(t, int64(2), summaries[1].MessageCount)

	// The count is computed live: deleting the root cascades to its reply
	// and the next listing reflects it.
	require.NoError(t, messageRepo.DeleteMessage(root.ID))
	summaries, err = svc.ListThreads(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summaries[1].MessageCount)
}

func TestGetThreadWithMessages(t *testing.T) {
	svc, messageRepo, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "Demo")
	require.NoError(t, err)

	first, err := messageRepo.CreateMessage(created.ID, nil, "A", "hi")
	require.NoError(t, err)
	second, err := messageRepo.CreateMessage(created.ID, &first.ID, "B", "reply")
	require.NoError(t, err)

	got, err := svc.GetThreadWithMessages(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo", got.Title)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, first.ID, got.Messages[0].ID)
	assert.Equal(t, second.ID, got.Messages[1].ID)
	assert.Nil(t, got.Messages[0].LayoutData)
}

func TestGetThreadWithMessagesNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetThreadWithMessages(context.Background(), 777)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteThreadCascadesToAllMessages(t *testing.T) {
	svc, messageRepo, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "doomed")
	require.NoError(t, err)

	root, err := messageRepo.CreateMessage(created.ID, nil, "a", "root")
	require.NoError(t, err)
	child, err := messageRepo.CreateMessage(created.ID, &root.ID, "b", "child")
	require.NoError(t, err)
	_, err = messageRepo.CreateMessage(created.ID, &child.ID, "c", "grandchild")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteThread(ctx, created.ID))

	_, err = svc.GetThreadWithMessages(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Table("messages").Where("thread_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteThreadIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.DeleteThread(ctx, 31337))
	assert.NoError(t, svc.DeleteThread(ctx, 31337))
}
