package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zcyneiya/hotel-backend/internal/model"
)

// 创建测试用的 Redis 客户端
func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestSessionService_Create(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	session := &model.Session{
		UserID:    "merchant-123",
		Role:      model.RoleMerchant,
		IPAddress: "192.168.1.1",
		UserAgent: "Mozilla/5.0",
	}

	err := svc.Create(ctx, session)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestSessionService_Get(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	session := &model.Session{
		UserID: "merchant-123",
		Role:   model.RoleMerchant,
	}
	require.NoError(t, svc.Create(ctx, session))

	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "merchant-123", got.UserID)
	assert.Equal(t, model.RoleMerchant, got.Role)

	_, err = svc.Get(ctx, "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_GetExpired(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	session := &model.Session{
		UserID:    "merchant-123",
		ExpiresAt: time.Now().Add(50 * time.Millisecond),
	}
	require.NoError(t, svc.Create(ctx, session))

	time.Sleep(60 * time.Millisecond)

	_, err := svc.Get(ctx, session.ID)
	assert.Error(t, err)
}

func TestSessionService_Delete(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	session := &model.Session{UserID: "merchant-123"}
	require.NoError(t, svc.Create(ctx, session))

	require.NoError(t, svc.Delete(ctx, session.ID))

	_, err := svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_DeleteByUserID(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	// 同一用户的多个会话
	var ids []string
	for i := 0; i < 3; i++ {
		session := &model.Session{UserID: "merchant-123"}
		require.NoError(t, svc.Create(ctx, session))
		ids = append(ids, session.ID)
	}
	other := &model.Session{UserID: "merchant-456"}
	require.NoError(t, svc.Create(ctx, other))

	require.NoError(t, svc.DeleteByUserID(ctx, "merchant-123"))

	for _, id := range ids {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	}

	// 其他用户的会话不受影响
	_, err := svc.Get(ctx, other.ID)
	assert.NoError(t, err)
}

func TestSessionService_ListByUserID(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	svc := NewSessionService(client, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.Create(ctx, &model.Session{UserID: "merchant-123"}))
	}

	sessions, err := svc.ListByUserID(ctx, "merchant-123")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
