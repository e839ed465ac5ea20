package service

import (
	"Agora/dao/cache"
	"Agora/models"
	"Agora/types"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_SendBroadcastsInOrder(t *testing.T) {
	env := setupTestEnv(t)
	a := env.createUser(t, "a", models.RoleMember)
	b := env.createUser(t, "b", models.RoleMember)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := env.message.Send(bg, a.ID, b.ID, "hello", &at)
	require.NotNil(t, msg)
	assert.False(t, msg.IsRead)
	assert.True(t, at.Equal(msg.CreatedAt))

	events := env.pub.all()
	require.Len(t, events, 2)
	assert.Equal(t, types.EventReceiveMessage, events[0].Event)
	assert.Equal(t, msg, events[0].Payload)
	assert.Equal(t, types.EventReceiveUnreadCount, events[1].Event)
	assert.Equal(t, &types.UnreadCountPayload{From: a.ID, To: b.ID, Delta: 1}, events[1].Payload)
}

func TestMessageService_SendDropsIncomplete(t *testing.T) {
	env := setupTestEnv(t)
	a := env.createUser(t, "a", models.RoleMember)

	assert.Nil(t, env.message.Send(bg, a.ID, 0, "hello", nil))
	assert.Nil(t, env.message.Send(bg, 0, a.ID, "hello", nil))
	assert.Nil(t, env.message.Send(bg, a.ID, a.ID+1, "   ", nil))
	assert.Empty(t, env.pub.all())
}

func TestMessageService_UnreadLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	a := env.createUser(t, "a", models.RoleMember)
	b := env.createUser(t, "b", models.RoleMember)

	const n = 3
	for i := 0; i < n; i++ {
		require.NotNil(t, env.message.Send(bg, a.ID, b.ID, "ping", nil))
	}
	require.NotNil(t, env.message.Send(bg, b.ID, a.ID, "pong", nil))

	assert.EqualValues(t, n, env.message.RequestUnread(bg, b.ID, a.ID))
	assert.EqualValues(t, 1, env.message.RequestUnread(bg, a.ID, b.ID))

	assert.EqualValues(t, n, env.message.MarkRead(bg, a.ID, b.ID))
	assert.EqualValues(t, 0, env.message.RequestUnread(bg, b.ID, a.ID))
	assert.EqualValues(t, 1, env.message.RequestUnread(bg, a.ID, b.ID))

	var sum int64
	var last *types.UnreadCountPayload
	for _, e := range env.pub.all() {
		if e.Event != types.EventReceiveUnreadCount {
			continue
		}
		p := e.Payload.(*types.UnreadCountPayload)
		if p.From == a.ID && p.To == b.ID {
			sum += p.Delta
			last = p
		}
	}
	require.NotNil(t, last)
	assert.EqualValues(t, -n, last.Delta)
	assert.EqualValues(t, 0, sum)

	// 没有可标记的消息时不广播
	before := len(env.pub.all())
	assert.EqualValues(t, 0, env.message.MarkRead(bg, a.ID, b.ID))
	assert.Len(t, env.pub.all(), before)
}

func TestMessageService_RequestUnreadStoreFailure(t *testing.T) {
	env := setupTestEnv(t)
	a := env.createUser(t, "a", models.RoleMember)
	b := env.createUser(t, "b", models.RoleMember)
	require.NotNil(t, env.message.Send(bg, a.ID, b.ID, "hi", nil))

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.EqualValues(t, 0, env.message.RequestUnread(bg, b.ID, a.ID))
	assert.EqualValues(t, 0, env.message.MarkRead(bg, a.ID, b.ID))
	assert.Nil(t, env.message.Send(bg, a.ID, b.ID, "lost", nil))
}

func TestChatService_ListChatUsers(t *testing.T) {
	env := setupTestEnv(t)
	me := env.createUser(t, "me", models.RoleMember)
	zed := env.createUser(t, "zed", models.RoleMember)
	amy := env.createUser(t, "amy", models.RoleMember)
	env.createUser(t, "stranger", models.RoleMember)

	env.message.Send(bg, zed.ID, me.ID, "1", nil)
	env.message.Send(bg, zed.ID, me.ID, "2", nil)
	env.message.Send(bg, me.ID, amy.ID, "3", nil)

	users, err := env.chat.ListChatUsers(bg, me.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "amy", users[0].Username)
	assert.EqualValues(t, 0, users[0].UnreadCount)
	assert.Equal(t, "zed", users[1].Username)
	assert.EqualValues(t, 2, users[1].UnreadCount)
	assert.False(t, users[1].Online)
}

func TestChatService_ListMessages(t *testing.T) {
	env := setupTestEnv(t)
	a := env.createUser(t, "a", models.RoleMember)
	b := env.createUser(t, "b", models.RoleMember)
	c := env.createUser(t, "c", models.RoleMember)

	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)
	t2 := t1.Add(time.Minute)
	env.message.Send(bg, b.ID, a.ID, "second", &t1)
	env.message.Send(bg, a.ID, b.ID, "first", &t0)
	env.message.Send(bg, a.ID, c.ID, "elsewhere", &t2)

	messages, err := env.chat.ListMessages(bg, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
}

func TestChatService_ListChatUsersOnline(t *testing.T) {
	env := setupTestEnv(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	env.chat.Presence = cache.NewPresenceStorage(client)

	me := env.createUser(t, "me", models.RoleMember)
	amy := env.createUser(t, "amy", models.RoleMember)
	zed := env.createUser(t, "zed", models.RoleMember)
	env.message.Send(bg, amy.ID, me.ID, "hi", nil)
	env.message.Send(bg, zed.ID, me.ID, "yo", nil)

	require.NoError(t, env.chat.Presence.Bind(bg, "node-1", "c1", amy.ID))

	users, err := env.chat.ListChatUsers(bg, me.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "amy", users[0].Username)
	assert.True(t, users[0].Online)
	assert.False(t, users[1].Online)
}
