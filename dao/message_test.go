package dao

import (
	"Agora/models"
	"Agora/pkg/snowflake"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendTestMessage(t *testing.T, d *MessageDAO, from, to int64, text string, at time.Time) *models.Message {
	t.Helper()

	msg := &models.Message{ID: snowflake.GenID(), FromID: from, ToID: to, Text: text, CreatedAt: at}
	require.NoError(t, d.Create(context.Background(), msg))
	return msg
}

func TestMessageDAO_UnreadAndMarkRead(t *testing.T) {
	ctx := context.Background()
	d := NewMessageDAO(setupTestDB(t))
	now := time.Now()

	sendTestMessage(t, d, 1, 2, "a", now)
	sendTestMessage(t, d, 1, 2, "b", now.Add(time.Second))
	sendTestMessage(t, d, 1, 2, "c", now.Add(2*time.Second))
	sendTestMessage(t, d, 2, 1, "reply", now.Add(3*time.Second))

	count, err := d.CountUnread(ctx, 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	affected, err := d.MarkRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	count, err = d.CountUnread(ctx, 2, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	// 已读的不再计数
	affected, err = d.MarkRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, affected)

	count, err = d.CountUnread(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMessageDAO_Conversation(t *testing.T) {
	ctx := context.Background()
	d := NewMessageDAO(setupTestDB(t))
	now := time.Now()

	sendTestMessage(t, d, 2, 1, "second", now.Add(time.Second))
	sendTestMessage(t, d, 1, 2, "first", now)
	sendTestMessage(t, d, 1, 3, "other", now)

	msgs, err := d.Conversation(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
}

func TestMessageDAO_PeersAndUnreadBySender(t *testing.T) {
	ctx := context.Background()
	d := NewMessageDAO(setupTestDB(t))
	now := time.Now()

	sendTestMessage(t, d, 2, 1, "x", now)
	sendTestMessage(t, d, 2, 1, "y", now)
	sendTestMessage(t, d, 1, 3, "z", now)
	sendTestMessage(t, d, 4, 5, "unrelated", now)

	peers, err := d.Peers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, peers)

	unread, err := d.UnreadBySender(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{2: 2}, unread)
}
