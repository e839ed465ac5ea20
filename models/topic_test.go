package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_FindDiscussion(t *testing.T) {
	topic := &Topic{Discussions: []Discussion{{ID: 1}, {ID: 2}}}

	assert.Equal(t, 1, topic.FindDiscussion(2))
	assert.Equal(t, -1, topic.FindDiscussion(3))
}

func TestDiscussion_RemoveReply(t *testing.T) {
	d := &Discussion{Replies: []Reply{
		{ID: 1, AuthorID: 10},
		{ID: 2, AuthorID: 20},
		{ID: 3, AuthorID: 10},
	}}
	before := d.Replies

	assert.False(t, d.RemoveReply(2, 10), "non-author must not remove")
	assert.Len(t, d.Replies, 3)

	assert.True(t, d.RemoveReply(2, 20))
	assert.Equal(t, []Reply{{ID: 1, AuthorID: 10}, {ID: 3, AuthorID: 10}}, d.Replies)
	assert.Equal(t, int64(2), before[1].ID, "caller backing array untouched")

	assert.False(t, d.RemoveReply(2, 20))
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleMember}).IsAdmin())
}
