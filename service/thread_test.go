package service

import (
	"Agora/models"
	"Agora/types"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type threadFixture struct {
	env        *testEnv
	admin      *models.User
	u1, u2     *models.User
	discussion *models.Discussion
}

func setupThread(t *testing.T) *threadFixture {
	t.Helper()

	env := setupTestEnv(t)
	f := &threadFixture{
		env:   env,
		admin: env.createUser(t, "root", models.RoleAdmin),
		u1:    env.createUser(t, "u1", models.RoleMember),
		u2:    env.createUser(t, "u2", models.RoleMember),
	}

	_, err := env.topic.CreateTopic(bg, "books", f.admin.ID)
	require.NoError(t, err)

	f.discussion, err = env.thread.CreateDiscussion(bg, "books", "Favorites", "share yours", f.u1.ID)
	require.NoError(t, err)

	return f
}

func TestThreadService_CreateDiscussion(t *testing.T) {
	f := setupThread(t)
	svc := f.env.thread

	assert.NotZero(t, f.discussion.ID)
	assert.Empty(t, f.discussion.Replies)

	_, err := svc.CreateDiscussion(bg, "films", "x", "y", f.u1.ID)
	requireCode(t, err, http.StatusNotFound)

	_, err = svc.CreateDiscussion(bg, "books", " ", "y", f.u1.ID)
	requireCode(t, err, http.StatusBadRequest)

	second, err := svc.CreateDiscussion(bg, "BOOKS", "Classics", "old ones", f.u2.ID)
	require.NoError(t, err)

	list, err := svc.ListDiscussions(bg, "books")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, f.discussion.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	// 读操作不改变状态
	again, err := svc.ListDiscussions(bg, "books")
	require.NoError(t, err)
	assert.Equal(t, list, again)

	_, err = svc.ListDiscussions(bg, "films")
	requireCode(t, err, http.StatusNotFound)
}

func TestThreadService_RepliesScenario(t *testing.T) {
	f := setupThread(t)
	svc := f.env.thread
	id := f.discussion.ID

	replies, err := svc.AddReply(bg, "books", id, f.u1.ID, &types.CreateReplyRequest{Message: "Dune"})
	require.NoError(t, err)
	require.Len(t, replies, 1)

	replies, err = svc.AddReply(bg, "books", id, f.u2.ID, &types.CreateReplyRequest{YoutubeVideoID: "abc123"})
	require.NoError(t, err)
	require.Len(t, replies, 2)

	detail, err := svc.GetDiscussion(bg, "books", id)
	require.NoError(t, err)
	assert.Equal(t, "books", detail.Topic)
	assert.Equal(t, "u1", detail.Author.Username)
	require.Len(t, detail.Replies, 2)
	assert.Equal(t, "u1", detail.Replies[0].Author.Username)
	assert.Equal(t, f.u1.Avatar, detail.Replies[0].Author.Avatar)
	assert.Equal(t, "Dune", detail.Replies[0].Message)
	assert.Equal(t, "u2", detail.Replies[1].Author.Username)
	assert.Equal(t, "abc123", detail.Replies[1].YoutubeVideoID)

	u2Reply := detail.Replies[1].ID
	u1Reply := detail.Replies[0].ID

	// 不能删除别人的回复
	err = svc.DeleteReply(bg, "books", id, u1Reply, f.u2.ID)
	requireCode(t, err, http.StatusUnauthorized)

	detail, err = svc.GetDiscussion(bg, "books", id)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 2)

	require.NoError(t, svc.DeleteReply(bg, "books", id, u2Reply, f.u2.ID))

	detail, err = svc.GetDiscussion(bg, "books", id)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 1)
	assert.Equal(t, u1Reply, detail.Replies[0].ID)

	err = svc.DeleteReply(bg, "books", id, u2Reply, f.u2.ID)
	requireCode(t, err, http.StatusUnauthorized)
}

func TestThreadService_AddReplyErrors(t *testing.T) {
	f := setupThread(t)
	svc := f.env.thread
	id := f.discussion.ID

	_, err := svc.AddReply(bg, "books", id, f.u1.ID, &types.CreateReplyRequest{Message: "  "})
	requireCode(t, err, http.StatusBadRequest)

	_, err = svc.AddReply(bg, "books", id, f.u1.ID, &types.CreateReplyRequest{ImageURL: "javascript:alert(1)"})
	requireCode(t, err, http.StatusBadRequest)

	_, err = svc.AddReply(bg, "films", id, f.u1.ID, &types.CreateReplyRequest{Message: "hi"})
	requireCode(t, err, http.StatusNotFound)

	_, err = svc.AddReply(bg, "books", id+1, f.u1.ID, &types.CreateReplyRequest{Message: "hi"})
	requireCode(t, err, http.StatusNotFound)

	_, err = svc.GetDiscussion(bg, "books", id+1)
	requireCode(t, err, http.StatusNotFound)

	err = svc.DeleteReply(bg, "books", id+1, 1, f.u1.ID)
	requireCode(t, err, http.StatusNotFound)
}

func TestThreadService_UserActivity(t *testing.T) {
	f := setupThread(t)
	svc := f.env.thread

	_, err := f.env.topic.CreateTopic(bg, "music", f.admin.ID)
	require.NoError(t, err)
	other, err := svc.CreateDiscussion(bg, "music", "Jazz", "records", f.u2.ID)
	require.NoError(t, err)

	_, err = svc.AddReply(bg, "books", f.discussion.ID, f.u2.ID, &types.CreateReplyRequest{Message: "one"})
	require.NoError(t, err)
	_, err = svc.AddReply(bg, "music", other.ID, f.u2.ID, &types.CreateReplyRequest{Message: "two"})
	require.NoError(t, err)
	_, err = svc.AddReply(bg, "music", other.ID, f.u1.ID, &types.CreateReplyRequest{Message: "three"})
	require.NoError(t, err)

	discussions, err := svc.ListUserDiscussions(bg, f.u2.ID)
	require.NoError(t, err)
	require.Len(t, discussions, 1)
	assert.Equal(t, "music", discussions[0].Topic)
	assert.Equal(t, 2, discussions[0].ReplyCount)

	comments, err := svc.ListUserComments(bg, f.u2.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	messages := []string{comments[0].Message, comments[1].Message}
	assert.ElementsMatch(t, []string{"one", "two"}, messages)

	none, err := svc.ListUserComments(bg, f.admin.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestThreadService_FreeTextStoredAsSent(t *testing.T) {
	f := setupThread(t)
	svc := f.env.thread

	discussion, err := svc.CreateDiscussion(bg, "books", "  Spaced Title  ", "  desc  ", f.u1.ID)
	require.NoError(t, err)

	replies, err := svc.AddReply(bg, "books", discussion.ID, f.u2.ID, &types.CreateReplyRequest{
		Message:        "  indented\n",
		YoutubeVideoID: " abc ",
	})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "  indented\n", replies[0].Message)

	detail, err := svc.GetDiscussion(bg, "books", discussion.ID)
	require.NoError(t, err)
	assert.Equal(t, "  Spaced Title  ", detail.Title)
	assert.Equal(t, "  desc  ", detail.Description)
	require.Len(t, detail.Replies, 1)
	assert.Equal(t, "  indented\n", detail.Replies[0].Message)
	assert.Equal(t, " abc ", detail.Replies[0].YoutubeVideoID)
}
