package service

import (
	"context"
	"strings"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommentStore struct {
	comments map[int64]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[int64]*model.Comment)}
}

func (f *fakeCommentStore) InsertComment(_ context.Context, c *model.Comment) error {
	f.comments[c.CommentId] = c
	return nil
}

func (f *fakeCommentStore) FindCommentById(_ context.Context, id int64) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentStore) ListVideoComments(_ context.Context, videoId int64, _ query.Page) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range f.comments {
		if c.VideoId == videoId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) UpdateCommentContent(_ context.Context, id int64, content string) (int64, error) {
	c, ok := f.comments[id]
	if !ok {
		return 0, nil
	}
	c.Content = content
	return 1, nil
}

func (f *fakeCommentStore) DeleteComment(_ context.Context, id int64) (int64, error) {
	if _, ok := f.comments[id]; !ok {
		return 0, nil
	}
	delete(f.comments, id)
	return 1, nil
}

type fakeVideoChecker struct {
	existing map[int64]struct{}
}

func (f *fakeVideoChecker) VideoExists(_ context.Context, vid int64) (bool, error) {
	_, ok := f.existing[vid]
	return ok, nil
}

type fakeSummaryStore struct {
	summaries map[int64]*model.UserSummary
}

func (f *fakeSummaryStore) FindSummariesByIds(_ context.Context, ids []int64) (map[int64]*model.UserSummary, error) {
	out := make(map[int64]*model.UserSummary)
	for _, id := range ids {
		if s, ok := f.summaries[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func commentFixture() (*CommentService, *fakeCommentStore) {
	comments := newFakeCommentStore()
	videos := &fakeVideoChecker{existing: map[int64]struct{}{100: {}}}
	users := &fakeSummaryStore{summaries: map[int64]*model.UserSummary{
		1: {UserId: 1, Username: "alice"},
	}}
	return NewCommentService(comments, videos, users), comments
}

func TestAddCommentTrimsContent(t *testing.T) {
	svc, _ := commentFixture()

	comment, err := svc.AddComment(context.Background(), &identity.Identity{UserID: 1}, 100, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", comment.Content)
	assert.Equal(t, int64(1), comment.UserId)
}

func TestAddCommentRejectsBlank(t *testing.T) {
	svc, comments := commentFixture()

	for _, content := range []string{"", "   ", "\t\n "} {
		_, err := svc.AddComment(context.Background(), &identity.Identity{UserID: 1}, 100, content)
		assert.ErrorIs(t, err, errno.RequestErr)
	}
	assert.Empty(t, comments.comments)
}

func TestAddCommentRejectsOversized(t *testing.T) {
	svc, _ := commentFixture()

	_, err := svc.AddComment(context.Background(), &identity.Identity{UserID: 1}, 100, strings.Repeat("x", 501))
	assert.ErrorIs(t, err, errno.RequestErr)
}

func TestAddCommentMissingVideo(t *testing.T) {
	svc, _ := commentFixture()

	_, err := svc.AddComment(context.Background(), &identity.Identity{UserID: 1}, 999, "hello")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	svc, comments := commentFixture()
	comments.comments[5] = &model.Comment{CommentId: 5, VideoId: 100, UserId: 1, Content: "old"}

	_, err := svc.UpdateComment(context.Background(), &identity.Identity{UserID: 2}, 5, "new")
	assert.ErrorIs(t, err, errno.ForbiddenErr)
	assert.Equal(t, "old", comments.comments[5].Content)

	updated, err := svc.UpdateComment(context.Background(), &identity.Identity{UserID: 1}, 5, " new ")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, "new", comments.comments[5].Content)
}

func TestUpdateCommentMissing(t *testing.T) {
	svc, _ := commentFixture()

	_, err := svc.UpdateComment(context.Background(), &identity.Identity{UserID: 1}, 404, "new")
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	svc, comments := commentFixture()
	comments.comments[5] = &model.Comment{CommentId: 5, VideoId: 100, UserId: 1}

	err := svc.DeleteComment(context.Background(), nil, 5)
	assert.ErrorIs(t, err, errno.AuthErr)

	err = svc.DeleteComment(context.Background(), &identity.Identity{UserID: 2}, 5)
	assert.ErrorIs(t, err, errno.ForbiddenErr)
	assert.Contains(t, comments.comments, int64(5))

	err = svc.DeleteComment(context.Background(), &identity.Identity{UserID: 1}, 5)
	require.NoError(t, err)
	assert.Empty(t, comments.comments)
}

func TestListVideoCommentsAttachesOwner(t *testing.T) {
	svc, comments := commentFixture()
	comments.comments[5] = &model.Comment{CommentId: 5, VideoId: 100, UserId: 1, Content: "hi"}

	infos, err := svc.ListVideoComments(context.Background(), 100, query.NormalizePage(1, 10))
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.NotNil(t, infos[0].Owner)
	assert.Equal(t, "alice", infos[0].Owner.Username)
}

func TestListVideoCommentsMissingVideo(t *testing.T) {
	svc, _ := commentFixture()

	_, err := svc.ListVideoComments(context.Background(), 999, query.NormalizePage(1, 10))
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
