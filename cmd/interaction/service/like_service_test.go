package service

import (
	"context"
	"fmt"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLikeStore struct {
	edges         map[string]struct{}
	likedOrder    []int64
	insertErr     error
	deleteErr     error
	forceNoInsert bool
	writes        int
}

func likeKey(uid int64, kind string, tid int64) string {
	return fmt.Sprintf("%d:%s:%d", uid, kind, tid)
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[string]struct{})}
}

func (f *fakeLikeStore) InsertLike(_ context.Context, like *model.Like) (bool, error) {
	f.writes++
	if f.insertErr != nil {
		return false, f.insertErr
	}
	if f.forceNoInsert {
		return false, nil
	}
	k := likeKey(like.UserId, like.TargetKind, like.TargetId)
	if _, ok := f.edges[k]; ok {
		return false, nil
	}
	f.edges[k] = struct{}{}
	return true, nil
}

func (f *fakeLikeStore) DeleteLike(_ context.Context, uid int64, kind string, tid int64) (bool, error) {
	f.writes++
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	k := likeKey(uid, kind, tid)
	if _, ok := f.edges[k]; !ok {
		return false, nil
	}
	delete(f.edges, k)
	return true, nil
}

func (f *fakeLikeStore) ListLikedVideoIds(_ context.Context, _ int64, _ query.Page) ([]int64, error) {
	return f.likedOrder, nil
}

type fakeTargets struct {
	existing map[string]struct{}
	err      error
}

func (f *fakeTargets) TargetExists(_ context.Context, kind string, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.existing[fmt.Sprintf("%s:%d", kind, id)]
	return ok, nil
}

type fakeVideoFinder struct {
	videos []*model.Video
}

func (f *fakeVideoFinder) FindVideosByIds(_ context.Context, vids []int64) ([]*model.Video, error) {
	return f.videos, nil
}

type fakeLocker struct {
	locks int
	err   error
}

func (f *fakeLocker) Lock(_ context.Context, _ string) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.locks++
	return func() {}, nil
}

func likeFixture() (*LikeService, *fakeLikeStore, *fakeTargets, *fakeLocker) {
	likes := newFakeLikeStore()
	targets := &fakeTargets{existing: map[string]struct{}{
		"video:100": {},
		"tweet:200": {},
	}}
	locker := &fakeLocker{}
	svc := NewLikeService(likes, targets, &fakeVideoFinder{}, locker)
	return svc, likes, targets, locker
}

func TestToggleLikeFlips(t *testing.T) {
	svc, likes, _, locker := likeFixture()
	actor := &identity.Identity{UserID: 1}

	on, err := svc.Toggle(context.Background(), actor, model.TargetVideo, 100)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Contains(t, likes.edges, likeKey(1, "video", 100))

	off, err := svc.Toggle(context.Background(), actor, model.TargetVideo, 100)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, likes.edges)
	assert.Equal(t, 2, locker.locks)
}

func TestToggleLikeIndependentPerActor(t *testing.T) {
	svc, likes, _, _ := likeFixture()

	_, err := svc.Toggle(context.Background(), &identity.Identity{UserID: 1}, model.TargetVideo, 100)
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), &identity.Identity{UserID: 2}, model.TargetVideo, 100)
	require.NoError(t, err)

	assert.Len(t, likes.edges, 2)
}

func TestToggleLikeValidation(t *testing.T) {
	svc, likes, _, _ := likeFixture()
	actor := &identity.Identity{UserID: 1}

	_, err := svc.Toggle(context.Background(), nil, model.TargetVideo, 100)
	assert.ErrorIs(t, err, errno.AuthErr)

	_, err = svc.Toggle(context.Background(), actor, "playlist", 100)
	assert.ErrorIs(t, err, errno.RequestErr)

	_, err = svc.Toggle(context.Background(), actor, model.TargetVideo, 0)
	assert.ErrorIs(t, err, errno.RequestErr)

	assert.Zero(t, likes.writes)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	svc, likes, _, _ := likeFixture()

	_, err := svc.Toggle(context.Background(), &identity.Identity{UserID: 1}, model.TargetVideo, 999)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	assert.Zero(t, likes.writes)
}

func TestToggleLikeConcurrentInsertStillOn(t *testing.T) {
	// The unique index swallowed the insert because a concurrent toggle
	// won the race. The edge exists either way.
	svc, likes, _, _ := likeFixture()
	likes.forceNoInsert = true

	on, err := svc.Toggle(context.Background(), &identity.Identity{UserID: 1}, model.TargetVideo, 100)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestToggleLikeLockFailureDegrades(t *testing.T) {
	svc, _, _, locker := likeFixture()
	locker.err = errors.New("redis down")

	on, err := svc.Toggle(context.Background(), &identity.Identity{UserID: 1}, model.TargetVideo, 100)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestToggleLikeIndeterminateWrite(t *testing.T) {
	svc, likes, _, _ := likeFixture()
	likes.deleteErr = errors.Wrap(context.DeadlineExceeded, "DeleteLike failed")

	_, err := svc.Toggle(context.Background(), &identity.Identity{UserID: 1}, model.TargetVideo, 100)
	assert.ErrorIs(t, err, errno.WriteIndeterminateErr)
}

func TestGetLikedVideosKeepsLikeOrder(t *testing.T) {
	likes := newFakeLikeStore()
	likes.likedOrder = []int64{3, 1, 2}
	finder := &fakeVideoFinder{videos: []*model.Video{
		{VideoId: 1}, {VideoId: 2}, {VideoId: 3},
	}}
	svc := NewLikeService(likes, &fakeTargets{}, finder, nil)

	videos, err := svc.GetLikedVideos(context.Background(), &identity.Identity{UserID: 1}, query.NormalizePage(1, 10))
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, int64(3), videos[0].VideoId)
	assert.Equal(t, int64(1), videos[1].VideoId)
	assert.Equal(t, int64(2), videos[2].VideoId)
}

func TestGetLikedVideosSkipsDeleted(t *testing.T) {
	likes := newFakeLikeStore()
	likes.likedOrder = []int64{5, 6}
	finder := &fakeVideoFinder{videos: []*model.Video{{VideoId: 6}}}
	svc := NewLikeService(likes, &fakeTargets{}, finder, nil)

	videos, err := svc.GetLikedVideos(context.Background(), &identity.Identity{UserID: 1}, query.NormalizePage(1, 10))
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, int64(6), videos[0].VideoId)
}

func TestGetLikedVideosRequiresIdentity(t *testing.T) {
	svc, _, _, _ := likeFixture()
	_, err := svc.GetLikedVideos(context.Background(), nil, query.NormalizePage(1, 10))
	assert.ErrorIs(t, err, errno.AuthErr)
}
