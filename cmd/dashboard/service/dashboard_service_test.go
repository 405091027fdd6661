package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoAgg struct {
	published map[int64]int64
	views     map[int64]int64
	videos    []*model.Video
	err       error
}

func (f *fakeVideoAgg) CountPublishedByUser(_ context.Context, userId int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.published[userId], nil
}

func (f *fakeVideoAgg) SumViewsByUser(_ context.Context, userId int64) (int64, error) {
	return f.views[userId], nil
}

func (f *fakeVideoAgg) ListUserPublishedVideos(_ context.Context, _ int64, _ query.Page) ([]*model.Video, error) {
	return f.videos, nil
}

type fakeSubCounter struct {
	counts map[int64]int64
}

func (f *fakeSubCounter) CountSubscribers(_ context.Context, channelId int64) (int64, error) {
	return f.counts[channelId], nil
}

type fakeLikeCounter struct {
	counts map[int64]int64
}

func (f *fakeLikeCounter) CountLikesForVideoOwner(_ context.Context, ownerId int64) (int64, error) {
	return f.counts[ownerId], nil
}

type fakeUserChecker struct {
	existing map[int64]struct{}
}

func (f *fakeUserChecker) UserExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.existing[id]
	return ok, nil
}

func dashboardFixture() (*DashboardService, *fakeVideoAgg, *fakeSubCounter, *fakeLikeCounter) {
	videos := &fakeVideoAgg{
		published: map[int64]int64{},
		views:     map[int64]int64{},
	}
	subs := &fakeSubCounter{counts: map[int64]int64{}}
	likes := &fakeLikeCounter{counts: map[int64]int64{}}
	users := &fakeUserChecker{existing: map[int64]struct{}{1: {}, 2: {}}}
	return NewDashboardService(videos, subs, likes, users), videos, subs, likes
}

func TestGetChannelStatsAggregates(t *testing.T) {
	svc, videos, subs, likes := dashboardFixture()
	videos.published[1] = 3
	videos.views[1] = 250
	subs.counts[1] = 12
	likes.counts[1] = 40

	stats, err := svc.GetChannelStats(context.Background(), &identity.Identity{UserID: 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVideos)
	assert.Equal(t, int64(250), stats.TotalViews)
	assert.Equal(t, int64(12), stats.TotalSubscribers)
	assert.Equal(t, int64(40), stats.TotalLikes)
}

func TestGetChannelStatsZeroSafe(t *testing.T) {
	// A brand-new channel reports all zeros, never an error.
	svc, _, _, _ := dashboardFixture()

	stats, err := svc.GetChannelStats(context.Background(), &identity.Identity{UserID: 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, &ChannelStats{}, stats)
}

func TestGetChannelStatsMissingChannel(t *testing.T) {
	svc, _, _, _ := dashboardFixture()

	_, err := svc.GetChannelStats(context.Background(), &identity.Identity{UserID: 1}, 999)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestGetChannelStatsPropagatesFirstError(t *testing.T) {
	svc, videos, _, _ := dashboardFixture()
	videos.err = errors.New("connection reset")

	_, err := svc.GetChannelStats(context.Background(), &identity.Identity{UserID: 1}, 1)
	assert.ErrorIs(t, err, errno.DBErr)
}

func TestGetChannelStatsRequiresIdentity(t *testing.T) {
	svc, _, _, _ := dashboardFixture()

	_, err := svc.GetChannelStats(context.Background(), nil, 1)
	assert.ErrorIs(t, err, errno.AuthErr)
}

func TestGetChannelVideos(t *testing.T) {
	svc, videos, _, _ := dashboardFixture()
	videos.videos = []*model.Video{{VideoId: 5, UserId: 1, IsPublished: true}}

	list, err := svc.GetChannelVideos(context.Background(), &identity.Identity{UserID: 2}, 1, query.NormalizePage(1, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].VideoId)

	_, err = svc.GetChannelVideos(context.Background(), &identity.Identity{UserID: 2}, 999, query.NormalizePage(1, 10))
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
