package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaylistStore struct {
	playlists map[int64]*model.Playlist
	members   map[int64][]int64
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{
		playlists: make(map[int64]*model.Playlist),
		members:   make(map[int64][]int64),
	}
}

func (f *fakePlaylistStore) InsertPlaylist(_ context.Context, p *model.Playlist) error {
	f.playlists[p.PlaylistId] = p
	return nil
}

func (f *fakePlaylistStore) FindPlaylistById(_ context.Context, id int64) (*model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlaylistStore) ListUserPlaylists(_ context.Context, userId int64) ([]*model.Playlist, error) {
	var out []*model.Playlist
	for _, p := range f.playlists {
		if p.UserId == userId {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaylistStore) UpdatePlaylistFields(_ context.Context, id int64, fields map[string]interface{}) (int64, error) {
	p, ok := f.playlists[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		p.Description = desc
	}
	return 1, nil
}

func (f *fakePlaylistStore) DeletePlaylist(_ context.Context, id int64) (int64, error) {
	if _, ok := f.playlists[id]; !ok {
		return 0, nil
	}
	delete(f.playlists, id)
	delete(f.members, id)
	return 1, nil
}

func (f *fakePlaylistStore) InsertMember(_ context.Context, m *model.PlaylistVideo) (bool, error) {
	for _, vid := range f.members[m.PlaylistId] {
		if vid == m.VideoId {
			return false, nil
		}
	}
	f.members[m.PlaylistId] = append(f.members[m.PlaylistId], m.VideoId)
	return true, nil
}

func (f *fakePlaylistStore) DeleteMember(_ context.Context, playlistId, videoId int64) (bool, error) {
	list := f.members[playlistId]
	for i, vid := range list {
		if vid == videoId {
			f.members[playlistId] = append(list[:i:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlaylistStore) ListMemberVideoIds(_ context.Context, playlistId int64) ([]int64, error) {
	return f.members[playlistId], nil
}

type fakeVideoChecker struct {
	existing map[int64]struct{}
}

func (f *fakeVideoChecker) VideoExists(_ context.Context, vid int64) (bool, error) {
	_, ok := f.existing[vid]
	return ok, nil
}

func playlistFixture() (*PlaylistService, *fakePlaylistStore) {
	store := newFakePlaylistStore()
	store.playlists[10] = &model.Playlist{PlaylistId: 10, UserId: 1, Name: "watch later"}
	videos := &fakeVideoChecker{existing: map[int64]struct{}{100: {}, 101: {}, 102: {}}}
	return NewPlaylistService(store, videos), store
}

func TestCreatePlaylistRequiresName(t *testing.T) {
	svc, _ := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	_, err := svc.CreatePlaylist(context.Background(), actor, "   ", "desc")
	assert.ErrorIs(t, err, errno.RequestErr)

	playlist, err := svc.CreatePlaylist(context.Background(), actor, " favorites ", "")
	require.NoError(t, err)
	assert.Equal(t, "favorites", playlist.Name)
	assert.Equal(t, int64(1), playlist.UserId)
}

func TestAddVideoStrictSet(t *testing.T) {
	svc, _ := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	info, err := svc.AddVideo(context.Background(), actor, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, info.VideoIds)

	// a second add of the same video is a conflict, not a no-op
	_, err = svc.AddVideo(context.Background(), actor, 10, 100)
	assert.ErrorIs(t, err, errno.ConflictErr)
}

func TestAddVideoChecks(t *testing.T) {
	svc, _ := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	_, err := svc.AddVideo(context.Background(), actor, 10, 999)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	_, err = svc.AddVideo(context.Background(), actor, 999, 100)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	_, err = svc.AddVideo(context.Background(), &identity.Identity{UserID: 2}, 10, 100)
	assert.ErrorIs(t, err, errno.ForbiddenErr)
}

func TestRemoveVideoStrictSet(t *testing.T) {
	svc, _ := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	_, err := svc.AddVideo(context.Background(), actor, 10, 100)
	require.NoError(t, err)

	// removing a non-member is rejected
	_, err = svc.RemoveVideo(context.Background(), actor, 10, 101)
	assert.ErrorIs(t, err, errno.RequestErr)

	info, err := svc.RemoveVideo(context.Background(), actor, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, info.VideoIds)
}

func TestRemoveVideoKeepsOrder(t *testing.T) {
	svc, _ := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	for _, vid := range []int64{100, 101, 102} {
		_, err := svc.AddVideo(context.Background(), actor, 10, vid)
		require.NoError(t, err)
	}

	info, err := svc.RemoveVideo(context.Background(), actor, 10, 101)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 102}, info.VideoIds)
}

func TestUpdatePlaylistNothingToUpdate(t *testing.T) {
	svc, _ := playlistFixture()

	_, err := svc.UpdatePlaylist(context.Background(), &identity.Identity{UserID: 1}, 10, "  ", "")
	assert.ErrorIs(t, err, errno.RequestErr)
}

func TestUpdatePlaylistOwnerOnly(t *testing.T) {
	svc, store := playlistFixture()

	_, err := svc.UpdatePlaylist(context.Background(), &identity.Identity{UserID: 2}, 10, "mine now", "")
	assert.ErrorIs(t, err, errno.ForbiddenErr)

	updated, err := svc.UpdatePlaylist(context.Background(), &identity.Identity{UserID: 1}, 10, "renamed", "")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "renamed", store.playlists[10].Name)
}

func TestDeletePlaylistRemovesMembers(t *testing.T) {
	svc, store := playlistFixture()
	actor := &identity.Identity{UserID: 1}

	_, err := svc.AddVideo(context.Background(), actor, 10, 100)
	require.NoError(t, err)

	err = svc.DeletePlaylist(context.Background(), actor, 10)
	require.NoError(t, err)
	assert.Empty(t, store.playlists)
	assert.Empty(t, store.members)
}

func TestGetPlaylistMissing(t *testing.T) {
	svc, _ := playlistFixture()

	_, err := svc.GetPlaylistById(context.Background(), 404)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
