package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/utils"
)

type PlaylistStore interface {
	InsertPlaylist(ctx context.Context, playlist *model.Playlist) error
	FindPlaylistById(ctx context.Context, playlistId int64) (*model.Playlist, error)
	ListUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error)
	UpdatePlaylistFields(ctx context.Context, playlistId int64, fields map[string]interface{}) (int64, error)
	DeletePlaylist(ctx context.Context, playlistId int64) (int64, error)
	InsertMember(ctx context.Context, member *model.PlaylistVideo) (bool, error)
	DeleteMember(ctx context.Context, playlistId, videoId int64) (bool, error)
	ListMemberVideoIds(ctx context.Context, playlistId int64) ([]int64, error)
}

type VideoChecker interface {
	VideoExists(ctx context.Context, videoId int64) (bool, error)
}

// PlaylistInfo carries the playlist with its member video ids in
// playlist order.
type PlaylistInfo struct {
	*model.Playlist
	VideoIds []int64 `json:"video_ids"`
}

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoChecker
}

func NewPlaylistService(playlists PlaylistStore, videos VideoChecker) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, actor *identity.Identity, name, description string) (*model.Playlist, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("name is required")
	}
	if len(name) > constants.MaxTitleLength {
		return nil, errno.RequestErr.WithMessage("name is too long")
	}

	playlist := &model.Playlist{
		PlaylistId:  utils.NewID(),
		UserId:      actor.UserID,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.playlists.InsertPlaylist(ctx, playlist); err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	return playlist, nil
}

func (s *PlaylistService) GetPlaylistById(ctx context.Context, playlistId int64) (*PlaylistInfo, error) {
	if playlistId <= 0 {
		return nil, errno.RequestErr.WithMessage("playlist id is required")
	}
	playlist, err := s.playlists.FindPlaylistById(ctx, playlistId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	return s.withMembers(ctx, playlist)
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	if userId <= 0 {
		return nil, errno.RequestErr.WithMessage("user id is required")
	}
	playlists, err := s.playlists.ListUserPlaylists(ctx, userId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return playlists, nil
}

// UpdatePlaylist changes name and/or description. At least one
// non-blank field is required.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, actor *identity.Identity, playlistId int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, actor, playlistId)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, 2)
	if name = strings.TrimSpace(name); name != "" {
		if len(name) > constants.MaxTitleLength {
			return nil, errno.RequestErr.WithMessage("name is too long")
		}
		fields["name"] = name
		playlist.Name = name
	}
	if description = strings.TrimSpace(description); description != "" {
		fields["description"] = description
		playlist.Description = description
	}
	if len(fields) == 0 {
		return nil, errno.RequestErr.WithMessage("nothing to update")
	}

	rows, err := s.playlists.UpdatePlaylistFields(ctx, playlistId, fields)
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	playlist.UpdatedAt = time.Now()
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, actor *identity.Identity, playlistId int64) error {
	if _, err := s.ownedPlaylist(ctx, actor, playlistId); err != nil {
		return err
	}
	rows, err := s.playlists.DeletePlaylist(ctx, playlistId)
	if err != nil {
		return errno.FromStoreWrite(err)
	}
	if rows == 0 {
		return errno.NotFoundErr.WithMessage("playlist not found")
	}
	return nil
}

// AddVideo appends a video to the playlist. Membership is a strict
// set: adding a video already present is a conflict.
func (s *PlaylistService) AddVideo(ctx context.Context, actor *identity.Identity, playlistId, videoId int64) (*PlaylistInfo, error) {
	playlist, err := s.ownedPlaylist(ctx, actor, playlistId)
	if err != nil {
		return nil, err
	}
	if videoId <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}
	exists, err := s.videos.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	inserted, err := s.playlists.InsertMember(ctx, &model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if !inserted {
		return nil, errno.ConflictErr.WithMessage("video is already in the playlist")
	}
	return s.withMembers(ctx, playlist)
}

// RemoveVideo drops a video from the playlist. Removing a video that
// is not a member is rejected rather than treated as a no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, actor *identity.Identity, playlistId, videoId int64) (*PlaylistInfo, error) {
	playlist, err := s.ownedPlaylist(ctx, actor, playlistId)
	if err != nil {
		return nil, err
	}
	if videoId <= 0 {
		return nil, errno.RequestErr.WithMessage("video id is required")
	}

	removed, err := s.playlists.DeleteMember(ctx, playlistId, videoId)
	if err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	if !removed {
		return nil, errno.RequestErr.WithMessage("video is not in the playlist")
	}
	return s.withMembers(ctx, playlist)
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, actor *identity.Identity, playlistId int64) (*model.Playlist, error) {
	if err := identity.Require(actor); err != nil {
		return nil, err
	}
	if playlistId <= 0 {
		return nil, errno.RequestErr.WithMessage("playlist id is required")
	}
	playlist, err := s.playlists.FindPlaylistById(ctx, playlistId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if playlist == nil {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	if err := identity.Authorize(actor, playlist.UserId); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) withMembers(ctx context.Context, playlist *model.Playlist) (*PlaylistInfo, error) {
	videoIds, err := s.playlists.ListMemberVideoIds(ctx, playlist.PlaylistId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	return &PlaylistInfo{Playlist: playlist, VideoIds: videoIds}, nil
}
