package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepo struct {
	db *gorm.DB
}

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

func (r *PlaylistRepo) InsertPlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "InsertPlaylist failed, playlist_id=%d", playlist.PlaylistId)
	}
	return nil
}

func (r *PlaylistRepo) FindPlaylistById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindPlaylistById failed, playlist_id=%d", playlistId)
	}
	return &playlist, nil
}

func (r *PlaylistRepo) ListUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	err := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListUserPlaylists failed, user_id=%d", userId)
	}
	return playlists, nil
}

func (r *PlaylistRepo) UpdatePlaylistFields(ctx context.Context, playlistId int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).
		Updates(fields)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "UpdatePlaylistFields failed, playlist_id=%d", playlistId)
	}
	return result.RowsAffected, nil
}

// DeletePlaylist removes the playlist and its membership rows.
func (r *PlaylistRepo) DeletePlaylist(ctx context.Context, playlistId int64) (int64, error) {
	if err := r.db.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return 0, errors.Wrapf(err, "DeletePlaylist members failed, playlist_id=%d", playlistId)
	}
	result := r.db.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeletePlaylist failed, playlist_id=%d", playlistId)
	}
	return result.RowsAffected, nil
}

// InsertMember appends a membership row at the next position. The
// unique (playlist, video) index turns a duplicate add into a
// zero-rows insert, reported as false.
func (r *PlaylistRepo) InsertMember(ctx context.Context, member *model.PlaylistVideo) (bool, error) {
	var maxPos *int64
	err := r.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", member.PlaylistId).
		Select("MAX(position)").Scan(&maxPos).Error
	if err != nil {
		return false, errors.Wrapf(err, "InsertMember position lookup failed, playlist_id=%d", member.PlaylistId)
	}
	if maxPos != nil {
		member.Position = *maxPos + 1
	} else {
		member.Position = 1
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "InsertMember failed, playlist_id=%d video_id=%d",
			member.PlaylistId, member.VideoId)
	}
	return result.RowsAffected > 0, nil
}

// DeleteMember removes one membership row, reporting whether the video
// was actually a member. Positions of the remaining rows are left
// untouched; relative order is what matters.
func (r *PlaylistRepo) DeleteMember(ctx context.Context, playlistId, videoId int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteMember failed, playlist_id=%d video_id=%d",
			playlistId, videoId)
	}
	return result.RowsAffected > 0, nil
}

// ListMemberVideoIds returns the member video ids in insertion order.
func (r *PlaylistRepo) ListMemberVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("position ASC").
		Select("video_id").Scan(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListMemberVideoIds failed, playlist_id=%d", playlistId)
	}
	return list, nil
}
