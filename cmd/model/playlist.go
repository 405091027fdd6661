package model

import "time"

type Playlist struct {
	PlaylistId  int64  `gorm:"column:playlist_id;primaryKey"`
	UserId      int64  `gorm:"column:user_id;index:idx_playlists_user"`
	Name        string `gorm:"column:name;size:120"`
	Description string `gorm:"column:description;size:1024"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo is one membership row. Position preserves insertion
// order; the unique index makes membership a strict set.
type PlaylistVideo struct {
	PlaylistVideoId int64 `gorm:"column:playlist_video_id;primaryKey"`
	PlaylistId      int64 `gorm:"column:playlist_id;uniqueIndex:uk_playlist_video,priority:1"`
	VideoId         int64 `gorm:"column:video_id;uniqueIndex:uk_playlist_video,priority:2"`
	Position        int64 `gorm:"column:position"`
	CreatedAt       time.Time
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
