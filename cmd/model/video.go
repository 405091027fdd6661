package model

import "time"

type Video struct {
	VideoId     int64   `gorm:"column:video_id;primaryKey"`
	UserId      int64   `gorm:"column:user_id;index:idx_videos_user"`
	Title       string  `gorm:"column:title;size:120"`
	Description string  `gorm:"column:description;size:2048"`
	VideoUrl    string  `gorm:"column:video_url;size:256"`
	CoverUrl    string  `gorm:"column:cover_url;size:256"`
	Duration    float64 `gorm:"column:duration"`
	ViewCount   int64   `gorm:"column:view_count"`
	IsPublished bool    `gorm:"column:is_published;index:idx_videos_published"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Video) TableName() string { return "videos" }
