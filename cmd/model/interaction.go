package model

import "time"

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey"`
	VideoId   int64  `gorm:"column:video_id;index:idx_comments_video"`
	UserId    int64  `gorm:"column:user_id;index:idx_comments_user"`
	Content   string `gorm:"column:content;size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }

// Target kinds for engagement edges. A Like points at exactly one of
// these; the triple (user, kind, target) is unique.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

type Like struct {
	LikeId     int64  `gorm:"column:like_id;primaryKey"`
	UserId     int64  `gorm:"column:user_id;uniqueIndex:uk_likes_edge,priority:1"`
	TargetKind string `gorm:"column:target_kind;size:16;uniqueIndex:uk_likes_edge,priority:2"`
	TargetId   int64  `gorm:"column:target_id;uniqueIndex:uk_likes_edge,priority:3"`
	CreatedAt  time.Time
}

func (Like) TableName() string { return "likes" }
