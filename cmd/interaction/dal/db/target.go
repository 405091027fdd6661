package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TargetCheckRepo answers "does this like target exist" across the
// three target tables.
type TargetCheckRepo struct {
	db *gorm.DB
}

func NewTargetCheckRepo(db *gorm.DB) *TargetCheckRepo {
	return &TargetCheckRepo{db: db}
}

func (r *TargetCheckRepo) TargetExists(ctx context.Context, targetKind string, targetId int64) (bool, error) {
	var m interface{}
	switch targetKind {
	case model.TargetVideo:
		m = &model.Video{}
	case model.TargetComment:
		m = &model.Comment{}
	case model.TargetTweet:
		m = &model.Tweet{}
	default:
		return false, errno.RequestErr.WithMessage("unknown target kind: " + targetKind)
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(m).Where(idColumn(targetKind)+" = ?", targetId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "TargetExists failed, target=%s/%d", targetKind, targetId)
	}
	return count > 0, nil
}

func idColumn(targetKind string) string {
	switch targetKind {
	case model.TargetVideo:
		return "video_id"
	case model.TargetComment:
		return "comment_id"
	default:
		return "tweet_id"
	}
}
