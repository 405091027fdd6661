package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// InsertLike creates the engagement edge. It reports false when the
// unique (user, kind, target) index already holds the edge — a
// concurrent toggle won the race and the edge exists.
func (r *LikeRepo) InsertLike(ctx context.Context, like *model.Like) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "InsertLike failed, user_id=%d target=%s/%d",
			like.UserId, like.TargetKind, like.TargetId)
	}
	return result.RowsAffected > 0, nil
}

// DeleteLike removes the edge, reporting whether a row was actually
// deleted.
func (r *LikeRepo) DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteLike failed, user_id=%d target=%s/%d",
			userId, targetKind, targetId)
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepo) LikeExists(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "LikeExists failed")
	}
	return count > 0, nil
}

// ListLikedVideoIds returns the caller's liked video ids, most recent
// like first.
func (r *LikeRepo) ListLikedVideoIds(ctx context.Context, userId int64, page query.Page) ([]int64, error) {
	list := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userId, model.TargetVideo).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Select("target_id").Scan(&list).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListLikedVideoIds failed, user_id=%d", userId)
	}
	return list, nil
}

// CountLikesForVideoOwner counts likes whose target video belongs to
// ownerId. The join through videos drops likes orphaned by video
// deletion.
func (r *LikeRepo) CountLikesForVideoOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.target_id").
		Where("likes.target_kind = ? AND videos.user_id = ?", model.TargetVideo, ownerId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountLikesForVideoOwner failed, owner_id=%d", ownerId)
	}
	return count, nil
}
