package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) InsertVideo(ctx context.Context, video *model.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, video_id=%d", video.VideoId)
	}
	return nil
}

// FindVideoById returns the video regardless of publish state, or nil
// when it does not exist.
func (r *VideoRepo) FindVideoById(ctx context.Context, vid int64) (*model.Video, error) {
	var video model.Video
	err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindVideoById failed, video_id=%d", vid)
	}
	return &video, nil
}

func (r *VideoRepo) VideoExists(ctx context.Context, vid int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "VideoExists failed, video_id=%d", vid)
	}
	return count > 0, nil
}

// SearchVideos composes the published-only filter, the optional owner
// equality, and the optional keyword OR-match over title/description
// into one page-bounded query.
func (r *VideoRepo) SearchVideos(ctx context.Context, filter query.VideoFilter, sort query.Sort, page query.Page) ([]*model.Video, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if filter.OwnerID != 0 {
		tx = tx.Where("user_id = ?", filter.OwnerID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		tx = tx.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "SearchVideos count failed")
	}

	var videos []*model.Video
	err := tx.Order(sort.OrderClause()).
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "SearchVideos failed")
	}
	return videos, count, nil
}

func (r *VideoRepo) ListUserPublishedVideos(ctx context.Context, userId int64, page query.Page) ([]*model.Video, error) {
	var videos []*model.Video
	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ?", userId, true).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListUserPublishedVideos failed, user_id=%d", userId)
	}
	return videos, nil
}

func (r *VideoRepo) FindVideosByIds(ctx context.Context, vids []int64) ([]*model.Video, error) {
	if len(vids) == 0 {
		return nil, nil
	}
	var videos []*model.Video
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", vids).Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "FindVideosByIds failed")
	}
	return videos, nil
}

// UpdateVideoFields applies only the provided columns. Zero rows
// affected means the row vanished between check and write.
func (r *VideoRepo) UpdateVideoFields(ctx context.Context, vid int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).Updates(fields)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "UpdateVideoFields failed, video_id=%d", vid)
	}
	return result.RowsAffected, nil
}

func (r *VideoRepo) SetPublished(ctx context.Context, vid int64, published bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).Update("is_published", published)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "SetPublished failed, video_id=%d", vid)
	}
	return result.RowsAffected, nil
}

func (r *VideoRepo) DeleteVideo(ctx context.Context, vid int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("video_id = ?", vid).Delete(&model.Video{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteVideo failed, video_id=%d", vid)
	}
	return result.RowsAffected, nil
}

func (r *VideoRepo) IncrViewCount(ctx context.Context, vid int64, delta int64) error {
	err := r.db.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", vid).
		Update("view_count", gorm.Expr("view_count + ?", delta)).Error
	if err != nil {
		return errors.Wrapf(err, "IncrViewCount failed, video_id=%d", vid)
	}
	return nil
}

// Channel aggregates, each an independent single-pass query.

func (r *VideoRepo) CountPublishedByUser(ctx context.Context, userId int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ?", userId, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountPublishedByUser failed, user_id=%d", userId)
	}
	return count, nil
}

func (r *VideoRepo) SumViewsByUser(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ?", userId, true).
		Select("SUM(view_count)").Scan(&total).Error
	if err != nil {
		return 0, errors.Wrapf(err, "SumViewsByUser failed, user_id=%d", userId)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
