package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) InsertComment(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "InsertComment failed, comment_id=%d", comment.CommentId)
	}
	return nil
}

func (r *CommentRepo) FindCommentById(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindCommentById failed, comment_id=%d", commentId)
	}
	return &comment, nil
}

func (r *CommentRepo) ListVideoComments(ctx context.Context, videoId int64, page query.Page) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListVideoComments failed, video_id=%d", videoId)
	}
	return comments, nil
}

func (r *CommentRepo) UpdateCommentContent(ctx context.Context, commentId int64, content string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).
		Update("content", content)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "UpdateCommentContent failed, comment_id=%d", commentId)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepo) DeleteComment(ctx context.Context, commentId int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "DeleteComment failed, comment_id=%d", commentId)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepo) CommentExists(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CommentExists failed, comment_id=%d", commentId)
	}
	return count > 0, nil
}
