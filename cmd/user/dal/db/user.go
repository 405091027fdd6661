package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) InsertUser(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "InsertUser failed, username=%s", user.Username)
	}
	return nil
}

func (r *UserRepo) FindUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindUserById failed, user_id=%d", userId)
	}
	return &user, nil
}

func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "FindUserByUsername failed, username=%s", username)
	}
	return &user, nil
}

func (r *UserRepo) UserExists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "UserExists failed, user_id=%d", userId)
	}
	return count > 0, nil
}

// FindSummariesByIds returns projections for listing enrichment, keyed
// by user id.
func (r *UserRepo) FindSummariesByIds(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	summaries := make(map[int64]*model.UserSummary, len(userIds))
	if len(userIds) == 0 {
		return summaries, nil
	}
	var users []*model.User
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "FindSummariesByIds failed")
	}
	for _, u := range users {
		summaries[u.UserId] = u.Summary()
	}
	return summaries, nil
}
