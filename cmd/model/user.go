package model

import "time"

type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey"`
	Username  string `gorm:"column:username;size:64;uniqueIndex:uk_users_username"`
	Email     string `gorm:"column:email;size:128;uniqueIndex:uk_users_email"`
	Password  string `gorm:"column:password;size:128"`
	FullName  string `gorm:"column:full_name;size:128"`
	AvatarUrl string `gorm:"column:avatar_url;size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// UserSummary is the projection attached to listings (comment owners,
// subscriber lists); never carries credentials.
type UserSummary struct {
	UserId    int64  `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		UserId:    u.UserId,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}
