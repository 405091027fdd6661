package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"VidTube.com/pkg/utils"
)

type UserStore interface {
	InsertUser(ctx context.Context, user *model.User) error
	FindUserById(ctx context.Context, userId int64) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
	FullName string
}

func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.UserSummary, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("username, email and password are required")
	}

	existing, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if existing != nil {
		return nil, errno.ConflictErr.WithMessage("username is taken")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("password hashing failed")
	}
	user := &model.User{
		UserId:    utils.NewID(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		FullName:  strings.TrimSpace(req.FullName),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.users.InsertUser(ctx, user); err != nil {
		return nil, errno.FromStoreWrite(err)
	}
	return user.Summary(), nil
}

// Login checks credentials and returns the authenticated identity.
// Unknown username and wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*identity.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errno.RequestErr.WithMessage("username and password are required")
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if user == nil || !utils.VerifyPassword(user.Password, password) {
		return nil, errno.AuthErr.WithMessage("invalid credentials")
	}
	return &identity.Identity{UserID: user.UserId, Username: user.Username}, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, userId int64) (*model.UserSummary, error) {
	if userId <= 0 {
		return nil, errno.RequestErr.WithMessage("user id is required")
	}
	user, err := s.users.FindUserById(ctx, userId)
	if err != nil {
		return nil, errno.FromStoreRead(err)
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	return user.Summary(), nil
}
