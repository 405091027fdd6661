package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byId   map[int64]*model.User
	byName map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byId:   make(map[int64]*model.User),
		byName: make(map[string]*model.User),
	}
}

func (f *fakeUserStore) InsertUser(_ context.Context, u *model.User) error {
	f.byId[u.UserId] = u
	f.byName[u.Username] = u
	return nil
}

func (f *fakeUserStore) FindUserById(_ context.Context, id int64) (*model.User, error) {
	return f.byId[id], nil
}

func (f *fakeUserStore) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	return f.byName[username], nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Username: " alice ",
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	actor, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.UserId, actor.UserID)
	assert.Equal(t, "alice", actor.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	req := &RegisterRequest{Username: "alice", Email: "a@example.com", Password: "pw"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, errno.ConflictErr)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register(context.Background(), &RegisterRequest{Username: " ", Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, errno.RequestErr)

	_, err = svc.Register(context.Background(), &RegisterRequest{Username: "bob", Email: "", Password: "pw"})
	assert.ErrorIs(t, err, errno.RequestErr)

	_, err = svc.Register(context.Background(), &RegisterRequest{Username: "bob", Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, errno.RequestErr)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	_, err := svc.Register(context.Background(), &RegisterRequest{Username: "alice", Email: "a@b.c", Password: "s3cret"})
	require.NoError(t, err)

	// unknown user and wrong password look the same to the caller
	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, errno.AuthErr)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, errno.AuthErr)
}

func TestGetUserInfo(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	store.byId[7] = &model.User{UserId: 7, Username: "carol", Password: "hashed"}

	info, err := svc.GetUserInfo(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "carol", info.Username)

	_, err = svc.GetUserInfo(context.Background(), 404)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
