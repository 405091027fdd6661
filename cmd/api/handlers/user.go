package handlers

import (
	"context"

	usersvc "VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type registerParam struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	FullName string `form:"full_name" json:"full_name"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var param registerParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.RequestErr.WithMessage(err.Error()), nil)
		return
	}
	user, err := userService.Register(ctx, &usersvc.RegisterRequest{
		Username: param.Username,
		Email:    param.Email,
		Password: param.Password,
		FullName: param.FullName,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	user, err := userService.GetUserInfo(ctx, pathID(c, "user_id"))
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, nil, user)
}
