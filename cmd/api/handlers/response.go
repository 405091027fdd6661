package handlers

import (
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SendResponse writes the uniform envelope. The errno code picks the
// HTTP status; an indeterminate write is reported as a gateway timeout
// so clients know not to trust either outcome.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	e := errno.ConvertErr(err)
	c.JSON(httpStatus(e.ErrCode), Response{
		Code:    e.ErrCode,
		Message: e.ErrMsg,
		Data:    data,
	})
}

func httpStatus(code int64) int {
	switch code {
	case errno.SuccessCode:
		return consts.StatusOK
	case errno.RequestErrCode:
		return consts.StatusBadRequest
	case errno.AuthErrCode, errno.TokenInvalidErrCode:
		return consts.StatusUnauthorized
	case errno.ForbiddenErrCode:
		return consts.StatusForbidden
	case errno.NotFoundErrCode:
		return consts.StatusNotFound
	case errno.ConflictErrCode:
		return consts.StatusConflict
	case errno.WriteIndeterminateCode:
		return consts.StatusGatewayTimeout
	case errno.DBErrCode, errno.RedisErrCode, errno.OssErrCode, errno.MqErrCode:
		return consts.StatusBadGateway
	default:
		return consts.StatusInternalServerError
	}
}
