package errno

import (
	"context"
	"errors"
	"fmt"
)

const (
	SuccessCode            int64 = 0
	ServiceErrCode         int64 = 10001
	RequestErrCode         int64 = 10002
	AuthErrCode            int64 = 10003
	ForbiddenErrCode       int64 = 10004
	NotFoundErrCode        int64 = 10005
	ConflictErrCode        int64 = 10006
	DBErrCode              int64 = 10007
	RedisErrCode           int64 = 10008
	OssErrCode             int64 = 10009
	MqErrCode              int64 = 10010
	TokenInvalidErrCode    int64 = 10011
	WriteIndeterminateCode int64 = 10012
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage keeps the code and replaces the message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service internal error")
	RequestErr = NewErrNo(RequestErrCode, "Invalid request")
	// AuthErr means no identity was presented where one is required.
	AuthErr = NewErrNo(AuthErrCode, "Unauthenticated request")
	// ForbiddenErr means an identity was presented but is not allowed
	// to act on the resource.
	ForbiddenErr    = NewErrNo(ForbiddenErrCode, "Operation not allowed")
	NotFoundErr     = NewErrNo(NotFoundErrCode, "Resource not found")
	ConflictErr     = NewErrNo(ConflictErrCode, "Resource conflict")
	DBErr           = NewErrNo(DBErrCode, "Database error")
	RedisErr        = NewErrNo(RedisErrCode, "Redis error")
	OssErr          = NewErrNo(OssErrCode, "Object storage error")
	MqErr           = NewErrNo(MqErrCode, "Message queue error")
	TokenInvalidErr = NewErrNo(TokenInvalidErrCode, "Token invalid or expired")
	// WriteIndeterminateErr reports a write whose outcome is unknown
	// (cancelled or timed out mid-flight); callers must not trust any
	// state derived from it.
	WriteIndeterminateErr = NewErrNo(WriteIndeterminateCode, "Write outcome unknown")
)

// ConvertErr converts a plain error to ErrNo. ErrNo values pass
// through unchanged; context deadline/cancel map to an indeterminate
// write; anything else becomes ServiceErr with the cause attached.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return WriteIndeterminateErr
	}
	return ServiceErr.WithMessage(err.Error())
}

// FromStoreRead maps a store read failure to a retryable upstream
// error. Reads are side-effect free, so even a deadline is safe to
// retry.
func FromStoreRead(err error) ErrNo {
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return DBErr.WithMessage(err.Error())
}

// FromStoreWrite maps a store write failure. Deadline/cancellation
// means the write may or may not have landed, which callers must be
// told apart from a definite failure.
func FromStoreWrite(err error) ErrNo {
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return WriteIndeterminateErr
	}
	return DBErr.WithMessage(err.Error())
}

// Is lets errors.Is match two ErrNo values by code, so wrapped
// sentinels still compare.
func (e ErrNo) Is(target error) bool {
	var t ErrNo
	if errors.As(target, &t) {
		return e.ErrCode == t.ErrCode
	}
	return false
}
