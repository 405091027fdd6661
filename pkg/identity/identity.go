package identity

import (
	"VidTube.com/pkg/errno"
)

// Identity is the authenticated caller as resolved by the outer auth
// layer. Core services receive it explicitly; a nil *Identity means
// the request carried no usable credentials.
type Identity struct {
	UserID   int64
	Username string
}

// Authorize decides whether actor may mutate a resource owned by
// ownerID. Pure check, no I/O: nil actor is unauthenticated, a
// non-owner is forbidden.
func Authorize(actor *Identity, ownerID int64) error {
	if actor == nil {
		return errno.AuthErr
	}
	if actor.UserID != ownerID {
		return errno.ForbiddenErr
	}
	return nil
}

// Require returns AuthErr when no identity is present. Used by
// operations that need a caller but no ownership check.
func Require(actor *Identity) error {
	if actor == nil {
		return errno.AuthErr
	}
	return nil
}
