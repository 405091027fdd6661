package jwt

import (
	"context"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/identity"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const (
	identityKey = "user_id"
	usernameKey = "username"
)

// AuthenticateFunc checks credentials against the account store and
// returns the caller identity. Injected to keep this package free of
// storage imports.
type AuthenticateFunc func(ctx context.Context, username, password string) (*identity.Identity, error)

type loginParam struct {
	Username string `form:"username" json:"username" vd:"len($)>0"`
	Password string `form:"password" json:"password" vd:"len($)>0"`
}

// New builds the hertz jwt middleware that turns a valid token into
// the explicit identity value the core services consume.
func New(authenticate AuthenticateFunc) (*jwt.HertzJWTMiddleware, error) {
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "vidtube",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: identityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*identity.Identity); ok {
				return jwt.MapClaims{
					identityKey: v.UserID,
					usernameKey: v.Username,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			uid, ok := claims[identityKey].(float64)
			if !ok {
				return nil
			}
			username, _ := claims[usernameKey].(string)
			return &identity.Identity{UserID: int64(uid), Username: username}
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var login loginParam
			if err := c.BindAndValidate(&login); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}
			actor, err := authenticate(ctx, login.Username, login.Password)
			if err != nil {
				return nil, jwt.ErrFailedAuthentication
			}
			return actor, nil
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthErrCode,
				"message": message,
			})
		},
		TokenLookup:   "header: Authorization, cookie: access_token",
		TokenHeadName: "Bearer",
	})
}

// FromRequestContext extracts the authenticated identity placed by the
// middleware; nil when the request is unauthenticated.
func FromRequestContext(c *app.RequestContext) *identity.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	actor, ok := v.(*identity.Identity)
	if !ok {
		return nil
	}
	return actor
}
