package jwt

import (
	"context"
	"time"

	"ClipHive.com/pkg/errno"
	"ClipHive.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

// AccessTokenJwt guards every route; the account service issues the tokens,
// this module only verifies them and pulls the viewer id out of the payload.
var AccessTokenJwt *jwt.HertzJWTMiddleware

const identityKey = "user_id"

func AccessTokenJwtInit(secret string) error {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "cliphive",
		Key:         []byte(secret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: identityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[identityKey])
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":    errno.AuthorizationCode,
				"message": message,
			})
		},
	})
	if err != nil {
		return err
	}
	AccessTokenJwt = mw
	return nil
}

// GetUserId returns the authenticated viewer's id for the current request.
func GetUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	claims := jwt.ExtractClaims(ctx, c)
	uid := utils.Transfer(claims[identityKey])
	if uid <= 0 {
		return 0, errno.AuthorizationFailErr
	}
	return uid, nil
}
