package middleware

import (
	"context"
	"net/http"
	"strings"

	ctxutil "github.com/TurboProjects/Notes-App-Challenge/pkg/context"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/jwt"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/log"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgTokenInvalid = "Given token not valid for any token type"
	MsgTokenRevoked = "Token is blacklisted"
)

// TokenChecker reports whether a token id was revoked by logout.
type TokenChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// Auth 校验 Bearer access token，通过后在上下文写入 user_id
func Auth(secret []byte, tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, response.MsgNotAuthenticated)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}
		if tokens != nil && tokens.IsRevoked(c.Request.Context(), claims.ID) {
			response.Abort(c, http.StatusUnauthorized, MsgTokenRevoked)
			return
		}

		c.Set(ctxutil.CtxUserID, claims.UserID)
		c.Set(ctxutil.CtxTokenID, claims.ID)
		c.Set(ctxutil.CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}
