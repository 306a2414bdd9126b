package handler

import (
	"time"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/middleware"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/context"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/service"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	Tokens      *cache.TokenStorage
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), a.Tokens)
	g := r.Group("/v1/auth")
	g.POST("/token/", context.Wrap(a.Token))
	g.POST("/token/refresh/", context.Wrap(a.Refresh))
	g.POST("/logout/", authorize, context.Wrap(a.Logout))
}

// Token 登录
func (a *Auth) Token(c *gin.Context) error {
	var req types.TokenRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	pair, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	access, err := a.AuthService.Refresh(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.RefreshResponse{Access: access})
	return nil
}

// Logout 注销当前 access token，可选同时注销 refresh token
func (a *Auth) Logout(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.LogoutRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	exp, _ := c.Get(context.CtxTokenExp)
	expiresAt, _ := exp.(time.Time)
	if err := a.AuthService.Logout(c.Request.Context(), userID, c.GetString(context.CtxTokenID), expiresAt, &req); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
