package handler

import (
	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/middleware"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/context"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/service"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/gin-gonic/gin"
)

const MsgRegistered = "User registered successfully"

type User struct {
	Config      *config.Config
	Tokens      *cache.TokenStorage
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.Tokens)
	g := r.Group("/v1/users")
	g.POST("/register/", context.Wrap(u.Register))
	g.POST("/", context.Wrap(u.Create))
	g.GET("/me/", authorize, context.Wrap(u.Me))
	g.GET("/:id/", authorize, context.Wrap(u.Get))
	g.PUT("/:id/", authorize, context.Wrap(u.Update))
}

// Register 注册，返回用户信息和提示
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, types.RegisterResponse{User: user, Message: MsgRegistered})
	return nil
}

// Create is Register returning the bare user.
func (u *User) Create(c *gin.Context) error {
	var req types.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, user)
	return nil
}

func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := u.UserService.Get(c.Request.Context(), userID, userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := u.UserService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := u.UserService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
