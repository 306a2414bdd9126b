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

type Category struct {
	Config          *config.Config
	Tokens          *cache.TokenStorage
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Tokens)
	g := r.Group("/v1/categories", authorize)
	g.GET("/", context.Wrap(h.List))
	g.POST("/", context.Wrap(h.Create))
	g.GET("/:id/", context.Wrap(h.Get))
	g.PUT("/:id/", context.Wrap(h.Update))
	g.DELETE("/:id/", context.Wrap(h.Delete))
}

// List 分类列表，不分页
func (h *Category) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	categories, err := h.CategoryService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	category, err := h.CategoryService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}

// Create 创建分类
func (h *Category) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	category, err := h.CategoryService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, category)
	return nil
}

func (h *Category) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	category, err := h.CategoryService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}

func (h *Category) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.CategoryService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
