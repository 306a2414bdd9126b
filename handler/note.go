package handler

import (
	"net/http"
	"strconv"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/middleware"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/context"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/utils"
	"github.com/TurboProjects/Notes-App-Challenge/service"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Config      *config.Config
	Tokens      *cache.TokenStorage
	NoteService service.INoteService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret), n.Tokens)
	g := r.Group("/v1/notes", authorize)
	g.GET("/", context.Wrap(n.List))
	g.POST("/", context.Wrap(n.Create))
	g.GET("/:id/", context.Wrap(n.Get))
	g.PUT("/:id/", context.Wrap(n.Update))
	g.DELETE("/:id/", context.Wrap(n.Delete))
	g.GET("/:id/render/", context.Wrap(n.Render))
}

func parseListNotes(c *gin.Context) (*types.ListNotesRequest, error) {
	req := &types.ListNotesRequest{
		Page:     types.DefaultPage,
		PageSize: types.DefaultPageSize,
	}

	if v, ok := c.GetQuery("category_id"); ok {
		id, valid := utils.ParseID(v)
		if !valid {
			return nil, response.NotFound()
		}
		req.CategoryID = &id
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return nil, response.NewError(http.StatusNotFound, response.MsgInvalidPage)
		}
		req.Page = page
	}

	if v := c.Query("page_size"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			req.PageSize = min(size, types.MaxPageSize)
		}
	}
	return req, nil
}

// pageLinks builds absolute next/previous links from the current request URL.
func pageLinks(c *gin.Context, page, size int, total int64) (next, previous *string) {
	base := *c.Request.URL
	base.Scheme = "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		base.Scheme = "https"
	}
	base.Host = c.Request.Host

	if int64(page*size) < total {
		u := utils.PageURL(base, page+1)
		next = &u
	}
	if page > 1 {
		u := utils.PageURL(base, page-1)
		previous = &u
	}
	return next, previous
}

// List 分页查询自己的笔记，可按 category_id 过滤
func (n *Note) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	req, err := parseListNotes(c)
	if err != nil {
		return err
	}

	notes, total, err := n.NoteService.List(c.Request.Context(), userID, req)
	if err != nil {
		return err
	}

	next, previous := pageLinks(c, req.Page, req.PageSize, total)
	response.Success(c, types.NotePage{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  notes,
	})
	return nil
}

func (n *Note) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	note, err := n.NoteService.Get(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

// Create 创建笔记
func (n *Note) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.NoteRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	note, err := n.NoteService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, note)
	return nil
}

func (n *Note) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req types.NoteRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	note, err := n.NoteService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, note)
	return nil
}

func (n *Note) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := n.NoteService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// Render 返回 Markdown 渲染后的 HTML
func (n *Note) Render(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	rendered, err := n.NoteService.Render(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, rendered)
	return nil
}
