package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/models"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/utils"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
)

const MsgInvalidCategory = "Invalid category ID"

// raw HTML in content is dropped by the default renderer
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	List(ctx context.Context, principal int64, req *types.ListNotesRequest) ([]*types.Note, int64, error)
	Get(ctx context.Context, principal, id int64) (*types.Note, error)
	Create(ctx context.Context, principal int64, req *types.NoteRequest) (*types.Note, error)
	Update(ctx context.Context, principal, id int64, req *types.NoteRequest) (*types.Note, error)
	Delete(ctx context.Context, principal, id int64) error
	Render(ctx context.Context, principal, id int64) (*types.RenderedNote, error)
}

type NoteService struct {
	NoteDAO     *dao.NoteDAO
	CategoryDAO *dao.CategoryDAO
}

func (s *NoteService) toDTOs(ctx context.Context, notes ...*models.Note) ([]*types.Note, error) {
	counts, err := s.CategoryDAO.NoteCounts(ctx, utils.NoteCategoryIDs(notes...))
	if err != nil {
		return nil, err
	}
	out := make([]*types.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, utils.ConvertNoteModelToDTO(n, counts))
	}
	return out, nil
}

func (s *NoteService) toDTO(ctx context.Context, n *models.Note) (*types.Note, error) {
	dtos, err := s.toDTOs(ctx, n)
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

func (s *NoteService) find(ctx context.Context, principal, id int64) (*models.Note, error) {
	n, err := s.NoteDAO.FindOwned(ctx, principal, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("find note %d: %w", id, err)
	}
	// FindOwned filters by owner too
	if !OwnsNote(n, principal) {
		return nil, response.NotFound()
	}
	return n, nil
}

// List 分页查询自己的笔记。按分类过滤时分类必须存在且可见，否则 404
func (s *NoteService) List(ctx context.Context, principal int64, req *types.ListNotesRequest) ([]*types.Note, int64, error) {
	if req.CategoryID != nil {
		_, err := findVisibleCategory(ctx, s.CategoryDAO, principal, *req.CategoryID)
		if errors.Is(err, errCategoryNotVisible) {
			return nil, 0, response.NotFound()
		}
		if err != nil {
			return nil, 0, err
		}
	}

	page, size := req.Page, req.PageSize
	if page < 1 {
		page = types.DefaultPage
	}
	if size < 1 {
		size = types.DefaultPageSize
	}
	offset := (page - 1) * size

	notes, total, err := s.NoteDAO.ListOwned(ctx, principal, req.CategoryID, size, offset)
	if err != nil {
		return nil, 0, err
	}
	if page > 1 && int64(offset) >= total {
		return nil, 0, response.NewError(http.StatusNotFound, response.MsgInvalidPage)
	}

	dtos, err := s.toDTOs(ctx, notes...)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func (s *NoteService) Get(ctx context.Context, principal, id int64) (*types.Note, error) {
	n, err := s.find(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, n)
}

// noteInput is a validated NoteRequest. Nil fields were not sent.
type noteInput struct {
	title    *string
	content  *string
	category *models.Category
}

// validate checks title and content and resolves category_id. required says whether
// a missing category_id is an error (create) or means "unchanged" (update).
func (s *NoteService) validate(ctx context.Context, principal int64, req *types.NoteRequest, required bool) (*noteInput, error) {
	errs := validate.FieldErrors{}
	in := &noteInput{}

	if raw := errs.OptionalString("title", req.Title); raw != nil {
		trimmed, err := validate.NonBlank(*raw)
		if !errs.AddError("title", err) && !errs.AddError("title", validate.MaxLength(trimmed, models.NoteTitleMaxLength)) {
			in.title = &trimmed
		}
	}
	in.content = errs.OptionalString("content", req.Content)

	field, msg := utils.ParseIntField(req.CategoryID)
	switch {
	case !field.Present:
		if required {
			errs.Add("category_id", validate.MsgRequired)
		}
	case msg != "":
		errs.Add("category_id", msg)
	default:
		c, err := findVisibleCategory(ctx, s.CategoryDAO, principal, field.Value)
		if errors.Is(err, errCategoryNotVisible) {
			errs.Add("category_id", MsgInvalidCategory)
		} else if err != nil {
			return nil, err
		}
		in.category = c
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

// Create 创建笔记，作者取自当前用户，请求体中的 user_id 会被忽略
func (s *NoteService) Create(ctx context.Context, principal int64, req *types.NoteRequest) (*types.Note, error) {
	in, err := s.validate(ctx, principal, req, true)
	if err != nil {
		return nil, err
	}

	n := models.NewNote(principal, in.title, in.content, &in.category.ID)
	if err := s.NoteDAO.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	n.Category = in.category
	return s.toDTO(ctx, n)
}

// Update only touches title, content and, when given, the category.
func (s *NoteService) Update(ctx context.Context, principal, id int64, req *types.NoteRequest) (*types.Note, error) {
	n, err := s.find(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	in, err := s.validate(ctx, principal, req, false)
	if err != nil {
		return nil, err
	}

	if in.title != nil {
		n.Title = *in.title
	}
	if in.content != nil {
		n.Content = *in.content
	}
	if in.category != nil {
		n.CategoryID = &in.category.ID
		n.Category = in.category
	}

	if err := s.NoteDAO.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}
	return s.toDTO(ctx, n)
}

func (s *NoteService) Delete(ctx context.Context, principal, id int64) error {
	err := s.NoteDAO.Delete(ctx, principal, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound()
	}
	return err
}

// Render 将笔记内容按 Markdown 渲染为 HTML
func (s *NoteService) Render(ctx context.Context, principal, id int64) (*types.RenderedNote, error) {
	n, err := s.find(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(n.Content), &buf); err != nil {
		return nil, fmt.Errorf("render note %d: %w", id, err)
	}
	return &types.RenderedNote{ID: n.ID, Title: n.Title, HTML: buf.String()}, nil
}
