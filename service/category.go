package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/models"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/log"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/utils"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MsgCategoryExists = "Category with this name already exists"

var errCategoryNotVisible = errors.New("category not visible")

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	List(ctx context.Context, principal int64) ([]*types.Category, error)
	Get(ctx context.Context, principal, id int64) (*types.Category, error)
	Create(ctx context.Context, principal int64, req *types.CategoryRequest) (*types.Category, error)
	Update(ctx context.Context, principal, id int64, req *types.CategoryRequest) (*types.Category, error)
	Delete(ctx context.Context, principal, id int64) error
	Seed(ctx context.Context, categories []config.SeedCategory) (int, error)
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
}

// findVisibleCategory returns errCategoryNotVisible both for a missing id and
// for another user's category.
func findVisibleCategory(ctx context.Context, d *dao.CategoryDAO, principal, id int64) (*models.Category, error) {
	c, err := d.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errCategoryNotVisible
	}
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	if !IsVisible(c, principal) {
		return nil, errCategoryNotVisible
	}
	return c, nil
}

func (s *CategoryService) find(ctx context.Context, principal, id int64) (*models.Category, error) {
	c, err := findVisibleCategory(ctx, s.CategoryDAO, principal, id)
	if errors.Is(err, errCategoryNotVisible) {
		return nil, response.NotFound()
	}
	return c, err
}

func (s *CategoryService) toDTO(ctx context.Context, c *models.Category) (*types.Category, error) {
	counts, err := s.CategoryDAO.NoteCounts(ctx, []int64{c.ID})
	if err != nil {
		return nil, err
	}
	return utils.ConvertCategoryModelToDTO(c, counts), nil
}

// List 全局分类加自己的分类，不分页
func (s *CategoryService) List(ctx context.Context, principal int64) ([]*types.Category, error) {
	categories, err := s.CategoryDAO.ListVisible(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	counts, err := s.CategoryDAO.NoteCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*types.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, utils.ConvertCategoryModelToDTO(c, counts))
	}
	return out, nil
}

func (s *CategoryService) Get(ctx context.Context, principal, id int64) (*types.Category, error) {
	c, err := s.find(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, c)
}

// validate collects every field error of req. The name must be unique among the
// principal's categories and the global ones; excludeID is the category being updated.
func (s *CategoryService) validate(ctx context.Context, principal int64, req *types.CategoryRequest, excludeID int64) (name, color string, err error) {
	errs := validate.FieldErrors{}

	if raw := errs.RequiredString("name", req.Name); raw != nil {
		trimmed, err := validate.NonBlank(*raw)
		if !errs.AddError("name", err) && !errs.AddError("name", validate.MaxLength(trimmed, models.CategoryNameMaxLength)) {
			taken, err := s.CategoryDAO.NameTaken(ctx, principal, trimmed, excludeID)
			if err != nil {
				return "", "", err
			}
			if taken {
				errs.Add("name", MsgCategoryExists)
			}
			name = trimmed
		}
	}

	if raw := errs.RequiredString("color", req.Color); raw != nil && !errs.AddError("color", validate.HexColor(*raw)) {
		color = *raw
	}

	return name, color, errs.Err()
}

// Create 创建分类，归属当前用户
func (s *CategoryService) Create(ctx context.Context, principal int64, req *types.CategoryRequest) (*types.Category, error) {
	name, color, err := s.validate(ctx, principal, req, 0)
	if err != nil {
		return nil, err
	}

	owner := principal
	c := models.NewCategory(name, color, &owner)
	if err := s.CategoryDAO.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return utils.ConvertCategoryModelToDTO(c, nil), nil
}

// Update replaces name and color. Only the owner may write; global categories are read-only.
func (s *CategoryService) Update(ctx context.Context, principal, id int64, req *types.CategoryRequest) (*types.Category, error) {
	c, err := s.find(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if !CanWriteCategory(c, principal) {
		return nil, response.Forbidden()
	}

	name, color, err := s.validate(ctx, principal, req, c.ID)
	if err != nil {
		return nil, err
	}

	c.Name, c.Color = name, color
	if err := s.CategoryDAO.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return s.toDTO(ctx, c)
}

// Delete 删除分类，引用它的笔记分类置空
func (s *CategoryService) Delete(ctx context.Context, principal, id int64) error {
	c, err := s.find(ctx, principal, id)
	if err != nil {
		return err
	}
	if !CanWriteCategory(c, principal) {
		return response.Forbidden()
	}

	err = s.CategoryDAO.Delete(ctx, c.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound()
	}
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

// Seed creates the global categories that do not exist yet and returns how many were added.
func (s *CategoryService) Seed(ctx context.Context, categories []config.SeedCategory) (int, error) {
	created := 0
	for _, sc := range categories {
		c := models.NewCategory(sc.Name, sc.Color, nil)
		if err := c.Validate(); err != nil {
			return created, fmt.Errorf("seed category %q: %w", sc.Name, err)
		}

		taken, err := s.CategoryDAO.GlobalNameTaken(ctx, c.Name)
		if err != nil {
			return created, fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
		if taken {
			log.L.Info("global category exists", zap.String("name", c.Name))
			continue
		}

		if err := s.CategoryDAO.Create(ctx, c); err != nil {
			return created, fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
		created++
	}
	return created, nil
}
