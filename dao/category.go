package dao

import (
	"context"
	"fmt"

	"github.com/TurboProjects/Notes-App-Challenge/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// VisibleTo narrows a query to global categories and those owned by principal.
func VisibleTo(principal int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(categories.user_id IS NULL OR categories.user_id = ?)", principal)
	}
}

// Create 创建分类
func (d *CategoryDAO) Create(ctx context.Context, category *models.Category) error {
	return d.Db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
}

// Save 全量更新分类
func (d *CategoryDAO) Save(ctx context.Context, category *models.Category) error {
	return d.Db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
}

// FindByID returns gorm.ErrRecordNotFound when id does not exist.
func (d *CategoryDAO) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	return d.Repo.FindById(ctx, id)
}

// ListVisible 查询用户可见的分类，按名称排序
func (d *CategoryDAO) ListVisible(ctx context.Context, principal int64) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Scopes(VisibleTo(principal)).
		Order("name ASC").
		Order("id ASC").
		Find(&categories).Error
	return categories, err
}

// NameTaken reports whether name collides with a category owned by principal
// or with any global category. excludeID skips the row being updated; pass 0 on create.
func (d *CategoryDAO) NameTaken(ctx context.Context, principal int64, name string, excludeID int64) (bool, error) {
	db := d.Db.WithContext(ctx).Model(&models.Category{}).
		Scopes(VisibleTo(principal)).
		Where("name = ?", name)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, fmt.Errorf("dao.Category.NameTaken: %w", err)
	}
	return count > 0, nil
}

// GlobalNameTaken is used when seeding shared categories.
func (d *CategoryDAO) GlobalNameTaken(ctx context.Context, name string) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id IS NULL AND name = ?", name)
}

type categoryCount struct {
	CategoryID int64
	Total      int64
}

// NoteCounts 统计每个分类下的笔记数量，没有笔记的分类不会出现在结果中
func (d *CategoryDAO) NoteCounts(ctx context.Context, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []categoryCount
	err := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Select("category_id, COUNT(*) AS total").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Category.NoteCounts: %w", err)
	}

	for _, r := range rows {
		counts[r.CategoryID] = r.Total
	}
	return counts, nil
}

// Delete detaches every referencing note and removes the category in one transaction.
func (d *CategoryDAO) Delete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Note{}).
			Where("category_id = ?", id).
			UpdateColumn("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach notes: %w", err)
		}

		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
