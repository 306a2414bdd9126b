package dao

import (
	"context"
	"fmt"

	"github.com/TurboProjects/Notes-App-Challenge/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// OwnedBy 笔记只对作者本人可见
func OwnedBy(principal int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("notes.user_id = ?", principal)
	}
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Omit(clause.Associations).Create(note).Error
}

// Save writes every column and refreshes updated_at.
func (d *NoteDAO) Save(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Omit(clause.Associations).Save(note).Error
}

// FindOwned 查询用户自己的笔记，附带分类
func (d *NoteDAO) FindOwned(ctx context.Context, principal, id int64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Scopes(OwnedBy(principal)).
		Preload("Category").
		Where("notes.id = ?", id).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListOwned 分页查询用户笔记，最近更新的在前。categoryID 不为空时按分类过滤
func (d *NoteDAO) ListOwned(ctx context.Context, principal int64, categoryID *int64, limit, offset int) ([]*models.Note, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(OwnedBy(principal))
		if categoryID != nil {
			db = db.Where("notes.category_id = ?", *categoryID)
		}
		return db
	}

	var (
		g     errgroup.Group
		notes []*models.Note
		total int64
	)

	g.Go(func() error {
		return d.Db.WithContext(ctx).Model(&models.Note{}).Scopes(scope).Count(&total).Error
	})
	g.Go(func() error {
		return d.Db.WithContext(ctx).
			Scopes(scope).
			Preload("Category").
			Order("notes.updated_at DESC").
			Order("notes.id DESC").
			Limit(limit).
			Offset(offset).
			Find(&notes).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("dao.Note.ListOwned: %w", err)
	}
	return notes, total, nil
}

// Delete removes the note only when principal owns it.
func (d *NoteDAO) Delete(ctx context.Context, principal, id int64) error {
	res := d.Db.WithContext(ctx).Scopes(OwnedBy(principal)).Delete(&models.Note{}, id)
	if res.Error != nil {
		return fmt.Errorf("dao.Note.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
