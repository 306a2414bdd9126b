package models

import (
	"time"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

	"gorm.io/gorm"
)

const (
	CategoryNameMaxLength = 100
)

// Category 笔记分类
// UserID 为空表示全局分类，对所有用户可见
type Category struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    *int64    `gorm:"column:user_id;index:idx_categories_owner_name,priority:1" json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;index:idx_categories_owner_name,priority:2" json:"name"`
	Color     string    `gorm:"column:color;type:varchar(7);not null" json:"color"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	User *Users `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// NewCategory builds an unsaved category. A nil owner makes it global.
func NewCategory(name, color string, owner *int64) *Category {
	return &Category{Name: name, Color: color, UserID: owner}
}

func (c *Category) IsGlobal() bool {
	return c.UserID == nil
}

// Validate trims Name in place and checks both columns.
func (c *Category) Validate() error {
	errs := validate.FieldErrors{}

	name, err := validate.NonBlank(c.Name)
	if !errs.AddError("name", err) && !errs.AddError("name", validate.MaxLength(name, CategoryNameMaxLength)) {
		c.Name = name
	}
	errs.AddError("color", validate.HexColor(c.Color))

	return errs.Err()
}

func (c *Category) BeforeSave(*gorm.DB) error {
	return c.Validate()
}
