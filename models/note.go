package models

import (
	"time"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

	"gorm.io/gorm"
)

const (
	DefaultNoteTitle   = "Untitled Note"
	NoteTitleMaxLength = 200
)

type Note struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"column:user_id;not null;index:idx_notes_user_updated,priority:1" json:"user_id"`
	Title      string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CategoryID *int64    `gorm:"column:category_id;index" json:"category_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;index:idx_notes_user_updated,priority:2" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	User     *Users    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Note) TableName() string {
	return "notes"
}

// NewNote builds an unsaved note. Omitted title and content fall back to
// DefaultNoteTitle and the empty string.
func NewNote(owner int64, title, content *string, categoryID *int64) *Note {
	n := &Note{
		UserID:     owner,
		Title:      DefaultNoteTitle,
		CategoryID: categoryID,
	}
	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	return n
}

func (n *Note) Validate() error {
	errs := validate.FieldErrors{}
	errs.AddError("title", validate.MaxLength(n.Title, NoteTitleMaxLength))
	if n.UserID == 0 {
		errs.Add("user_id", validate.MsgRequired)
	}
	return errs.Err()
}

func (n *Note) BeforeSave(*gorm.DB) error {
	return n.Validate()
}
