package models

import "time"

type Users struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(254);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	FirstName string    `gorm:"column:first_name;type:varchar(150);not null;default:''" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(150);not null;default:''" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// All returns every table in migration order.
func All() []any {
	return []any{&Users{}, &Category{}, &Note{}}
}
