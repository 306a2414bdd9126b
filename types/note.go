package types

import (
	"encoding/json"
	"time"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
)

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 10
	MaxPageSize     int = 100
)

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *Category `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    int64     `json:"user_id"`
}

// NoteRequest is the body of POST and PUT /notes/.
// CategoryID stays raw so that absent, null, numbers and numeric strings can be told apart.
type NoteRequest struct {
	Title      validate.String `json:"title"`
	Content    validate.String `json:"content"`
	CategoryID json.RawMessage `json:"category_id"`
}

type ListNotesRequest struct {
	CategoryID *int64
	Page       int
	PageSize   int
}

// NotePage 分页结果
type NotePage struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []*Note `json:"results"`
}

type RenderedNote struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}
