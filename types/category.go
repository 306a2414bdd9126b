package types

import "github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

// Category 分类的对外结构
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	NoteCount int64  `json:"note_count"`
}

// CategoryRequest is the body of POST and PUT. Both fields are required.
type CategoryRequest struct {
	Name  validate.String `json:"name"`
	Color validate.String `json:"color"`
}
