package utils

import (
	"github.com/TurboProjects/Notes-App-Challenge/models"
	"github.com/TurboProjects/Notes-App-Challenge/types"
)

// ConvertCategoryModelToDTO counts is the result of CategoryDAO.NoteCounts; a missing key means zero.
func ConvertCategoryModelToDTO(c *models.Category, counts map[int64]int64) *types.Category {
	if c == nil {
		return nil
	}
	return &types.Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		NoteCount: counts[c.ID],
	}
}

func ConvertNoteModelToDTO(n *models.Note, counts map[int64]int64) *types.Note {
	return &types.Note{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  ConvertCategoryModelToDTO(n.Category, counts),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		UserID:    n.UserID,
	}
}

func ConvertUserModelToDTO(u *models.Users) *types.User {
	return &types.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// NoteCategoryIDs 收集笔记引用的分类ID，去重
func NoteCategoryIDs(notes ...*models.Note) []int64 {
	seen := make(map[int64]struct{}, len(notes))
	ids := make([]int64, 0, len(notes))
	for _, n := range notes {
		if n.CategoryID == nil {
			continue
		}
		if _, ok := seen[*n.CategoryID]; ok {
			continue
		}
		seen[*n.CategoryID] = struct{}{}
		ids = append(ids, *n.CategoryID)
	}
	return ids
}
