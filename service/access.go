package service

import "github.com/TurboProjects/Notes-App-Challenge/models"

func isGlobal(c *models.Category) bool {
	return c.UserID == nil
}

func isOwnedBy(c *models.Category, principal int64) bool {
	return c.UserID != nil && *c.UserID == principal
}

// IsVisible 全局分类或自己的分类可见
func IsVisible(c *models.Category, principal int64) bool {
	return c != nil && (isGlobal(c) || isOwnedBy(c, principal))
}

// CanWriteCategory only lets owners update or delete. Global categories are read-only.
func CanWriteCategory(c *models.Category, principal int64) bool {
	return c != nil && isOwnedBy(c, principal)
}

func OwnsNote(n *models.Note, principal int64) bool {
	return n != nil && n.UserID == principal
}
