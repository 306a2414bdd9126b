package service

import (
	"testing"

	"github.com/TurboProjects/Notes-App-Challenge/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestIsVisible(t *testing.T) {
	global := &models.Category{ID: 1}
	mine := &models.Category{ID: 2, UserID: ptr(int64(10))}
	theirs := &models.Category{ID: 3, UserID: ptr(int64(20))}

	assert.True(t, IsVisible(global, 10))
	assert.True(t, IsVisible(mine, 10))
	assert.False(t, IsVisible(theirs, 10))
	assert.True(t, IsVisible(theirs, 20))
	assert.False(t, IsVisible(nil, 10))
}

func TestVisibilityClauses(t *testing.T) {
	global := &models.Category{}
	owned := &models.Category{UserID: ptr(int64(10))}

	assert.True(t, isGlobal(global))
	assert.False(t, isGlobal(owned))
	assert.False(t, isOwnedBy(global, 10))
	assert.True(t, isOwnedBy(owned, 10))
	assert.False(t, isOwnedBy(owned, 11))
}

func TestCanWriteCategory(t *testing.T) {
	assert.False(t, CanWriteCategory(&models.Category{}, 10))
	assert.True(t, CanWriteCategory(&models.Category{UserID: ptr(int64(10))}, 10))
	assert.False(t, CanWriteCategory(&models.Category{UserID: ptr(int64(10))}, 11))
}

func TestOwnsNote(t *testing.T) {
	n := &models.Note{UserID: 10}
	assert.True(t, OwnsNote(n, 10))
	assert.False(t, OwnsNote(n, 11))
	assert.False(t, OwnsNote(nil, 10))
}
