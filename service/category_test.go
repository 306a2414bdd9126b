package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/internal/testdb"
	"github.com/TurboProjects/Notes-App-Challenge/models"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryReq(name, color string) *types.CategoryRequest {
	return &types.CategoryRequest{Name: validate.Str(name), Color: validate.Str(color)}
}

func TestCategoryService_Create(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")

	c, err := s.categories.Create(ctx, alice, categoryReq("  Ideas  ", "#AABBCC"))
	require.NoError(t, err)
	assert.Equal(t, "Ideas", c.Name)
	assert.Equal(t, "#AABBCC", c.Color)
	assert.Zero(t, c.NoteCount)

	row, err := s.categories.CategoryDAO.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, row.UserID)
	assert.Equal(t, alice, *row.UserID)
}

func TestCategoryService_CreateValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")

	cases := []struct {
		name  string
		req   *types.CategoryRequest
		field string
		msg   string
	}{
		{"missing name", &types.CategoryRequest{Color: validate.Str("#AABBCC")}, "name", validate.MsgRequired},
		{"blank name", categoryReq("   ", "#AABBCC"), "name", validate.MsgBlank},
		{"missing color", &types.CategoryRequest{Name: validate.Str("Work")}, "color", validate.MsgRequired},
		{"short hex", categoryReq("Work", "#ABC"), "color", validate.MsgInvalidHex},
		{"no hash", categoryReq("Work", "AABBCC1"), "color", validate.MsgInvalidHex},
		{"numeric name", &types.CategoryRequest{Name: validate.String{Set: true}, Color: validate.Str("#AABBCC")}, "name", validate.MsgInvalidString},
		{"null color", &types.CategoryRequest{Name: validate.Str("Work"), Color: validate.String{Set: true, Null: true, Valid: true}}, "color", validate.MsgNull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.categories.Create(ctx, alice, tc.req)
			errs := fieldErrors(t, err)
			assert.Contains(t, errs[tc.field], tc.msg)
		})
	}
}

func TestCategoryService_NameUniqueness(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")
	bob := testdb.User(t, s.db, "bob@example.com")

	_, err := s.categories.Seed(ctx, []config.SeedCategory{{Name: "Work", Color: "#112233"}})
	require.NoError(t, err)

	_, err = s.categories.Create(ctx, alice, categoryReq("Ideas", "#AABBCC"))
	require.NoError(t, err)

	t.Run("duplicate of own", func(t *testing.T) {
		_, err := s.categories.Create(ctx, alice, categoryReq("Ideas", "#000000"))
		assert.Equal(t, []string{MsgCategoryExists}, fieldErrors(t, err)["name"])
	})

	t.Run("duplicate of global", func(t *testing.T) {
		_, err := s.categories.Create(ctx, bob, categoryReq(" Work ", "#000000"))
		assert.Equal(t, []string{MsgCategoryExists}, fieldErrors(t, err)["name"])
	})

	t.Run("other user may reuse", func(t *testing.T) {
		_, err := s.categories.Create(ctx, bob, categoryReq("Ideas", "#000000"))
		assert.NoError(t, err)
	})
}

func TestCategoryService_Visibility(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")
	bob := testdb.User(t, s.db, "bob@example.com")

	_, err := s.categories.Seed(ctx, []config.SeedCategory{{Name: "Work", Color: "#112233"}})
	require.NoError(t, err)
	secret, err := s.categories.Create(ctx, bob, categoryReq("Secret", "#AABBCC"))
	require.NoError(t, err)

	list, err := s.categories.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Work", list[0].Name)

	_, err = s.categories.Get(ctx, alice, secret.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = s.categories.Update(ctx, alice, secret.ID, categoryReq("Mine", "#AABBCC"))
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	assert.Equal(t, http.StatusNotFound, statusOf(t, s.categories.Delete(ctx, alice, secret.ID)))
}

func TestCategoryService_GlobalIsReadOnly(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")

	_, err := s.categories.Seed(ctx, []config.SeedCategory{{Name: "Work", Color: "#112233"}})
	require.NoError(t, err)
	list, err := s.categories.List(ctx, alice)
	require.NoError(t, err)
	work := list[0]

	_, err = s.categories.Update(ctx, alice, work.ID, categoryReq("Job", "#112233"))
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	assert.Equal(t, http.StatusForbidden, statusOf(t, s.categories.Delete(ctx, alice, work.ID)))
}

func TestCategoryService_Update(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")

	ideas, err := s.categories.Create(ctx, alice, categoryReq("Ideas", "#AABBCC"))
	require.NoError(t, err)
	_, err = s.categories.Create(ctx, alice, categoryReq("Todo", "#AABBCC"))
	require.NoError(t, err)

	// keeping its own name is not a collision
	got, err := s.categories.Update(ctx, alice, ideas.ID, categoryReq("Ideas", "#000000"))
	require.NoError(t, err)
	assert.Equal(t, "#000000", got.Color)

	_, err = s.categories.Update(ctx, alice, ideas.ID, categoryReq("Todo", "#000000"))
	assert.Equal(t, []string{MsgCategoryExists}, fieldErrors(t, err)["name"])
}

func TestCategoryService_DeleteKeepsNotes(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice@example.com")

	ideas, err := s.categories.Create(ctx, alice, categoryReq("Ideas", "#AABBCC"))
	require.NoError(t, err)
	note, err := s.notes.Create(ctx, alice, &types.NoteRequest{Title: validate.Str("Hi"), CategoryID: rawID(ideas.ID)})
	require.NoError(t, err)

	got, err := s.categories.Get(ctx, alice, ideas.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.NoteCount)

	require.NoError(t, s.categories.Delete(ctx, alice, ideas.ID))

	after, err := s.notes.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Nil(t, after.Category)
}

func TestCategoryService_Seed(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	seed := []config.SeedCategory{
		{Name: "Work", Color: "#112233"},
		{Name: "Personal", Color: "#445566"},
	}
	n, err := s.categories.Seed(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.categories.Seed(ctx, seed)
	require.NoError(t, err)
	assert.Zero(t, n)

	var globals int64
	require.NoError(t, s.db.Model(&models.Category{}).Where("user_id IS NULL").Count(&globals).Error)
	assert.Equal(t, int64(2), globals)

	_, err = s.categories.Seed(ctx, []config.SeedCategory{{Name: "Bad", Color: "nope"}})
	assert.Error(t, err)
}
