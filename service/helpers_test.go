package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/internal/testdb"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type services struct {
	db         *gorm.DB
	mr         *miniredis.Miniredis
	categories *CategoryService
	notes      *NoteService
	users      *UserService
	auth       *AuthService
}

func newServices(t *testing.T) *services {
	t.Helper()

	db := testdb.New(t)
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	cfg := config.Default()
	cfg.Jwt.Secret = "test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost

	users := dao.NewUsers(db)
	categoryDAO := dao.NewCategoryDAO(db)
	tokens := cache.NewTokenStorage(rds)

	return &services{
		db:         db,
		mr:         mr,
		categories: &CategoryService{CategoryDAO: categoryDAO},
		notes:      &NoteService{NoteDAO: dao.NewNoteDAO(db), CategoryDAO: categoryDAO},
		users:      &UserService{Config: cfg, UsersRepo: users},
		auth:       &AuthService{Config: cfg, UsersRepo: users, Tokens: tokens},
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var biz *response.BizError
	require.True(t, errors.As(err, &biz), "want *response.BizError, got %v", err)
	return biz.Code
}

func fieldErrors(t *testing.T, err error) validate.FieldErrors {
	t.Helper()
	var errs validate.FieldErrors
	require.True(t, errors.As(err, &errs), "want validate.FieldErrors, got %v", err)
	return errs
}

func rawID(id int64) json.RawMessage {
	b, _ := json.Marshal(id)
	return b
}

// closeDB makes every later query on db fail.
func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func requireServerError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var biz *response.BizError
	assert.False(t, errors.As(err, &biz), "store failure surfaced as %v", err)
	var errs validate.FieldErrors
	assert.False(t, errors.As(err, &errs), "store failure surfaced as %v", err)
}
