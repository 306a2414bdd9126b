package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/dao/cache"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/jwt"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"gorm.io/gorm"
)

const (
	MsgBadCredentials = "No active account found with the given credentials"
	MsgTokenInvalid   = "Token is invalid or expired"
	MsgTokenRevoked   = "Token is blacklisted"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.TokenRequest) (*jwt.Pair, error)
	Refresh(ctx context.Context, req *types.RefreshRequest) (string, error)
	Logout(ctx context.Context, principal int64, accessID string, accessExp time.Time, req *types.LogoutRequest) error
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
	Tokens    *cache.TokenStorage
}

func (s *AuthService) secret() []byte {
	return []byte(s.Config.Jwt.Secret)
}

// Login 邮箱密码换取 access/refresh token
func (s *AuthService) Login(ctx context.Context, req *types.TokenRequest) (*jwt.Pair, error) {
	errs := validate.FieldErrors{}
	email := errs.RequiredString("email", req.Email)
	if email != nil && *email == "" {
		errs.Add("email", validate.MsgBlank)
	}
	password := errs.RequiredString("password", req.Password)
	if password != nil && *password == "" {
		errs.Add("password", validate.MsgBlank)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	user, err := s.UsersRepo.FindByEmail(ctx, strings.TrimSpace(*email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.Unauthorized(MsgBadCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !VerifyPassword(user.Password, *password) {
		return nil, response.Unauthorized(MsgBadCredentials)
	}

	pair, err := jwt.GeneratePair(s.secret(), user.ID, s.Config.Jwt.AccessExpire(), s.Config.Jwt.RefreshExpire())
	if err != nil {
		return nil, fmt.Errorf("sign tokens: %w", err)
	}
	return pair, nil
}

// Refresh issues a new access token for a valid, unrevoked refresh token.
func (s *AuthService) Refresh(ctx context.Context, req *types.RefreshRequest) (string, error) {
	errs := validate.FieldErrors{}
	refresh := errs.RequiredString("refresh", req.Refresh)
	if err := errs.Err(); err != nil {
		return "", err
	}

	claims, err := jwt.ParseToken(s.secret(), jwt.TypeRefresh, *refresh)
	if err != nil {
		return "", response.Unauthorized(MsgTokenInvalid)
	}
	if s.Tokens.IsRevoked(ctx, claims.ID) {
		return "", response.Unauthorized(MsgTokenRevoked)
	}
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", claims.UserID)
	if err != nil {
		return "", fmt.Errorf("find user %d: %w", claims.UserID, err)
	}
	if !exist {
		return "", response.Unauthorized(MsgTokenInvalid)
	}

	access, _, err := jwt.GenerateToken(s.secret(), claims.UserID, jwt.TypeAccess, s.Config.Jwt.AccessExpire())
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// Logout revokes the calling access token and, when given, the principal's refresh token.
func (s *AuthService) Logout(ctx context.Context, principal int64, accessID string, accessExp time.Time, req *types.LogoutRequest) error {
	errs := validate.FieldErrors{}
	refresh := errs.OptionalString("refresh", req.Refresh)
	if err := errs.Err(); err != nil {
		return err
	}

	tokens := map[string]time.Time{accessID: accessExp}
	if refresh != nil && *refresh != "" {
		claims, err := jwt.ParseToken(s.secret(), jwt.TypeRefresh, *refresh)
		if err != nil || claims.UserID != principal {
			return validate.FieldErrors{"refresh": {MsgTokenInvalid}}
		}
		tokens[claims.ID] = claims.ExpiresAt.Time
	}

	return s.Tokens.RevokeAll(ctx, tokens)
}
