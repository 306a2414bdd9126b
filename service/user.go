package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TurboProjects/Notes-App-Challenge/config"
	"github.com/TurboProjects/Notes-App-Challenge/dao"
	"github.com/TurboProjects/Notes-App-Challenge/models"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/response"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/utils"
	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
	"github.com/TurboProjects/Notes-App-Challenge/types"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MsgEmailExists     = "A user with this email already exists."
	PasswordMinLength  = 8
	emailMaxLength     = 254
	nameMaxLength      = 150
	passwordMaxByteLen = 72
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error)
	Get(ctx context.Context, principal, id int64) (*types.User, error)
	Update(ctx context.Context, principal, id int64, req *types.UpdateUserRequest) (*types.User, error)
}

type UserService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// registerInput is a validated RegisterRequest.
type registerInput struct {
	email     string
	password  string
	firstName string
	lastName  string
}

func (s *UserService) validateRegister(ctx context.Context, req *types.RegisterRequest) (*registerInput, error) {
	errs := validate.FieldErrors{}
	in := &registerInput{}

	if raw := errs.RequiredString("email", req.Email); raw != nil {
		trimmed, err := validate.NonBlank(*raw)
		switch {
		case errs.AddError("email", err), errs.AddError("email", validate.MaxLength(trimmed, emailMaxLength)):
		case checkmail.ValidateFormat(trimmed) != nil:
			errs.Add("email", validate.MsgInvalidMail)
		default:
			in.email = strings.ToLower(trimmed)
			taken, err := s.UsersRepo.IsEmailExist(ctx, in.email)
			if err != nil {
				return nil, err
			}
			if taken {
				errs.Add("email", MsgEmailExists)
			}
		}
	}

	if raw := errs.RequiredString("password", req.Password); raw != nil {
		switch {
		case *raw == "":
			errs.Add("password", validate.MsgBlank)
		case len(*raw) > passwordMaxByteLen:
			errs.Add("password", fmt.Sprintf("Ensure this field has no more than %d bytes.", passwordMaxByteLen))
		default:
			if !errs.AddError("password", validate.MinLength(*raw, PasswordMinLength)) {
				in.password = *raw
			}
		}
	}

	if raw := errs.OptionalString("first_name", req.FirstName); raw != nil && !errs.AddError("first_name", validate.MaxLength(*raw, nameMaxLength)) {
		in.firstName = strings.TrimSpace(*raw)
	}
	if raw := errs.OptionalString("last_name", req.LastName); raw != nil && !errs.AddError("last_name", validate.MaxLength(*raw, nameMaxLength)) {
		in.lastName = strings.TrimSpace(*raw)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

// Register 邮箱注册
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	in, err := s.validateRegister(ctx, req)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.password, s.Config.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.Users{
		Email:     in.email,
		Password:  hash,
		FirstName: in.firstName,
		LastName:  in.lastName,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, validate.FieldErrors{"email": {MsgEmailExists}}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return utils.ConvertUserModelToDTO(user), nil
}

func (s *UserService) self(ctx context.Context, principal, id int64) (*models.Users, error) {
	if principal != id {
		return nil, response.Forbidden()
	}
	user, err := s.UsersRepo.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// Get 只能查看自己的资料
func (s *UserService) Get(ctx context.Context, principal, id int64) (*types.User, error) {
	user, err := s.self(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return utils.ConvertUserModelToDTO(user), nil
}

func (s *UserService) Update(ctx context.Context, principal, id int64, req *types.UpdateUserRequest) (*types.User, error) {
	user, err := s.self(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	errs := validate.FieldErrors{}
	updates := map[string]any{}
	if raw := errs.OptionalString("first_name", req.FirstName); raw != nil && !errs.AddError("first_name", validate.MaxLength(*raw, nameMaxLength)) {
		user.FirstName = strings.TrimSpace(*raw)
		updates["first_name"] = user.FirstName
	}
	if raw := errs.OptionalString("last_name", req.LastName); raw != nil && !errs.AddError("last_name", validate.MaxLength(*raw, nameMaxLength)) {
		user.LastName = strings.TrimSpace(*raw)
		updates["last_name"] = user.LastName
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.UsersRepo.Update(ctx, user.ID, updates); err != nil {
		return nil, err
	}
	return utils.ConvertUserModelToDTO(user), nil
}
