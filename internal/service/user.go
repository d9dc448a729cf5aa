package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
)

var (
	ErrUserIDEmpty      = errors.New("用户 ID 不能为空")
	ErrUsernameEmpty    = errors.New("用户名不能为空")
	ErrUsernameInvalid  = errors.New("用户名只能包含字母、数字和下划线")
	ErrUsernameTooShort = errors.New("用户名长度不能少于 3 个字符")
	ErrEmailInvalid     = errors.New("邮箱格式无效")
	ErrPasswordEmpty    = errors.New("密码不能为空")
	ErrPasswordTooShort = errors.New("密码长度不能少于 8 个字符")
	ErrRoleInvalid      = errors.New("无效的用户角色")
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// UserService 用户服务接口
type UserService interface {
	Create(ctx context.Context, user *model.User, password string) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// PromoteToAdmin 将指定用户提升为管理员
	PromoteToAdmin(ctx context.Context, username string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *model.User, password string) error {
	if err := validateUser(user); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	if user.Role == "" {
		user.Role = model.RoleMerchant
	}
	if user.Role != model.RoleMerchant && user.Role != model.RoleAdmin {
		return ErrRoleInvalid
	}
	if user.Status == "" {
		user.Status = model.StatusActive
	}

	if err := user.SetPassword(password); err != nil {
		return err
	}

	return s.userRepo.Create(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrUserIDEmpty
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, ErrUsernameEmpty
	}
	return s.userRepo.GetByUsername(ctx, username)
}

// PromoteToAdmin 将指定用户提升为管理员
func (s *userService) PromoteToAdmin(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	user.Role = model.RoleAdmin
	return s.userRepo.Update(ctx, user)
}

// validateUser 校验用户基础字段
func validateUser(user *model.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return ErrUsernameEmpty
	}
	if len(user.Username) < 3 {
		return ErrUsernameTooShort
	}
	if !usernameRegex.MatchString(user.Username) {
		return ErrUsernameInvalid
	}
	if user.Email != "" && !emailRegex.MatchString(user.Email) {
		return ErrEmailInvalid
	}
	return nil
}

// validatePassword 校验密码基本要求
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

// IsPasswordStrong 检查密码强度：至少 8 位，包含大写字母、小写字母和数字
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
