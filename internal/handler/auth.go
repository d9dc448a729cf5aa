package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	userService    service.UserService
	authService    service.AuthService
	tokenService   service.TokenService
	sessionService service.SessionService
	accessExpiry   time.Duration
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(userSvc service.UserService, authSvc service.AuthService, tokenSvc service.TokenService, sessionSvc service.SessionService, accessExpiry time.Duration) *AuthHandler {
	if accessExpiry == 0 {
		accessExpiry = service.DefaultAccessExpiry
	}
	return &AuthHandler{
		userService:    userSvc,
		authService:    authSvc,
		tokenService:   tokenSvc,
		sessionService: sessionSvc,
		accessExpiry:   accessExpiry,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // 秒
}

// Register 商户注册
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	// 检查密码强度
	if !service.IsPasswordStrong(req.Password) {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "密码强度不足，需要至少8位，包含大写字母、小写字母和数字")
		return
	}

	// 注册入口只创建商户账户，管理员由运维工具提升
	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Role:        model.RoleMerchant,
		Status:      model.StatusActive,
	}

	if err := h.userService.Create(c.Request.Context(), user, req.Password); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserUsernameExists):
			response.Error(c, response.CodeUserExists)
		case errors.Is(err, repository.ErrUserEmailExists):
			response.Error(c, response.CodeEmailExists)
		case errors.Is(err, service.ErrUsernameTooShort),
			errors.Is(err, service.ErrUsernameInvalid),
			errors.Is(err, service.ErrEmailInvalid),
			errors.Is(err, service.ErrPasswordTooShort):
			response.ErrorWithMsg(c, response.CodeInvalidRequest, err.Error())
		default:
			response.Error(c, response.CodeServerError)
		}
		return
	}

	response.Success(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Login 用户登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountLocked):
			response.Error(c, response.CodeAccountLocked)
		default:
			response.Error(c, response.CodeInvalidCredentials)
		}
		return
	}

	// 创建服务端会话
	session := &model.Session{
		UserID:    user.ID,
		Role:      user.Role,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.sessionService.Create(c.Request.Context(), session); err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	claims := &service.TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.ID,
	}

	accessToken, err := h.tokenService.GenerateAccessToken(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	refreshToken, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), &service.TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.ID,
	})
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.accessExpiry.Seconds()),
	})
}

// Logout 退出登录
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	// 删除服务端会话
	if sid, exists := c.Get("session_id"); exists {
		if sessionID, ok := sid.(string); ok && sessionID != "" {
			_ = h.sessionService.Delete(c.Request.Context(), sessionID)
		}
	}

	// 撤销当前令牌
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 {
		_ = h.tokenService.RevokeToken(c.Request.Context(), authHeader[7:])
	}

	response.SuccessWithMsg(c, "退出成功", nil)
}

// Me 获取当前用户信息
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := currentUserID(c)
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, response.CodeUserNotFound)
		return
	}

	response.Success(c, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         user.Role,
		"status":       user.Status,
		"created_at":   user.CreatedAt,
	})
}
