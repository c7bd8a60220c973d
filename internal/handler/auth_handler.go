package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/service"
)

// AuthHandler 登录门禁处理器
type AuthHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
}

// NewAuthHandler 创建登录门禁处理器
func NewAuthHandler(logger *zap.Logger, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "用户名和密码不能为空",
		})
	}

	resp, err := h.authService.Login(ctx, req, c.RealIP())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "用户名和密码不能为空",
			})
		}

		h.logger.Error("login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "登录失败，请稍后重试",
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCurrentUser 获取当前会话信息
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c echo.Context) error {
	// 由JWT中间件设置
	username, _ := c.Get("username").(string)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"username": username,
	})
}

// RegisterRoutes 注册公开路由
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	auth := g.Group("/auth")

	auth.POST("/login", h.Login)
}

// RegisterProtectedRoutes 注册需要认证的路由
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/me", h.GetCurrentUser)
}
