package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/service"
	"github.com/Nearak/Journal/pkg/nostd"
)

// JWTAuthConfig JWT认证配置
type JWTAuthConfig struct {
	AuthService *service.AuthService
	Logger      *zap.Logger
}

// JWTAuth JWT认证中间件
func JWTAuth(config JWTAuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 优先从Header中获取Token，浏览器直接下载导出文件时
			// 无法自定义Header，回退到自定义Header/查询参数/Cookie
			var tokenString string
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || parts[0] != "Bearer" {
					return c.JSON(http.StatusUnauthorized, map[string]interface{}{
						"error": "未授权：token格式错误",
					})
				}
				tokenString = parts[1]
			} else {
				tokenString = nostd.GetToken(c)
			}

			if tokenString == "" {
				config.Logger.Warn("JWT token missing",
					zap.String("path", c.Request().URL.Path),
					zap.String("remote_ip", c.RealIP()))

				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "未授权：缺少token",
				})
			}

			// 验证Token
			claims, err := config.AuthService.ValidateToken(tokenString)
			if err != nil {
				config.Logger.Warn("invalid JWT token",
					zap.String("path", c.Request().URL.Path),
					zap.String("remote_ip", c.RealIP()),
					zap.Error(err))

				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "未授权：token无效或已过期",
				})
			}

			// 将会话信息存入Context
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
