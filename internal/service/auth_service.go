package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/config"
)

var ErrEmptyCredentials = errors.New("用户名和密码不能为空")

// AuthService 登录门禁服务。
// 这是一个形式上的门禁：不存储用户，不校验口令，
// 任何非空的用户名/密码组合都会换取一个会话令牌。
type AuthService struct {
	logger        *zap.Logger
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService 创建登录门禁服务
func NewAuthService(logger *zap.Logger, conf *config.Config) *AuthService {
	secret := conf.Auth.JWTSecret
	if secret == "" {
		// 未配置密钥时随机生成，进程重启后旧令牌自然失效
		secret = uuid.NewString()
	}

	expiration := 24 * time.Hour
	if conf.Auth.SessionHours > 0 {
		expiration = time.Duration(conf.Auth.SessionHours) * time.Hour
	}

	return &AuthService{
		logger:        logger,
		jwtSecret:     secret,
		jwtExpiration: expiration,
	}
}

// JWTClaims JWT载荷
type JWTClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// Login 换取会话令牌，仅要求用户名与密码非空
func (s *AuthService) Login(ctx context.Context, req LoginRequest, ip string) (*LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrEmptyCredentials
	}

	expiresAt := time.Now().Add(s.jwtExpiration)
	claims := JWTClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "journal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		zap.String("username", username),
		zap.String("ip", ip))

	return &LoginResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		Username:  username,
	}, nil
}

// ValidateToken 验证会话令牌
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
