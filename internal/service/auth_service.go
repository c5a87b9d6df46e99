package service

import (
	"context"
	"errors"
	"strings"

	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/backend"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/logger"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/sessionstore"
)

// AuthService 认证服务
// 凭证只透传给外部认证服务，本地不存口令；签发的 JWT 记入会话，
// 供订单历史等需要登录态的代理接口使用。
type AuthService struct {
	client *backend.Client
	store  sessionstore.Store
}

// NewAuthService 创建认证服务
func NewAuthService(client *backend.Client, store sessionstore.Store) *AuthService {
	return &AuthService{client: client, store: store}
}

// Login 登录：透传凭证，成功后令牌写入会话
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (*backend.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrBackendUnavailable
	}

	session := sessionstore.NewSession(s.store, sessionID)
	if err := session.SaveToken(ctx, result.Token); err != nil {
		return nil, err
	}
	logger.Infow("user_login", "session_id", sessionID, "user_id", result.User.ID)
	return result, nil
}

// Register 注册：透传资料，成功后令牌写入会话
func (s *AuthService) Register(ctx context.Context, sessionID, name, email, password string) (*backend.AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrRegistrationFailed
	}
	result, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, ErrRegistrationFailed
		}
		return nil, ErrBackendUnavailable
	}

	session := sessionstore.NewSession(s.store, sessionID)
	if err := session.SaveToken(ctx, result.Token); err != nil {
		return nil, err
	}
	logger.Infow("user_register", "session_id", sessionID, "user_id", result.User.ID)
	return result, nil
}

// Logout 登出：清空会话（购物车、地址、令牌一并失效）
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	session := sessionstore.NewSession(s.store, sessionID)
	return session.Clear(ctx)
}

// SessionToken 读取会话里的登录令牌
func (s *AuthService) SessionToken(ctx context.Context, sessionID string) (string, error) {
	session := sessionstore.NewSession(s.store, sessionID)
	return session.Token(ctx)
}
