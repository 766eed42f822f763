package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
	"club-portal/backend/pkg/jwt"
	"club-portal/backend/pkg/password"
)

var (
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthenticated, "用户名或密码错误")
	ErrAccountDisabled    = apperrors.Forbidden("账号已被停用")
	ErrUsernameTaken      = apperrors.Conflict("用户名已被使用")
	ErrUserNotFound       = apperrors.NotFound("用户不存在")
	ErrPasswordTooLong    = apperrors.Validation("密码不能超过 72 字节")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error)
	Me(ctx context.Context, userID int64) (*dto.CurrentUser, error)
	// Logout 吊销 Token 直至其自然过期
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo    *repository.Repository
	hasher  *password.Hasher
	jwtMgr  *jwt.Manager
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	hasher *password.Hasher,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		hasher:  hasher,
		jwtMgr:  jwtMgr,
		revoker: revoker,
		logger:  logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if len(username) < 3 {
		return nil, apperrors.Validation("用户名至少 3 个字符")
	}
	if name == "" {
		return nil, apperrors.Validation("姓名不能为空")
	}
	// binding 的 max 按字符计数，多字节密码需再按字节校验
	if len(req.Password) > password.MaxBytes {
		return nil, ErrPasswordTooLong
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	email := req.Email
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	member := &model.Member{
		Name:         name,
		StudentID:    req.StudentID,
		Department:   req.Department,
		Grade:        req.Grade,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		Generation:   req.Generation,
		Phone:        req.Phone,
		Email:        &email,
		Status:       model.MemberStatusActive,
	}

	if err := s.repo.User.CreateWithMember(ctx, user, member); err != nil {
		switch {
		case database.IsUniqueViolation(err, "users_username_key"):
			return nil, ErrUsernameTaken
		case database.IsForeignKeyViolation(err):
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("注册用户失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	token, err := s.jwtMgr.Issue(user.ID, user.Username, user.Role, member.DepartmentID)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("新用户注册", zap.Int64("user_id", user.ID), zap.String("role", user.Role))

	return &dto.AuthResult{
		Token: token,
		User: dto.UserInfo{
			ID:           user.ID,
			Username:     user.Username,
			Role:         user.Role,
			Name:         member.Name,
			DepartmentID: member.DepartmentID,
		},
	}, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error) {
	// 1. 查询用户
	p, err := s.repo.User.GetProfileByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, storeError(s.logger, "查询用户失败", err, ErrInvalidCredentials)
	}

	// 2. 验证密码
	if !s.hasher.Verify(req.Password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. 停用账号不可登录
	if !p.IsActive {
		return nil, ErrAccountDisabled
	}

	// 4. 签发 Token
	token, err := s.jwtMgr.Issue(p.ID, p.Username, p.Role, p.DepartmentID)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Int64("user_id", p.ID), zap.Error(err))
		return nil, err
	}

	info := dto.UserInfo{
		ID:           p.ID,
		Username:     p.Username,
		Role:         p.Role,
		DepartmentID: p.DepartmentID,
	}
	if p.Name != nil {
		info.Name = *p.Name
	}

	return &dto.AuthResult{Token: token, User: info}, nil
}

// ────────────────────── Me ──────────────────────

func (s *authService) Me(ctx context.Context, userID int64) (*dto.CurrentUser, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(s.logger, "查询用户失败", err, ErrUserNotFound, zap.Int64("user_id", userID))
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	result := &dto.CurrentUser{ID: user.ID, Username: user.Username, Role: user.Role}

	member, err := s.repo.Member.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		result.Member = member
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storeError(s.logger, "查询社员资料失败", err, nil, zap.Int64("user_id", userID))
	}

	return result, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.revoker == nil {
		s.logger.Warn("Redis 不可用，登出仅在客户端生效", zap.String("jti", jti))
		return nil
	}
	if err := s.revoker.RevokeToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("吊销 Token 失败", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}
