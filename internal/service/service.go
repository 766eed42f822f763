package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"club-portal/backend/config"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/jwt"
	"club-portal/backend/pkg/password"
)

// TokenRevoker 登出时吊销 Token（Redis 实现）
type TokenRevoker interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Announcement AnnouncementService
	Event        EventService
	File         FileService
	Member       MemberService
	Department   DepartmentService
	Export       ExportService
}

// NewService 创建 Service 聚合
// revoker 为 nil 时登出仅由客户端丢弃 Token（降级模式）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) *Service {
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	return &Service{
		Auth:         NewAuthService(repo, hasher, jwtMgr, revoker, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Event:        NewEventService(repo, logger),
		File:         NewFileService(repo, logger),
		Member:       NewMemberService(repo, logger),
		Department:   NewDepartmentService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
