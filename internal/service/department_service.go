package service

import (
	"context"

	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/repository"
	apperrors "club-portal/backend/pkg/errors"
)

const recentDepartmentFiles = 10

var ErrDepartmentMissing = apperrors.NotFound("部门不存在")

// DepartmentService 部门业务接口（只读）
type DepartmentService interface {
	List(ctx context.Context) ([]model.DepartmentSummary, error)
	Get(ctx context.Context, id int64) (*dto.DepartmentDetail, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) List(ctx context.Context) ([]model.DepartmentSummary, error) {
	list, err := s.repo.Department.ListWithCounts(ctx)
	if err != nil {
		return nil, storeError(s.logger, "查询部门列表失败", err, nil)
	}
	return list, nil
}

func (s *departmentService) Get(ctx context.Context, id int64) (*dto.DepartmentDetail, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询部门失败", err, ErrDepartmentMissing, zap.Int64("id", id))
	}

	members, err := s.repo.Member.ListActiveByDepartment(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询部门社员失败", err, nil, zap.Int64("id", id))
	}

	files, err := s.repo.File.ListRecentByDepartment(ctx, id, recentDepartmentFiles)
	if err != nil {
		return nil, storeError(s.logger, "查询部门文件失败", err, nil, zap.Int64("id", id))
	}

	return &dto.DepartmentDetail{Department: *dept, Members: members, RecentFiles: files}, nil
}
