package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
)

var (
	ErrMemberNotFound       = apperrors.NotFound("社员不存在")
	ErrProfileFieldReserved = apperrors.Forbidden("部门与状态仅社长或指导老师可以修改")
)

// MemberService 社员档案业务接口
type MemberService interface {
	List(ctx context.Context, req *dto.MemberListRequest) ([]model.MemberDetail, error)
	Get(ctx context.Context, id int64) (*model.MemberDetail, error)
	Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateMemberRequest) (*model.Member, error)
	Delete(ctx context.Context, caller *policy.Identity, id int64) error
	Stats(ctx context.Context) (*model.MemberStats, error)
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

// memberFilter 列表与导出共用的过滤条件，status 默认 active
func memberFilter(req *dto.MemberListRequest) repository.MemberFilter {
	status := req.Status
	if status == "" {
		status = model.MemberStatusActive
	}
	return repository.MemberFilter{
		Status:       status,
		Generation:   req.Generation,
		DepartmentID: req.DepartmentID,
		Industry:     strings.TrimSpace(req.Industry),
		JobRole:      strings.TrimSpace(req.JobRole),
		Search:       strings.TrimSpace(req.Search),
	}
}

// ────────────────────── List / Get / Stats ──────────────────────

func (s *memberService) List(ctx context.Context, req *dto.MemberListRequest) ([]model.MemberDetail, error) {
	list, err := s.repo.Member.List(ctx, memberFilter(req))
	if err != nil {
		return nil, storeError(s.logger, "查询社员列表失败", err, nil)
	}
	return list, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*model.MemberDetail, error) {
	m, err := s.repo.Member.GetDetail(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询社员失败", err, ErrMemberNotFound, zap.Int64("id", id))
	}
	return m, nil
}

func (s *memberService) Stats(ctx context.Context) (*model.MemberStats, error) {
	stats, err := s.repo.Member.Stats(ctx)
	if err != nil {
		return nil, storeError(s.logger, "统计社员失败", err, nil)
	}
	return stats, nil
}

// ────────────────────── Update ──────────────────────

func (s *memberService) Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateMemberRequest) (*model.Member, error) {
	m, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询社员失败", err, ErrMemberNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.MemberUpdate, policy.OwnedBy(m.UserID)); err != nil {
		return nil, err
	}

	// 本人编辑档案时部门与状态保持不变
	if !caller.Role.HasFullAccess() {
		if req.DepartmentID != nil && !sameID(req.DepartmentID, m.DepartmentID) {
			return nil, ErrProfileFieldReserved
		}
		if req.Status != nil && *req.Status != m.Status {
			return nil, ErrProfileFieldReserved
		}
	}

	applyMemberUpdate(m, req)

	if err := s.repo.Member.Update(ctx, m); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, storeError(s.logger, "更新社员失败", err, nil, zap.Int64("id", id))
	}
	return m, nil
}

func applyMemberUpdate(m *model.Member, req *dto.UpdateMemberRequest) {
	if req.Name != nil {
		if n := strings.TrimSpace(*req.Name); n != "" {
			m.Name = n
		}
	}
	if req.StudentID != nil {
		m.StudentID = req.StudentID
	}
	if req.Department != nil {
		m.Department = req.Department
	}
	if req.Grade != nil {
		m.Grade = req.Grade
	}
	if req.Position != nil {
		m.Position = req.Position
	}
	if req.DepartmentID != nil {
		m.DepartmentID = req.DepartmentID
	}
	if req.Generation != nil {
		m.Generation = req.Generation
	}
	if req.Phone != nil {
		m.Phone = req.Phone
	}
	if req.Email != nil {
		m.Email = req.Email
	}
	if req.Skills != nil {
		m.Skills = normalizeTags(req.Skills)
	}
	if req.Interests != nil {
		m.Interests = normalizeTags(req.Interests)
	}
	if req.Industry != nil {
		m.Industry = req.Industry
	}
	if req.JobRole != nil {
		m.JobRole = req.JobRole
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
}

// ────────────────────── Delete ──────────────────────

func (s *memberService) Delete(ctx context.Context, caller *policy.Identity, id int64) error {
	m, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		return storeError(s.logger, "查询社员失败", err, ErrMemberNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.MemberDelete, policy.OwnedBy(m.UserID)); err != nil {
		return err
	}

	if err := s.repo.Member.Delete(ctx, id); err != nil {
		return storeError(s.logger, "删除社员失败", err, ErrMemberNotFound, zap.Int64("id", id))
	}

	s.logger.Info("删除社员档案", zap.Int64("id", id), zap.Int64("operator", caller.UserID))
	return nil
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
