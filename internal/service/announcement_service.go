package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
)

const defaultAnnouncementLimit = 50

var (
	ErrAnnouncementNotFound = apperrors.NotFound("公告不存在")
	ErrParentCommentInvalid = apperrors.Validation("回复的留言不存在或不属于此公告")
	ErrEmptyContent         = apperrors.Validation("内容不能为空")
)

// AnnouncementService 公告与留言业务接口
type AnnouncementService interface {
	List(ctx context.Context, req *dto.AnnouncementListRequest) ([]model.AnnouncementDetail, error)
	Get(ctx context.Context, id int64) (*dto.AnnouncementView, error)
	Create(ctx context.Context, caller *policy.Identity, req *dto.CreateAnnouncementRequest) (*model.Announcement, error)
	Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateAnnouncementRequest) (*model.Announcement, error)
	Delete(ctx context.Context, caller *policy.Identity, id int64) error
	CreateComment(ctx context.Context, caller *policy.Identity, announcementID int64, req *dto.CreateCommentRequest) (*model.Comment, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

// ────────────────────── List / Get ──────────────────────

func (s *announcementService) List(ctx context.Context, req *dto.AnnouncementListRequest) ([]model.AnnouncementDetail, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultAnnouncementLimit
	}
	list, err := s.repo.Announcement.List(ctx, req.DepartmentID, limit)
	if err != nil {
		return nil, storeError(s.logger, "查询公告列表失败", err, nil)
	}
	return list, nil
}

func (s *announcementService) Get(ctx context.Context, id int64) (*dto.AnnouncementView, error) {
	a, err := s.repo.Announcement.GetDetail(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询公告失败", err, ErrAnnouncementNotFound, zap.Int64("id", id))
	}

	comments, err := s.repo.Comment.ListByAnnouncement(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询留言失败", err, nil, zap.Int64("announcement_id", id))
	}

	return &dto.AnnouncementView{AnnouncementDetail: *a, Comments: comments}, nil
}

// ────────────────────── Create ──────────────────────

func (s *announcementService) Create(ctx context.Context, caller *policy.Identity, req *dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	if err := policy.Authorize(caller, policy.AnnouncementCreate, policy.InDepartment(req.DepartmentID)); err != nil {
		return nil, err
	}

	title, content := strings.TrimSpace(req.Title), strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrEmptyContent
	}

	authorID := caller.UserID
	a := &model.Announcement{
		Title:        title,
		Content:      content,
		AuthorID:     &authorID,
		DepartmentID: req.DepartmentID,
		IsPinned:     req.IsPinned,
	}
	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, storeError(s.logger, "发布公告失败", err, nil)
	}
	return a, nil
}

// ────────────────────── Update ──────────────────────

func (s *announcementService) Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateAnnouncementRequest) (*model.Announcement, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询公告失败", err, ErrAnnouncementNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.AnnouncementUpdate, policy.InDepartment(a.DepartmentID)); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			a.Title = t
		}
	}
	if req.Content != nil {
		if c := strings.TrimSpace(*req.Content); c != "" {
			a.Content = c
		}
	}
	if req.IsPinned != nil {
		a.IsPinned = *req.IsPinned
	}

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		return nil, storeError(s.logger, "更新公告失败", err, nil, zap.Int64("id", id))
	}
	return a, nil
}

// ────────────────────── Delete ──────────────────────

func (s *announcementService) Delete(ctx context.Context, caller *policy.Identity, id int64) error {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		return storeError(s.logger, "查询公告失败", err, ErrAnnouncementNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.AnnouncementDelete, policy.InDepartment(a.DepartmentID)); err != nil {
		return err
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		return storeError(s.logger, "删除公告失败", err, ErrAnnouncementNotFound, zap.Int64("id", id))
	}
	return nil
}

// ────────────────────── Comment ──────────────────────

func (s *announcementService) CreateComment(ctx context.Context, caller *policy.Identity, announcementID int64, req *dto.CreateCommentRequest) (*model.Comment, error) {
	if err := policy.Authorize(caller, policy.CommentCreate, policy.Target{}); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.repo.Announcement.GetByID(ctx, announcementID); err != nil {
		return nil, storeError(s.logger, "查询公告失败", err, ErrAnnouncementNotFound, zap.Int64("id", announcementID))
	}

	if req.ParentID != nil {
		parent, err := s.repo.Comment.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentCommentInvalid
			}
			return nil, storeError(s.logger, "查询留言失败", err, nil)
		}
		if parent.AnnouncementID != announcementID {
			return nil, ErrParentCommentInvalid
		}
	}

	authorID := caller.UserID
	c := &model.Comment{
		AnnouncementID: announcementID,
		AuthorID:       &authorID,
		Content:        content,
		ParentID:       req.ParentID,
	}
	if err := s.repo.Comment.Create(ctx, c); err != nil {
		if database.IsForeignKeyViolation(err) {
			// 公告在校验之后被删除
			return nil, ErrAnnouncementNotFound
		}
		return nil, storeError(s.logger, "发表留言失败", err, nil)
	}
	return c, nil
}
