package service

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/model"
	"club-portal/backend/internal/policy"
	"club-portal/backend/internal/repository"
	"club-portal/backend/pkg/database"
	apperrors "club-portal/backend/pkg/errors"
)

var (
	ErrFileNotFound     = apperrors.NotFound("文件不存在")
	ErrInvalidReference = apperrors.Validation("分类或部门不存在")
	ErrCategoryExists   = apperrors.Conflict("分类名称已存在")
)

// FileService 文件索引与分类业务接口
type FileService interface {
	List(ctx context.Context, req *dto.FileListRequest) ([]model.FileDetail, error)
	Get(ctx context.Context, id int64) (*model.FileDetail, error)
	Create(ctx context.Context, caller *policy.Identity, req *dto.CreateFileRequest) (*model.File, error)
	Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateFileRequest) (*model.File, error)
	Delete(ctx context.Context, caller *policy.Identity, id int64) error
	Stats(ctx context.Context) (*model.FileStats, error)

	ListCategories(ctx context.Context) ([]model.FileCategory, error)
	CreateCategory(ctx context.Context, caller *policy.Identity, req *dto.CreateCategoryRequest) (*model.FileCategory, error)
}

type fileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFileService 创建 FileService 实例
func NewFileService(repo *repository.Repository, logger *zap.Logger) FileService {
	return &fileService{repo: repo, logger: logger}
}

// ────────────────────── List / Get / Stats ──────────────────────

func (s *fileService) List(ctx context.Context, req *dto.FileListRequest) ([]model.FileDetail, error) {
	list, err := s.repo.File.List(ctx, repository.FileFilter{
		Year:         req.Year,
		DepartmentID: req.DepartmentID,
		CategoryID:   req.CategoryID,
		Search:       strings.TrimSpace(req.Search),
		Tags:         splitTags(req.Tags),
	})
	if err != nil {
		return nil, storeError(s.logger, "查询文件列表失败", err, nil)
	}
	return list, nil
}

func (s *fileService) Get(ctx context.Context, id int64) (*model.FileDetail, error) {
	f, err := s.repo.File.GetDetail(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询文件失败", err, ErrFileNotFound, zap.Int64("id", id))
	}
	return f, nil
}

func (s *fileService) Stats(ctx context.Context) (*model.FileStats, error) {
	stats, err := s.repo.File.Stats(ctx)
	if err != nil {
		return nil, storeError(s.logger, "统计文件失败", err, nil)
	}
	return stats, nil
}

// ────────────────────── Create ──────────────────────

func (s *fileService) Create(ctx context.Context, caller *policy.Identity, req *dto.CreateFileRequest) (*model.File, error) {
	if err := policy.Authorize(caller, policy.FileCreate, policy.InDepartment(req.DepartmentID)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyContent
	}

	categoryID := req.CategoryID
	uploadedBy := caller.UserID
	f := &model.File{
		Title:          title,
		CategoryID:     &categoryID,
		Year:           req.Year,
		DepartmentID:   req.DepartmentID,
		GoogleDriveURL: req.GoogleDriveURL,
		FileType:       req.FileType,
		Description:    req.Description,
		Tags:           normalizeTags(req.Tags),
		UploadedBy:     &uploadedBy,
	}
	if err := s.repo.File.Create(ctx, f); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, storeError(s.logger, "新增文件失败", err, nil)
	}
	return f, nil
}

// ────────────────────── Update ──────────────────────

func (s *fileService) Update(ctx context.Context, caller *policy.Identity, id int64, req *dto.UpdateFileRequest) (*model.File, error) {
	f, err := s.repo.File.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "查询文件失败", err, ErrFileNotFound, zap.Int64("id", id))
	}

	target := policy.Target{DepartmentID: f.DepartmentID, NewDepartmentID: req.DepartmentID}
	if err := policy.Authorize(caller, policy.FileUpdate, target); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			f.Title = t
		}
	}
	if req.CategoryID != nil {
		f.CategoryID = req.CategoryID
	}
	if req.Year != nil {
		f.Year = *req.Year
	}
	if req.DepartmentID != nil {
		f.DepartmentID = req.DepartmentID
	}
	if req.GoogleDriveURL != nil {
		f.GoogleDriveURL = *req.GoogleDriveURL
	}
	if req.FileType != nil {
		f.FileType = req.FileType
	}
	if req.Description != nil {
		f.Description = req.Description
	}
	if req.Tags != nil {
		f.Tags = normalizeTags(req.Tags)
	}

	if err := s.repo.File.Update(ctx, f); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, storeError(s.logger, "更新文件失败", err, nil, zap.Int64("id", id))
	}
	return f, nil
}

// ────────────────────── Delete ──────────────────────

func (s *fileService) Delete(ctx context.Context, caller *policy.Identity, id int64) error {
	f, err := s.repo.File.GetByID(ctx, id)
	if err != nil {
		return storeError(s.logger, "查询文件失败", err, ErrFileNotFound, zap.Int64("id", id))
	}

	if err := policy.Authorize(caller, policy.FileDelete, policy.InDepartment(f.DepartmentID)); err != nil {
		return err
	}

	if err := s.repo.File.Delete(ctx, id); err != nil {
		return storeError(s.logger, "删除文件失败", err, ErrFileNotFound, zap.Int64("id", id))
	}
	return nil
}

// ────────────────────── Category ──────────────────────

func (s *fileService) ListCategories(ctx context.Context) ([]model.FileCategory, error) {
	list, err := s.repo.FileCategory.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "查询文件分类失败", err, nil)
	}
	return list, nil
}

func (s *fileService) CreateCategory(ctx context.Context, caller *policy.Identity, req *dto.CreateCategoryRequest) (*model.FileCategory, error) {
	if err := policy.Authorize(caller, policy.FileCategoryCreate, policy.Target{}); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("分类名称不能为空")
	}

	c := &model.FileCategory{Name: name, Description: req.Description}
	if err := s.repo.FileCategory.Create(ctx, c); err != nil {
		if database.IsUniqueViolation(err, "file_categories_name_key") {
			return nil, ErrCategoryExists
		}
		return nil, storeError(s.logger, "新增文件分类失败", err, nil)
	}
	return c, nil
}

// splitTags 解析逗号分隔的标签查询参数
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return normalizeTags(strings.Split(raw, ","))
}

// normalizeTags 去除首尾空白、空标签与重复标签，保持原有顺序
func normalizeTags(tags []string) pq.StringArray {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make(pq.StringArray, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
