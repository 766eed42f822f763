package repository

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"club-portal/backend/internal/model"
)

// FileFilter 文件列表过滤条件
type FileFilter struct {
	Year         *int
	DepartmentID *int64
	CategoryID   *int64
	Search       string   // 标题或描述模糊匹配
	Tags         []string // 与文件标签有交集即命中
}

// FileRepository 文件索引数据访问接口
type FileRepository interface {
	Create(ctx context.Context, f *model.File) error
	GetByID(ctx context.Context, id int64) (*model.File, error)
	GetDetail(ctx context.Context, id int64) (*model.FileDetail, error)
	List(ctx context.Context, filter FileFilter) ([]model.FileDetail, error)
	ListRecentByDepartment(ctx context.Context, departmentID int64, limit int) ([]model.FileDetail, error)
	Update(ctx context.Context, f *model.File) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.FileStats, error)
}

// fileRepo FileRepository 的 GORM 实现
type fileRepo struct {
	db *gorm.DB
}

// NewFileRepo 创建 FileRepository 实例
func NewFileRepo(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, f *model.File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fileRepo) GetByID(ctx context.Context, id int64) (*model.File, error) {
	var f model.File
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("files f").
		Select("f.*, fc.name AS category_name, d.name AS department_name, u.username AS uploaded_by_name").
		Joins("LEFT JOIN file_categories fc ON f.category_id = fc.id").
		Joins("LEFT JOIN departments d ON f.department_id = d.id").
		Joins("LEFT JOIN users u ON f.uploaded_by = u.id")
}

func (r *fileRepo) GetDetail(ctx context.Context, id int64) (*model.FileDetail, error) {
	var f model.FileDetail
	if err := r.detailQuery(ctx).Where("f.id = ?", id).Take(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) List(ctx context.Context, filter FileFilter) ([]model.FileDetail, error) {
	q := r.detailQuery(ctx)
	if filter.Year != nil {
		q = q.Where("f.year = ?", *filter.Year)
	}
	if filter.DepartmentID != nil {
		q = q.Where("f.department_id = ?", *filter.DepartmentID)
	}
	if filter.CategoryID != nil {
		q = q.Where("f.category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + escapeLike(filter.Search) + "%"
		q = q.Where("(f.title ILIKE ? OR f.description ILIKE ?)", like, like)
	}
	if len(filter.Tags) > 0 {
		q = q.Where("f.tags && ?::text[]", pq.StringArray(filter.Tags))
	}

	list := []model.FileDetail{}
	err := q.Order("f.year DESC, f.created_at DESC").Scan(&list).Error
	return list, err
}

func (r *fileRepo) ListRecentByDepartment(ctx context.Context, departmentID int64, limit int) ([]model.FileDetail, error) {
	list := []model.FileDetail{}
	err := r.detailQuery(ctx).
		Where("f.department_id = ?", departmentID).
		Order("f.created_at DESC").
		Limit(limit).
		Scan(&list).Error
	return list, err
}

func (r *fileRepo) Update(ctx context.Context, f *model.File) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fileRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.File{}, id)
}

func (r *fileRepo) Stats(ctx context.Context) (*model.FileStats, error) {
	db := r.db.WithContext(ctx)
	stats := &model.FileStats{
		ByYear:       []model.YearCount{},
		ByDepartment: []model.NamedCount{},
		ByCategory:   []model.NamedCount{},
	}

	if err := db.Model(&model.File{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.File{}).
		Select("year, COUNT(*) AS count").
		Group("year").
		Order("year DESC").
		Scan(&stats.ByYear).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`SELECT d.name, COUNT(f.id) AS count
		FROM departments d
		LEFT JOIN files f ON d.id = f.department_id
		GROUP BY d.id, d.name
		ORDER BY d.id`).
		Scan(&stats.ByDepartment).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`SELECT fc.name, COUNT(f.id) AS count
		FROM file_categories fc
		LEFT JOIN files f ON fc.id = f.category_id
		GROUP BY fc.id, fc.name
		ORDER BY fc.name`).
		Scan(&stats.ByCategory).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// ── 文件分类 ──

// FileCategoryRepository 文件分类数据访问接口
type FileCategoryRepository interface {
	Create(ctx context.Context, c *model.FileCategory) error
	List(ctx context.Context) ([]model.FileCategory, error)
}

// fileCategoryRepo FileCategoryRepository 的 GORM 实现
type fileCategoryRepo struct {
	db *gorm.DB
}

// NewFileCategoryRepo 创建 FileCategoryRepository 实例
func NewFileCategoryRepo(db *gorm.DB) FileCategoryRepository {
	return &fileCategoryRepo{db: db}
}

func (r *fileCategoryRepo) Create(ctx context.Context, c *model.FileCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *fileCategoryRepo) List(ctx context.Context) ([]model.FileCategory, error) {
	list := []model.FileCategory{}
	err := r.db.WithContext(ctx).Order("name").Find(&list).Error
	return list, err
}
