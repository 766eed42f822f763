package repository

import (
	"context"

	"gorm.io/gorm"

	"club-portal/backend/internal/model"
)

// DepartmentRepository 部门数据访问接口（部门为只读参考数据）
type DepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	ListWithCounts(ctx context.Context) ([]model.DepartmentSummary, error)
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) ListWithCounts(ctx context.Context) ([]model.DepartmentSummary, error) {
	depts := []model.DepartmentSummary{}
	err := r.db.WithContext(ctx).
		Table("departments d").
		Select("d.*, " +
			"(SELECT COUNT(*) FROM members WHERE department_id = d.id AND status = 'active') AS member_count, " +
			"(SELECT COUNT(*) FROM files WHERE department_id = d.id) AS file_count").
		Order("d.id").
		Scan(&depts).Error
	return depts, err
}
