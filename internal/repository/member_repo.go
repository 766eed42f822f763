package repository

import (
	"context"

	"gorm.io/gorm"

	"club-portal/backend/internal/model"
)

// MemberFilter 社员列表过滤条件（零值表示不过滤）
type MemberFilter struct {
	Status       string
	Generation   *int
	DepartmentID *int64
	Industry     string
	JobRole      string
	Search       string // 姓名或学号模糊匹配
}

// MemberRepository 社员档案数据访问接口
type MemberRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Member, error)
	GetDetail(ctx context.Context, id int64) (*model.MemberDetail, error)
	List(ctx context.Context, filter MemberFilter) ([]model.MemberDetail, error)
	ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.MemberDetail, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.MemberStats, error)
}

// memberRepo MemberRepository 的 GORM 实现
type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	var m model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) GetByUserID(ctx context.Context, userID int64) (*model.Member, error) {
	var m model.Member
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("members m").
		Select("m.*, u.username, u.role, u.is_active, d.name AS department_name").
		Joins("LEFT JOIN users u ON m.user_id = u.id").
		Joins("LEFT JOIN departments d ON m.department_id = d.id")
}

func (r *memberRepo) GetDetail(ctx context.Context, id int64) (*model.MemberDetail, error) {
	var m model.MemberDetail
	if err := r.detailQuery(ctx).Where("m.id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) List(ctx context.Context, f MemberFilter) ([]model.MemberDetail, error) {
	q := r.detailQuery(ctx)
	if f.Status != "" {
		q = q.Where("m.status = ?", f.Status)
	}
	if f.Generation != nil {
		q = q.Where("m.generation = ?", *f.Generation)
	}
	if f.DepartmentID != nil {
		q = q.Where("m.department_id = ?", *f.DepartmentID)
	}
	if f.Industry != "" {
		q = q.Where("m.industry = ?", f.Industry)
	}
	if f.JobRole != "" {
		q = q.Where("m.job_role = ?", f.JobRole)
	}
	if f.Search != "" {
		like := "%" + escapeLike(f.Search) + "%"
		q = q.Where("(m.name ILIKE ? OR m.student_id ILIKE ?)", like, like)
	}

	members := []model.MemberDetail{}
	err := q.Order("m.generation DESC NULLS LAST, m.name ASC").Scan(&members).Error
	return members, err
}

func (r *memberRepo) ListActiveByDepartment(ctx context.Context, departmentID int64) ([]model.MemberDetail, error) {
	members := []model.MemberDetail{}
	err := r.detailQuery(ctx).
		Where("m.department_id = ? AND m.status = ?", departmentID, model.MemberStatusActive).
		Order("m.position, m.name").
		Scan(&members).Error
	return members, err
}

func (r *memberRepo) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Member{}, id)
}

func (r *memberRepo) Stats(ctx context.Context) (*model.MemberStats, error) {
	db := r.db.WithContext(ctx)
	stats := &model.MemberStats{
		ByGeneration: []model.GenCount{},
		ByDepartment: []model.NamedCount{},
		ByIndustry:   []model.NamedCount{},
	}

	if err := db.Model(&model.Member{}).
		Where("status = ?", model.MemberStatusActive).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Member{}).
		Select("generation, COUNT(*) AS count").
		Where("status = ?", model.MemberStatusActive).
		Group("generation").
		Order("generation DESC NULLS LAST").
		Scan(&stats.ByGeneration).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`SELECT d.name, COUNT(m.id) AS count
		FROM departments d
		LEFT JOIN members m ON d.id = m.department_id AND m.status = ?
		GROUP BY d.id, d.name
		ORDER BY d.id`, model.MemberStatusActive).
		Scan(&stats.ByDepartment).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Member{}).
		Select("industry AS name, COUNT(*) AS count").
		Where("status = ? AND industry IS NOT NULL", model.MemberStatusActive).
		Group("industry").
		Order("count DESC").
		Scan(&stats.ByIndustry).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
