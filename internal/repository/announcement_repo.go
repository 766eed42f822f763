package repository

import (
	"context"

	"gorm.io/gorm"

	"club-portal/backend/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id int64) (*model.Announcement, error)
	GetDetail(ctx context.Context, id int64) (*model.AnnouncementDetail, error)
	// List departmentID 非空时返回该部门公告与全社公告；置顶优先，其次按发布时间倒序
	List(ctx context.Context, departmentID *int64, limit int) ([]model.AnnouncementDetail, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id int64) (*model.Announcement, error) {
	var a model.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("announcements a").
		Select("a.*, u.username AS author_name, d.name AS department_name, " +
			"(SELECT COUNT(*) FROM comments WHERE announcement_id = a.id) AS comment_count").
		Joins("LEFT JOIN users u ON a.author_id = u.id").
		Joins("LEFT JOIN departments d ON a.department_id = d.id")
}

func (r *announcementRepo) GetDetail(ctx context.Context, id int64) (*model.AnnouncementDetail, error) {
	var a model.AnnouncementDetail
	if err := r.detailQuery(ctx).Where("a.id = ?", id).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, departmentID *int64, limit int) ([]model.AnnouncementDetail, error) {
	q := r.detailQuery(ctx)
	if departmentID != nil {
		q = q.Where("(a.department_id = ? OR a.department_id IS NULL)", *departmentID)
	}

	list := []model.AnnouncementDetail{}
	err := q.Order("a.is_pinned DESC, a.created_at DESC").Limit(limit).Scan(&list).Error
	return list, err
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Announcement{}, id)
}

// ── 留言 ──

// CommentRepository 留言数据访问接口
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByAnnouncement(ctx context.Context, announcementID int64) ([]model.CommentDetail, error)
}

// commentRepo CommentRepository 的 GORM 实现
type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo 创建 CommentRepository 实例
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) ListByAnnouncement(ctx context.Context, announcementID int64) ([]model.CommentDetail, error) {
	list := []model.CommentDetail{}
	err := r.db.WithContext(ctx).
		Table("comments c").
		Select("c.*, u.username AS author_name").
		Joins("LEFT JOIN users u ON c.author_id = u.id").
		Where("c.announcement_id = ?", announcementID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&list).Error
	return list, err
}
