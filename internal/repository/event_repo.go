package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"club-portal/backend/internal/model"
)

var (
	// ErrCapacityReached 活动报名人数已达上限
	ErrCapacityReached = errors.New("event capacity reached")
	// ErrCapacityBelowRegistered 新的人数上限低于当前已报名人数
	ErrCapacityBelowRegistered = errors.New("capacity below registered count")
)

// EventFilter 活动列表过滤条件
type EventFilter struct {
	DepartmentID *int64
	Status       string
	Upcoming     bool // 仅返回尚未开始的活动
}

// EventRepository 活动数据访问接口
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	GetDetail(ctx context.Context, id int64) (*model.EventDetail, error)
	List(ctx context.Context, filter EventFilter) ([]model.EventDetail, error)
	// Update 锁定活动行后校验人数上限不低于已报名人数再写入，
	// 与 CreateWithinCapacity 使用同一行锁，两者串行执行
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id int64) error
}

// eventRepo EventRepository 的 GORM 实现
type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var e model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("events e").
		Select("e.*, d.name AS department_name, u.username AS created_by_name, "+
			"(SELECT COUNT(*) FROM registrations WHERE event_id = e.id AND status = ?) AS registered_count",
			model.RegistrationStatusRegistered).
		Joins("LEFT JOIN departments d ON e.department_id = d.id").
		Joins("LEFT JOIN users u ON e.created_by = u.id")
}

func (r *eventRepo) GetDetail(ctx context.Context, id int64) (*model.EventDetail, error) {
	var e model.EventDetail
	if err := r.detailQuery(ctx).Where("e.id = ?", id).Take(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) List(ctx context.Context, f EventFilter) ([]model.EventDetail, error) {
	q := r.detailQuery(ctx)
	if f.DepartmentID != nil {
		q = q.Where("e.department_id = ?", *f.DepartmentID)
	}
	if f.Status != "" {
		q = q.Where("e.status = ?", f.Status)
	}
	if f.Upcoming {
		q = q.Where("e.start_time > CURRENT_TIMESTAMP")
	}

	list := []model.EventDetail{}
	err := q.Order("e.start_time ASC").Scan(&list).Error
	return list, err
}

func (r *eventRepo) Update(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", e.ID).
			Take(&locked).Error; err != nil {
			return err
		}

		if e.MaxParticipants != nil {
			count, err := countRegistered(tx, e.ID)
			if err != nil {
				return err
			}
			if count > int64(*e.MaxParticipants) {
				return ErrCapacityBelowRegistered
			}
		}

		return tx.Save(e).Error
	})
}

// countRegistered 统计活动的有效报名人数，调用方需已持有活动行锁
func countRegistered(tx *gorm.DB, eventID int64) (int64, error) {
	var count int64
	err := tx.Model(&model.Registration{}).
		Where("event_id = ? AND status = ?", eventID, model.RegistrationStatusRegistered).
		Count(&count).Error
	return count, err
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &model.Event{}, id)
}

// ── 报名 ──

// RegistrationRepository 活动报名数据访问接口
type RegistrationRepository interface {
	// CreateWithinCapacity 锁定活动行后统计已报名人数并写入，三步在同一事务内完成。
	// 活动不存在返回 gorm.ErrRecordNotFound，人数已满返回 ErrCapacityReached，
	// 重复报名由唯一约束拒绝。
	CreateWithinCapacity(ctx context.Context, reg *model.Registration) error
	Delete(ctx context.Context, eventID, memberID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]model.RegistrationDetail, error)
}

// registrationRepo RegistrationRepository 的 GORM 实现
type registrationRepo struct {
	db *gorm.DB
}

// NewRegistrationRepo 创建 RegistrationRepository 实例
func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) CreateWithinCapacity(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "max_participants").
			Where("id = ?", reg.EventID).
			Take(&event).Error; err != nil {
			return err
		}

		if event.MaxParticipants != nil {
			count, err := countRegistered(tx, reg.EventID)
			if err != nil {
				return err
			}
			if count >= int64(*event.MaxParticipants) {
				return ErrCapacityReached
			}
		}

		if reg.Status == "" {
			reg.Status = model.RegistrationStatusRegistered
		}
		return tx.Create(reg).Error
	})
}

func (r *registrationRepo) Delete(ctx context.Context, eventID, memberID int64) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		Delete(&model.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *registrationRepo) ListByEvent(ctx context.Context, eventID int64) ([]model.RegistrationDetail, error) {
	list := []model.RegistrationDetail{}
	err := r.db.WithContext(ctx).
		Table("registrations r").
		Select("r.*, m.name, m.phone, m.email").
		Joins("LEFT JOIN members m ON r.member_id = m.id").
		Where("r.event_id = ?", eventID).
		Order("r.registered_at ASC, r.id ASC").
		Scan(&list).Error
	return list, err
}
