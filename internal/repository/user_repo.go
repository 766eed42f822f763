package repository

import (
	"context"

	"gorm.io/gorm"

	"club-portal/backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// CreateWithMember 在同一事务内创建用户及其社员档案
	CreateWithMember(ctx context.Context, user *model.User, member *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetProfileByUsername(ctx context.Context, username string) (*model.UserProfile, error)
	GetProfileByID(ctx context.Context, id int64) (*model.UserProfile, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateWithMember(ctx context.Context, user *model.User, member *model.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		member.UserID = user.ID
		return tx.Create(member).Error
	})
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetProfileByUsername(ctx context.Context, username string) (*model.UserProfile, error) {
	return r.getProfile(ctx, "u.username = ?", username)
}

func (r *userRepo) GetProfileByID(ctx context.Context, id int64) (*model.UserProfile, error) {
	return r.getProfile(ctx, "u.id = ?", id)
}

func (r *userRepo) getProfile(ctx context.Context, cond string, arg interface{}) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.WithContext(ctx).
		Table("users u").
		Select("u.id, u.username, u.role, u.is_active, u.password_hash, " +
			"m.id AS member_id, m.name, m.email, m.department_id, m.generation").
		Joins("LEFT JOIN members m ON m.user_id = u.id").
		Where(cond, arg).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
