package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
// 连接池由调用方持有并注入，Repository 只在每次调用时借用
type Repository struct {
	User         UserRepository
	Member       MemberRepository
	Department   DepartmentRepository
	Announcement AnnouncementRepository
	Comment      CommentRepository
	Event        EventRepository
	Registration RegistrationRepository
	File         FileRepository
	FileCategory FileCategoryRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Member:       NewMemberRepo(db),
		Department:   NewDepartmentRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Comment:      NewCommentRepo(db),
		Event:        NewEventRepo(db),
		Registration: NewRegistrationRepo(db),
		File:         NewFileRepo(db),
		FileCategory: NewFileCategoryRepo(db),
	}
}

// deleteByID 按主键删除，未命中时返回 gorm.ErrRecordNotFound
func deleteByID(db *gorm.DB, value interface{}, id int64) error {
	result := db.Delete(value, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
