package model

// User 用户表，对应 users
// 角色在注册时确定，之后不可修改
type User struct {
	ID           int64  `gorm:"primaryKey"                  json:"id"`
	Username     string `gorm:"type:varchar(50);not null"   json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"  json:"-"`
	Role         string `gorm:"type:varchar(20);not null"   json:"role"`
	IsActive     bool   `gorm:"not null;default:true"       json:"is_active"`
	Timestamps
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// UserProfile 用户与社员档案的合并视图（/auth/me、登录）
type UserProfile struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Role         string  `json:"role"`
	IsActive     bool    `json:"-"`
	PasswordHash string  `json:"-"`
	MemberID     *int64  `json:"member_id"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	DepartmentID *int64  `json:"department_id"`
	Generation   *int    `json:"generation"`
}
