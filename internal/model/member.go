package model

import (
	"time"

	"github.com/lib/pq"
)

// 社员状态
const (
	MemberStatusActive    = "active"
	MemberStatusInactive  = "inactive"
	MemberStatusGraduated = "graduated"
)

// Member 社员档案，对应 members，与 users 一对一
// Department 为所读科系（自由文本），DepartmentID 为社团内部门
type Member struct {
	ID           int64          `gorm:"primaryKey"                      json:"id"`
	UserID       int64          `gorm:"not null"                        json:"user_id"`
	Name         string         `gorm:"type:varchar(100);not null"      json:"name"`
	StudentID    *string        `gorm:"type:varchar(20)"                json:"student_id"`
	Department   *string        `gorm:"type:varchar(100)"               json:"department"`
	Grade        *string        `gorm:"type:varchar(20)"                json:"grade"`
	Position     *string        `gorm:"type:varchar(50)"                json:"position"`
	DepartmentID *int64         `                                       json:"department_id"`
	Generation   *int           `                                       json:"generation"`
	Phone        *string        `gorm:"type:varchar(30)"                json:"phone"`
	Email        *string        `gorm:"type:varchar(255)"               json:"email"`
	Skills       pq.StringArray `gorm:"type:text[]"                     json:"skills"`
	Interests    pq.StringArray `gorm:"type:text[]"                     json:"interests"`
	Industry     *string        `gorm:"type:varchar(100)"               json:"industry"`
	JobRole      *string        `gorm:"type:varchar(100)"               json:"job_role"`
	Status       string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinedDate   time.Time      `gorm:"type:date;not null;default:CURRENT_DATE"    json:"joined_date"`
	Timestamps
}

// TableName 指定表名
func (Member) TableName() string { return "members" }

// MemberDetail 社员列表/详情视图
type MemberDetail struct {
	Member
	Username       string  `json:"username"`
	Role           string  `json:"role"`
	IsActive       bool    `json:"is_active"`
	DepartmentName *string `json:"department_name"`
}

// NamedCount 分组统计项
type NamedCount struct {
	Name  *string `json:"name"`
	Count int64   `json:"count"`
}

// MemberStats 社员统计
type MemberStats struct {
	Total        int64        `json:"total"`
	ByGeneration []GenCount   `json:"by_generation"`
	ByDepartment []NamedCount `json:"by_department"`
	ByIndustry   []NamedCount `json:"by_industry"`
}

// GenCount 按届统计
type GenCount struct {
	Generation *int  `json:"generation"`
	Count      int64 `json:"count"`
}
