package model

import "time"

// Department 部门表，对应 departments（迁移时写入的参考数据）
type Department struct {
	ID          int64     `gorm:"primaryKey"                         json:"id"`
	Name        string    `gorm:"type:varchar(50);not null"          json:"name"`
	Description *string   `gorm:"type:text"                          json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }

// DepartmentSummary 部门列表项
type DepartmentSummary struct {
	Department
	MemberCount int64 `json:"member_count"`
	FileCount   int64 `json:"file_count"`
}
