package model

import (
	"time"

	"github.com/lib/pq"
)

// File 文件索引，对应 files；只记录外部链接，不存储文件内容
type File struct {
	ID             int64          `gorm:"primaryKey"                 json:"id"`
	Title          string         `gorm:"type:varchar(200);not null" json:"title"`
	CategoryID     *int64         `                                  json:"category_id"`
	Year           int            `gorm:"not null"                   json:"year"`
	DepartmentID   *int64         `                                  json:"department_id"`
	GoogleDriveURL string         `gorm:"column:google_drive_url;type:text;not null" json:"google_drive_url"`
	FileType       *string        `gorm:"type:varchar(50)"           json:"file_type"`
	Description    *string        `gorm:"type:text"                  json:"description"`
	Tags           pq.StringArray `gorm:"type:text[]"                json:"tags"`
	UploadedBy     *int64         `                                  json:"uploaded_by"`
	Timestamps
}

// TableName 指定表名
func (File) TableName() string { return "files" }

// FileDetail 文件列表/详情视图
type FileDetail struct {
	File
	CategoryName   *string `json:"category_name"`
	DepartmentName *string `json:"department_name"`
	UploadedByName *string `json:"uploaded_by_name"`
}

// FileCategory 文件分类，对应 file_categories
type FileCategory struct {
	ID          int64     `gorm:"primaryKey"                         json:"id"`
	Name        string    `gorm:"type:varchar(50);not null"          json:"name"`
	Description *string   `gorm:"type:text"                          json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (FileCategory) TableName() string { return "file_categories" }

// YearCount 按年份统计
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// FileStats 文件统计
type FileStats struct {
	Total        int64        `json:"total"`
	ByYear       []YearCount  `json:"by_year"`
	ByDepartment []NamedCount `json:"by_department"`
	ByCategory   []NamedCount `json:"by_category"`
}
