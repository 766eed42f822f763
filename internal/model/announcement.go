package model

import "time"

// Announcement 公告，对应 announcements；DepartmentID 为空表示全社公告
type Announcement struct {
	ID           int64  `gorm:"primaryKey"                 json:"id"`
	Title        string `gorm:"type:varchar(200);not null" json:"title"`
	Content      string `gorm:"type:text;not null"         json:"content"`
	AuthorID     *int64 `                                  json:"author_id"`
	DepartmentID *int64 `                                  json:"department_id"`
	IsPinned     bool   `gorm:"not null;default:false"     json:"is_pinned"`
	Timestamps
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }

// AnnouncementDetail 公告列表/详情视图
type AnnouncementDetail struct {
	Announcement
	AuthorName     *string `json:"author_name"`
	DepartmentName *string `json:"department_name"`
	CommentCount   int64   `json:"comment_count"`
}

// Comment 公告留言，对应 comments；ParentID 非空表示回复
type Comment struct {
	ID             int64     `gorm:"primaryKey"                         json:"id"`
	AnnouncementID int64     `gorm:"not null"                           json:"announcement_id"`
	AuthorID       *int64    `                                          json:"author_id"`
	Content        string    `gorm:"type:text;not null"                 json:"content"`
	ParentID       *int64    `                                          json:"parent_id"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Comment) TableName() string { return "comments" }

// CommentDetail 留言视图
type CommentDetail struct {
	Comment
	AuthorName *string `json:"author_name"`
}
