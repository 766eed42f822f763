package dto

import "time"

// ── 公告与留言 ──

// AnnouncementListRequest 公告列表查询参数
// department_id 返回该部门公告与全社公告
type AnnouncementListRequest struct {
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
	Limit        int    `form:"limit"         binding:"omitempty,min=1,max=200"`
}

// CreateAnnouncementRequest 发布公告请求；department_id 为空表示全社公告
type CreateAnnouncementRequest struct {
	Title        string `json:"title"         binding:"required,max=200"`
	Content      string `json:"content"       binding:"required"`
	DepartmentID *int64 `json:"department_id" binding:"omitempty,min=1"`
	IsPinned     bool   `json:"is_pinned"`
}

// UpdateAnnouncementRequest 更新公告请求（未提供的字段保持原值）
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title"     binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content"   binding:"omitempty,min=1"`
	IsPinned *bool   `json:"is_pinned"`
}

// CreateCommentRequest 留言请求；parent_id 非空表示回复
type CreateCommentRequest struct {
	Content  string `json:"content"   binding:"required"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,min=1"`
}

// ── 活动与报名 ──

// EventListRequest 活动列表查询参数
type EventListRequest struct {
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
	Status       string `form:"status"        binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Upcoming     bool   `form:"upcoming"`
}

// CreateEventRequest 建立活动请求
type CreateEventRequest struct {
	Title           string    `json:"title"            binding:"required,max=200"`
	Description     *string   `json:"description"`
	DepartmentID    *int64    `json:"department_id"    binding:"omitempty,min=1"`
	StartTime       time.Time `json:"start_time"       binding:"required"`
	EndTime         time.Time `json:"end_time"         binding:"required"`
	Location        *string   `json:"location"         binding:"omitempty,max=200"`
	MaxParticipants *int      `json:"max_participants" binding:"omitempty,min=1"`
}

// UpdateEventRequest 更新活动请求（未提供的字段保持原值）
type UpdateEventRequest struct {
	Title           *string    `json:"title"            binding:"omitempty,min=1,max=200"`
	Description     *string    `json:"description"`
	DepartmentID    *int64     `json:"department_id"    binding:"omitempty,min=1"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Location        *string    `json:"location"         binding:"omitempty,max=200"`
	MaxParticipants *int       `json:"max_participants" binding:"omitempty,min=1"`
	Status          *string    `json:"status"           binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// RegisterEventRequest 活动报名请求
type RegisterEventRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=500"`
}
