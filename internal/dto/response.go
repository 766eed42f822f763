package dto

import "club-portal/backend/internal/model"

// ── 认证模块响应 ──

// UserInfo 登录/注册返回的用户信息（脱敏）
type UserInfo struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	DepartmentID *int64 `json:"department_id"`
}

// AuthResult 登录/注册结果
type AuthResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// CurrentUser 当前登录用户（GET /auth/me）
type CurrentUser struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Role     string        `json:"role"`
	Member   *model.Member `json:"member"`
}

// ── 社群模块响应 ──

// AnnouncementView 公告详情（含留言）
type AnnouncementView struct {
	model.AnnouncementDetail
	Comments []model.CommentDetail `json:"comments"`
}

// EventView 活动详情（含报名名单）
type EventView struct {
	model.EventDetail
	Registrations []model.RegistrationDetail `json:"registrations"`
}
