package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求（同时建立社员档案）
type RegisterRequest struct {
	Username     string  `json:"username"      binding:"required,min=3,max=50"`
	Password     string  `json:"password"      binding:"required,min=6,max=72"`
	Role         string  `json:"role"          binding:"required,oneof=president advisor officer member alumni"`
	Name         string  `json:"name"          binding:"required,max=100"`
	Email        string  `json:"email"         binding:"required,email,max=255"`
	StudentID    *string `json:"student_id"    binding:"omitempty,max=20"`
	Department   *string `json:"department"    binding:"omitempty,max=100"`
	Grade        *string `json:"grade"         binding:"omitempty,max=20"`
	Position     *string `json:"position"      binding:"omitempty,max=50"`
	DepartmentID *int64  `json:"department_id" binding:"omitempty,min=1"`
	Generation   *int    `json:"generation"    binding:"omitempty,min=1"`
	Phone        *string `json:"phone"         binding:"omitempty,max=30"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
