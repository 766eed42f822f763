package dto

// ── 社员模块 DTO ──

// MemberListRequest 社员列表查询参数；status 默认 active
type MemberListRequest struct {
	Status       string `form:"status"        binding:"omitempty,oneof=active inactive graduated"`
	Generation   *int   `form:"generation"    binding:"omitempty,min=1"`
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
	Industry     string `form:"industry"      binding:"omitempty,max=100"`
	JobRole      string `form:"job_role"      binding:"omitempty,max=100"`
	Search       string `form:"search"        binding:"omitempty,max=100"`
}

// UpdateMemberRequest 更新社员档案请求（未提供的字段保持原值）
// department_id 与 status 仅社长、指导老师可修改
type UpdateMemberRequest struct {
	Name         *string  `json:"name"          binding:"omitempty,min=1,max=100"`
	StudentID    *string  `json:"student_id"    binding:"omitempty,max=20"`
	Department   *string  `json:"department"    binding:"omitempty,max=100"`
	Grade        *string  `json:"grade"         binding:"omitempty,max=20"`
	Position     *string  `json:"position"      binding:"omitempty,max=50"`
	DepartmentID *int64   `json:"department_id" binding:"omitempty,min=1"`
	Generation   *int     `json:"generation"    binding:"omitempty,min=1"`
	Phone        *string  `json:"phone"         binding:"omitempty,max=30"`
	Email        *string  `json:"email"         binding:"omitempty,email,max=255"`
	Skills       []string `json:"skills"        binding:"omitempty,max=30,dive,max=50"`
	Interests    []string `json:"interests"     binding:"omitempty,max=30,dive,max=50"`
	Industry     *string  `json:"industry"      binding:"omitempty,max=100"`
	JobRole      *string  `json:"job_role"      binding:"omitempty,max=100"`
	Status       *string  `json:"status"        binding:"omitempty,oneof=active inactive graduated"`
}
