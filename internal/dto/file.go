package dto

// ── 文件模块 DTO ──

// FileListRequest 文件列表查询参数；tags 以逗号分隔，命中任一即可
type FileListRequest struct {
	Year         *int   `form:"year"          binding:"omitempty,min=2000,max=2100"`
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
	CategoryID   *int64 `form:"category_id"   binding:"omitempty,min=1"`
	Search       string `form:"search"        binding:"omitempty,max=100"`
	Tags         string `form:"tags"          binding:"omitempty,max=200"`
}

// CreateFileRequest 新增文件请求
type CreateFileRequest struct {
	Title          string   `json:"title"            binding:"required,max=200"`
	CategoryID     int64    `json:"category_id"      binding:"required,min=1"`
	Year           int      `json:"year"             binding:"required,min=2000,max=2100"`
	DepartmentID   *int64   `json:"department_id"    binding:"omitempty,min=1"`
	GoogleDriveURL string   `json:"google_drive_url" binding:"required,url"`
	FileType       *string  `json:"file_type"        binding:"omitempty,max=50"`
	Description    *string  `json:"description"`
	Tags           []string `json:"tags"             binding:"omitempty,max=20,dive,min=1,max=50"`
}

// UpdateFileRequest 更新文件请求（未提供的字段保持原值）
type UpdateFileRequest struct {
	Title          *string  `json:"title"            binding:"omitempty,min=1,max=200"`
	CategoryID     *int64   `json:"category_id"      binding:"omitempty,min=1"`
	Year           *int     `json:"year"             binding:"omitempty,min=2000,max=2100"`
	DepartmentID   *int64   `json:"department_id"    binding:"omitempty,min=1"`
	GoogleDriveURL *string  `json:"google_drive_url" binding:"omitempty,url"`
	FileType       *string  `json:"file_type"        binding:"omitempty,max=50"`
	Description    *string  `json:"description"`
	Tags           []string `json:"tags"             binding:"omitempty,max=20,dive,min=1,max=50"`
}

// CreateCategoryRequest 新增文件分类请求
type CreateCategoryRequest struct {
	Name        string  `json:"name"        binding:"required,max=50"`
	Description *string `json:"description"`
}
