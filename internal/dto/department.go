package dto

import "club-portal/backend/internal/model"

// ── 部门模块 DTO ──

// DepartmentDetail 部门详情（含在籍社员与最近文件）
type DepartmentDetail struct {
	model.Department
	Members     []model.MemberDetail `json:"members"`
	RecentFiles []model.FileDetail   `json:"recent_files"`
}
