package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// DepartmentHandler 部门模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
	errs    *errorWriter
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService, errs *errorWriter) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc, errs: errs}
}

// List 获取部门列表（含社员数与文件数）
// GET /api/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	list, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"departments": list})
}

// Get 获取部门详情
// GET /api/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	dept, err := h.deptSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"department": dept})
}
