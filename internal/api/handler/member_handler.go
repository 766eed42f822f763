package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// MemberHandler 社员模块 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
	errs      *errorWriter
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService, errs *errorWriter) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc, errs: errs}
}

// List 社员列表
// GET /api/members?status=&generation=&department_id=&industry=&job_role=&search=
func (h *MemberHandler) List(c *gin.Context) {
	var req dto.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	list, err := h.memberSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"members": list})
}

// Get 社员详情
// GET /api/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	m, err := h.memberSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"member": m})
}

// Update 更新社员档案（本人或社长、指导老师）
// PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	m, err := h.memberSvc.Update(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "社员资料已更新", gin.H{"member": m})
}

// Delete 删除社员档案
// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "社员已删除", nil)
}

// Stats 社员统计
// GET /api/members/stats/overview
func (h *MemberHandler) Stats(c *gin.Context) {
	stats, err := h.memberSvc.Stats(c.Request.Context())
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"stats": stats})
}
