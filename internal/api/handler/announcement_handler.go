package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// AnnouncementHandler 公告与留言 HTTP 处理器
type AnnouncementHandler struct {
	annSvc service.AnnouncementService
	errs   *errorWriter
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(annSvc service.AnnouncementService, errs *errorWriter) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc, errs: errs}
}

// List 公告列表
// GET /api/community/announcements?department_id=&limit=
func (h *AnnouncementHandler) List(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	list, err := h.annSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"announcements": list})
}

// Get 公告详情（含留言）
// GET /api/community/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.annSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"announcement": view})
}

// Create 发布公告
// POST /api/community/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	a, err := h.annSvc.Create(c.Request.Context(), CurrentIdentity(c), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "公告已发布", gin.H{"announcement": a})
}

// Update 更新公告
// PUT /api/community/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	a, err := h.annSvc.Update(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "公告已更新", gin.H{"announcement": a})
}

// Delete 删除公告
// DELETE /api/community/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.annSvc.Delete(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "公告已删除", nil)
}

// CreateComment 发表留言
// POST /api/community/announcements/:id/comments
func (h *AnnouncementHandler) CreateComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	comment, err := h.annSvc.CreateComment(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "留言成功", gin.H{"comment": comment})
}
