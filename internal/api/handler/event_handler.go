package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// EventHandler 活动与报名 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
	errs     *errorWriter
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService, errs *errorWriter) *EventHandler {
	return &EventHandler{eventSvc: eventSvc, errs: errs}
}

// List 活动列表
// GET /api/community/events?department_id=&status=&upcoming=
func (h *EventHandler) List(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	list, err := h.eventSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"events": list})
}

// Get 活动详情（含报名名单）
// GET /api/community/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.eventSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"event": view})
}

// Create 建立活动
// POST /api/community/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	e, err := h.eventSvc.Create(c.Request.Context(), CurrentIdentity(c), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "活动已建立", gin.H{"event": e})
}

// Update 更新活动
// PUT /api/community/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	e, err := h.eventSvc.Update(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "活动已更新", gin.H{"event": e})
}

// Delete 删除活动
// DELETE /api/community/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "活动已删除", nil)
}

// Register 报名活动
// POST /api/community/events/:id/register
func (h *EventHandler) Register(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	// 请求体可省略
	var req dto.RegisterEventRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.errs.bindFailed(c, err)
			return
		}
	}

	reg, err := h.eventSvc.Register(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "报名成功", gin.H{"registration": reg})
}

// CancelRegistration 取消报名
// DELETE /api/community/events/:id/register
func (h *EventHandler) CancelRegistration(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.eventSvc.CancelRegistration(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "已取消报名", nil)
}
