package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
)

const (
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	calendarContentType = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
	errs      *errorWriter
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, errs *errorWriter) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, errs: errs}
}

// ExportMembers 导出社员名册（过滤条件同社员列表）
// GET /api/members/export?status=&generation=&department_id=
func (h *ExportHandler) ExportMembers(c *gin.Context) {
	var req dto.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportMembers(c.Request.Context(), CurrentIdentity(c), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	sendFile(c, filename, xlsxContentType, buf.Bytes())
}

// ExportEventCalendar 导出活动日历（过滤条件同活动列表）
// GET /api/community/events/calendar?department_id=&status=&upcoming=
func (h *ExportHandler) ExportEventCalendar(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportEventCalendar(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	sendFile(c, filename, calendarContentType, buf.Bytes())
}

// ExportEvent 导出单个活动
// GET /api/community/events/:id/ics
func (h *ExportHandler) ExportEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportEvent(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	sendFile(c, filename, calendarContentType, buf.Bytes())
}

// sendFile 以附件形式写出下载内容
func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, data)
}
