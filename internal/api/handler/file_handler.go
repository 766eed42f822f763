package handler

import (
	"github.com/gin-gonic/gin"

	"club-portal/backend/internal/dto"
	"club-portal/backend/internal/service"
	"club-portal/backend/pkg/response"
)

// FileHandler 文件索引与分类 HTTP 处理器
type FileHandler struct {
	fileSvc service.FileService
	errs    *errorWriter
}

// NewFileHandler 创建 FileHandler
func NewFileHandler(fileSvc service.FileService, errs *errorWriter) *FileHandler {
	return &FileHandler{fileSvc: fileSvc, errs: errs}
}

// List 文件列表
// GET /api/files?year=&department_id=&category_id=&search=&tags=
func (h *FileHandler) List(c *gin.Context) {
	var req dto.FileListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	list, err := h.fileSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"files": list})
}

// Get 文件详情
// GET /api/files/:id
func (h *FileHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	f, err := h.fileSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"file": f})
}

// Create 新增文件
// POST /api/files
func (h *FileHandler) Create(c *gin.Context) {
	var req dto.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	f, err := h.fileSvc.Create(c.Request.Context(), CurrentIdentity(c), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "文件已新增", gin.H{"file": f})
}

// Update 更新文件
// PUT /api/files/:id
func (h *FileHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	f, err := h.fileSvc.Update(c.Request.Context(), CurrentIdentity(c), id, &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "文件已更新", gin.H{"file": f})
}

// Delete 删除文件
// DELETE /api/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.fileSvc.Delete(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "文件已删除", nil)
}

// Stats 文件统计
// GET /api/files/stats/overview
func (h *FileHandler) Stats(c *gin.Context) {
	stats, err := h.fileSvc.Stats(c.Request.Context())
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"stats": stats})
}

// ListCategories 文件分类列表
// GET /api/files/categories/list
func (h *FileHandler) ListCategories(c *gin.Context) {
	list, err := h.fileSvc.ListCategories(c.Request.Context())
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.OK(c, "获取成功", gin.H{"categories": list})
}

// CreateCategory 新增文件分类
// POST /api/files/categories
func (h *FileHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.bindFailed(c, err)
		return
	}

	cat, err := h.fileSvc.CreateCategory(c.Request.Context(), CurrentIdentity(c), &req)
	if err != nil {
		h.errs.handle(c, err)
		return
	}

	response.Created(c, "分类已新增", gin.H{"category": cat})
}
