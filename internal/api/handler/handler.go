package handler

import (
	"go.uber.org/zap"

	"club-portal/backend/config"
	"club-portal/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Announcement *AnnouncementHandler
	Event        *EventHandler
	File         *FileHandler
	Member       *MemberHandler
	Department   *DepartmentHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Handler {
	ew := newErrorWriter(cfg.Server.IsDevelopment(), logger)
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, ew),
		Announcement: NewAnnouncementHandler(svc.Announcement, ew),
		Event:        NewEventHandler(svc.Event, ew),
		File:         NewFileHandler(svc.File, ew),
		Member:       NewMemberHandler(svc.Member, ew),
		Department:   NewDepartmentHandler(svc.Department, ew),
		Export:       NewExportHandler(svc.Export, ew),
	}
}
