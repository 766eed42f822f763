package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-portal/backend/config"
	"club-portal/backend/internal/api/handler"
	"club-portal/backend/internal/api/middleware"
	"club-portal/backend/internal/policy"
	"club-portal/backend/pkg/database"
	"club-portal/backend/pkg/jwt"
	"club-portal/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时 Token 吊销检查与限流均降级放行
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	system := handler.NewSystemHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, logger)

	var (
		revocations middleware.RevocationStore
		limiter     middleware.RateLimiter
	)
	if rdb != nil {
		revocations, limiter = rdb, rdb
	}

	return newEngine(cfg, h, system, jwtMgr, revocations, limiter, logger)
}

func newEngine(
	cfg *config.Config,
	h *handler.Handler,
	system *handler.SystemHandler,
	jwtMgr *jwt.Manager,
	revocations middleware.RevocationStore,
	limiter middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Server.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders(!cfg.Server.IsDevelopment()))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(middleware.Timeout(cfg.Database.QueryTimeout))

	// ── 健康检查与索引 ──
	r.GET("/", system.Index)
	r.GET("/health", system.Health)
	r.NoRoute(system.NoRoute)

	api := r.Group("/api")
	authLimit := middleware.RateLimit(limiter, cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)

	// 认证模块（无需认证）
	auth := api.Group("/auth")
	{
		auth.POST("/register", authLimit, h.Auth.Register)
		auth.POST("/login", authLimit, h.Auth.Login)
	}

	// 需要认证的路由
	// RequireAction 只挂在创建类路由上；/:id 的修改与删除由 Service 先加载目标再鉴权，
	// 目标不存在时返回 404 而非 403
	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, revocations))
	{
		authorized.GET("/auth/me", h.Auth.Me)
		authorized.POST("/auth/logout", h.Auth.Logout)

		// 社群模块：公告与留言
		announcements := authorized.Group("/community/announcements")
		{
			announcements.GET("", h.Announcement.List)
			announcements.GET("/:id", h.Announcement.Get)
			announcements.POST("", middleware.RequireAction(policy.AnnouncementCreate), h.Announcement.Create)
			announcements.PUT("/:id", h.Announcement.Update)
			announcements.DELETE("/:id", h.Announcement.Delete)
			announcements.POST("/:id/comments", h.Announcement.CreateComment)
		}

		// 社群模块：活动与报名
		events := authorized.Group("/community/events")
		{
			events.GET("", h.Event.List)
			events.GET("/calendar", h.Export.ExportEventCalendar)
			events.GET("/:id", h.Event.Get)
			events.GET("/:id/ics", h.Export.ExportEvent)
			events.POST("", middleware.RequireAction(policy.EventCreate), h.Event.Create)
			events.PUT("/:id", h.Event.Update)
			events.DELETE("/:id", h.Event.Delete)
			events.POST("/:id/register", h.Event.Register)
			events.DELETE("/:id/register", h.Event.CancelRegistration)
		}

		// 文件模块（固定路径先于 /:id 注册）
		files := authorized.Group("/files")
		{
			files.GET("", h.File.List)
			files.GET("/categories/list", h.File.ListCategories)
			files.POST("/categories", middleware.RequireAction(policy.FileCategoryCreate), h.File.CreateCategory)
			files.GET("/stats/overview", h.File.Stats)
			files.GET("/:id", h.File.Get)
			files.POST("", middleware.RequireAction(policy.FileCreate), h.File.Create)
			files.PUT("/:id", h.File.Update)
			files.DELETE("/:id", h.File.Delete)
		}

		// 社员模块
		members := authorized.Group("/members")
		{
			members.GET("", h.Member.List)
			members.GET("/stats/overview", h.Member.Stats)
			members.GET("/export", middleware.RequireAction(policy.MemberExport), h.Export.ExportMembers)
			members.GET("/:id", h.Member.Get)
			members.PUT("/:id", h.Member.Update)
			members.DELETE("/:id", h.Member.Delete)
		}

		// 部门模块（只读）
		departments := authorized.Group("/departments")
		{
			departments.GET("", h.Department.List)
			departments.GET("/:id", h.Department.Get)
		}
	}

	return r
}
