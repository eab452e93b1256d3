package app

import (
	"mindwell_backend/internal/config"
	"mindwell_backend/internal/middleware"
	"mindwell_backend/internal/model"
	"mindwell_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerMemberRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 量表定义是公开的，作答前即可浏览
		public.GET("/tests/definitions", c.scale.ListDefinitions)
		public.GET("/tests/definitions/:code", c.scale.GetDefinition)
		public.GET("/tests/categories", c.scale.Categories)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	// 评估相关
	rg.POST("/tests/assess/:code", c.assessment.Assess)
	rg.GET("/tests/history", c.assessment.History)
	rg.GET("/tests/history/export", c.assessment.ExportPDF)
	rg.GET("/tests/records/:id", c.assessment.GetRecord)
	rg.GET("/tests/summary", c.assessment.Summary)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/catalog/refresh", c.scale.Refresh)
	}
}
