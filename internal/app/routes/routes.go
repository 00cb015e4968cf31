package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pawsconnect-http-service/docs"
	"pawsconnect-http-service/internal/app/controllers"
	"pawsconnect-http-service/internal/app/middleware"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/infrastructure/config"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传文件静态访问
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Ping) // 兼容Docker健康检查的路由

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))

	// 合作方注册
	api.POST("/partner/signup", controllers.HandleApplicationFunc(container, "signup"))

	// 报告路由
	api.POST("/reports", controllers.HandleReportFunc(container, "submit"))
	api.GET("/reports/:ticketId",
		middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}),
		controllers.HandleReportFunc(container, "getByTicket"))

	// 报告图片上传
	api.POST("/uploads/report-photo", controllers.HandleUploadFunc(container, "reportPhoto"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 合作方路由：partner和admin角色都可访问
	partnerGroup := api.Group("/")
	partnerGroup.Use(middleware.AuthenticatePartner())
	partnerGroup.Use(middleware.IPRateLimiter(30, 50))
	partnerGroup.GET("/partner/dashboard", controllers.HandleApplicationFunc(container, "dashboard"))
	partnerGroup.POST("/auth/verify-email", controllers.HandleJWTFunc(container, "verifyEmail"))

	// 管理员审核路由
	adminGroup := api.Group("/applications")
	adminGroup.Use(middleware.AuthenticateSystemAdmin())
	adminGroup.Use(middleware.IPRateLimiter(30, 50))
	adminGroup.GET("", controllers.HandleAdminFunc(container, "listApplications"))
	adminGroup.PUT("/:id/status", controllers.HandleAdminFunc(container, "setApplicationStatus"))
}
