package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 事件通知服务
	notifyService services.InterfaceNotifyService

	// 业务服务
	reportService      services.InterfaceReportService
	applicationService services.InterfaceApplicationService
	userService        services.InterfaceUserService
	rateLimitService   services.InterfaceRateLimitService
	captchaService     services.InterfaceCaptchaService
	storageService     services.InterfaceStorageService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.redis)
	}

	// 初始化事件通知服务
	c.notifyService = services.NewNotifyService(c.config)
	if err := c.notifyService.Connect(); err != nil {
		log.Printf("MQTT服务连接失败: %v", err)
	}

	// 初始化业务服务
	c.rateLimitService = services.NewRateLimitService(c.config, c.redis)
	c.captchaService = services.NewCaptchaService(c.config)
	c.storageService = services.NewStorageService(c.config)
	c.reportService = services.NewReportService(c.db, c.config, c.rateLimitService, c.captchaService, c.notifyService)
	c.applicationService = services.NewApplicationService(c.db, c.config, c.notifyService)
	c.userService = services.NewUserService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "notify":
		return c.notifyService
	case "report":
		return c.reportService
	case "application":
		return c.applicationService
	case "user":
		return c.userService
	case "rate_limit":
		return c.rateLimitService
	case "captcha":
		return c.captchaService
	case "storage":
		return c.storageService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}
