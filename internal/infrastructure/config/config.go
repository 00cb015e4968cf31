package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "drop"(删除重建)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// 报告限流策略（短窗口与长窗口相互独立）
	ReportShortWindow      time.Duration // 短窗口时长，默认10分钟
	ReportShortWindowLimit int           // 短窗口内允许的提交数，默认3
	ReportLongWindow       time.Duration // 长窗口时长，默认24小时
	ReportLongWindowLimit  int           // 长窗口内允许的提交数，默认10

	// 人机验证
	CaptchaVerifyURL string // 验证服务地址，为空时只做非空校验
	CaptchaSecret    string // 验证服务密钥

	// 上传
	UploadDir     string // 上传文件保存目录
	UploadBaseURL string // 上传文件对外访问前缀

	// MQTT配置（事件通知，可选）
	MQTTBrokerURL string // MQTT服务器地址，如 tcp://broker.example.com:1883
	MQTTClientID  string // MQTT客户端ID
	MQTTUsername  string // MQTT用户名
	MQTTPassword  string // MQTT密码

	// JWT Authentication
	JWTSecretKey string

	// Admin
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "pawsconnect_db")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// 报告限流配置
		ReportShortWindow:      time.Duration(getEnvAsInt("REPORT_SHORT_WINDOW_MINUTES", 10)) * time.Minute,
		ReportShortWindowLimit: getEnvAsInt("REPORT_SHORT_WINDOW_LIMIT", 3),
		ReportLongWindow:       time.Duration(getEnvAsInt("REPORT_LONG_WINDOW_HOURS", 24)) * time.Hour,
		ReportLongWindowLimit:  getEnvAsInt("REPORT_LONG_WINDOW_LIMIT", 10),

		// 人机验证配置
		CaptchaVerifyURL: getEnv("CAPTCHA_VERIFY_URL", ""),
		CaptchaSecret:    getEnv("CAPTCHA_SECRET", ""),

		// 上传配置
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),

		// MQTT配置
		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", ""),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", "pawsconnect_server"),
		MQTTUsername:  getEnv("MQTT_USERNAME", ""),
		MQTTPassword:  getEnv("MQTT_PASSWORD", ""),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "pawsconnect-secret-key-change-in-production"),

		// Admin Config
		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@pawsconnect.local"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
