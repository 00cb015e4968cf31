package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// parseClaims 校验令牌并返回claims，失败时写入401响应并返回nil
func parseClaims(c *gin.Context) jwt.MapClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid or expired token",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token claims",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	return claims
}

// AuthenticateSystemAdmin 验证系统管理员权限
func AuthenticateSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseClaims(c)
		if claims == nil {
			return
		}

		// 检查是否是系统管理员
		if role, exists := claims["role"].(string); !exists || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 存储claims到上下文
		c.Set("userID", claims["user_id"])
		c.Set("role", claims["role"])
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticatePartner 验证合作方权限
func AuthenticatePartner() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseClaims(c)
		if claims == nil {
			return
		}

		// 管理员也可以访问合作方的接口
		role, exists := claims["role"].(string)
		if !exists || (role != "partner" && role != "admin") {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires partner role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("role", role)
		c.Set("claims", claims)
		c.Next()
	}
}

// Authentication 通用的认证中间件，只校验令牌不限制角色
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := parseClaims(c)
		if claims == nil {
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("role", claims["role"])
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentUserID 从上下文取出当前登录用户ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	// JWT解码后数值统一为float64
	switch v := raw.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}
