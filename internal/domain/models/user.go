package models

import (
	"strings"
	"time"
)

// 用户角色
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
)

// User 账户记录，role为admin时拥有审核权限
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password          string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role              string    `gorm:"type:varchar(20);not null;default:partner" json:"role"`
	EmailVerified     bool      `gorm:"not null;default:false" json:"email_verified"`
	VerificationToken string    `gorm:"type:varchar(64)" json:"-"` // 邮箱验证令牌，验证后清空
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsAdmin 判断账户是否具有管理员角色，比较时忽略大小写和空白
func (u *User) IsAdmin() bool {
	return strings.ToLower(strings.TrimSpace(u.Role)) == RoleAdmin
}
