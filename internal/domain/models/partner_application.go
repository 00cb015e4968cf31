package models

import (
	"strings"
	"time"
)

// 合作申请状态，存储值统一为小写
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// PartnerApplication 志愿组织的合作申请，每个账户只能有一份
type PartnerApplication struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName     string     `gorm:"type:varchar(100);not null" json:"full_name"`
	Organization string     `gorm:"type:varchar(200);not null" json:"organization"`
	Email        string     `gorm:"type:varchar(100);not null" json:"email"`
	Phone        string     `gorm:"type:varchar(20);not null" json:"phone"`
	PermitLink   string     `gorm:"type:varchar(512)" json:"permit_link"` // 申请人粘贴的证明链接
	PermitURL    string     `gorm:"type:varchar(512)" json:"permit_url"`  // 上传文件生成的访问地址
	Status       string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ApprovedAt   *time.Time `json:"approved_at"`
	ApprovedBy   *uint      `json:"approved_by"` // 审批管理员的用户ID
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NormalizeApplicationStatus 读取侧的状态归一化：去空白、转小写，未知值按pending处理
func NormalizeApplicationStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	switch status {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return status
	default:
		return ApplicationStatusPending
	}
}

// IsValidApplicationStatus 校验写入侧的状态值是否合法
func IsValidApplicationStatus(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
