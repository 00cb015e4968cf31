package models

import (
	"strings"
	"time"
)

// 报告紧急程度
const (
	UrgencyLow    = "LOW"
	UrgencyMedium = "MEDIUM"
	UrgencyHigh   = "HIGH"
)

// 报告状态（本服务只产生PENDING，后续流转由动物救助流程处理）
const (
	ReportStatusPending = "PENDING"
)

// 报告来源渠道
const (
	ReportSourceResident = "resident"
)

// Report 居民提交的流浪动物报告
type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"ticket_id"`
	Lat         float64   `gorm:"not null" json:"lat"`
	Lng         float64   `gorm:"not null" json:"lng"`
	Urgency     string    `gorm:"type:varchar(10);not null;default:LOW" json:"urgency"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PhotoURL    *string   `gorm:"type:varchar(512)" json:"photo_url"`
	Status      string    `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	Source      string    `gorm:"type:varchar(20);not null;default:resident" json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeUrgency 将输入归一化为合法的紧急程度，非法值一律按LOW处理
func NormalizeUrgency(value string) string {
	urgency := strings.ToUpper(strings.TrimSpace(value))
	switch urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return urgency
	default:
		return UrgencyLow
	}
}
