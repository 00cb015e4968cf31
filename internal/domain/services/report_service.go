package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"pawsconnect-http-service/internal/domain/models"
	"pawsconnect-http-service/internal/infrastructure/config"
	"pawsconnect-http-service/pkg/logger"
	"pawsconnect-http-service/pkg/utils"
)

// 提交校验与限流的哨兵错误，控制器据此映射公开错误码
var (
	ErrInvalidLocation    = errors.New("invalid location")
	ErrMissingDescription = errors.New("missing description")
	ErrMissingCaptcha     = errors.New("missing captcha")
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrInvalidPhotoURL    = errors.New("invalid photo url")
	ErrReportRateLimited  = errors.New("report rate limited")
	ErrDeviceRateLimited  = errors.New("report rate limited for device")
	ErrReportNotFound     = errors.New("report not found")
)

// InterfaceReportService 定义报告服务接口
type InterfaceReportService interface {
	SubmitReport(input *SubmitReportInput) (*models.Report, error)
	GetReportByTicket(ticketID string) (*models.Report, error)
}

// SubmitReportInput 报告提交参数
// Lat/Lng/PhotoURL保留原始JSON类型，类型错误与缺失同样按校验失败处理
type SubmitReportInput struct {
	Lat          interface{} `json:"lat"`
	Lng          interface{} `json:"lng"`
	Urgency      string      `json:"urgency"`
	Description  string      `json:"description"`
	PhotoURL     interface{} `json:"photoUrl"`
	CaptchaToken string      `json:"captchaToken"`
	DeviceUID    string      `json:"uid"` // 匿名设备标识，可选

	// 由控制器填充，不来自请求体
	ClientIP string `json:"-"`
}

// ReportService 处理流浪动物报告的提交与查询
type ReportService struct {
	DB        *gorm.DB
	Config    *config.Config
	RateLimit InterfaceRateLimitService
	Captcha   InterfaceCaptchaService
	Notify    InterfaceNotifyService
}

// NewReportService 创建一个新的报告服务
func NewReportService(db *gorm.DB, cfg *config.Config, rateLimit InterfaceRateLimitService, captcha InterfaceCaptchaService, notify InterfaceNotifyService) InterfaceReportService {
	return &ReportService{
		DB:        db,
		Config:    cfg,
		RateLimit: rateLimit,
		Captcha:   captcha,
		Notify:    notify,
	}
}

// SubmitReport 校验、限流并持久化一条报告
// 校验顺序固定：位置 -> 描述 -> 人机验证 -> 图片地址，
// 全部通过后才消耗限流配额
func (s *ReportService) SubmitReport(input *SubmitReportInput) (*models.Report, error) {
	// 只做类型校验，坐标值原样存储
	lat, latOK := asCoordinate(input.Lat)
	lng, lngOK := asCoordinate(input.Lng)
	if !latOK || !lngOK {
		return nil, ErrInvalidLocation
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrMissingDescription
	}

	if strings.TrimSpace(input.CaptchaToken) == "" {
		return nil, ErrMissingCaptcha
	}
	passed, err := s.Captcha.Verify(input.CaptchaToken, input.ClientIP)
	if err != nil {
		logger.Error("Captcha verify error: %v", err)
		return nil, ErrCaptchaFailed
	}
	if !passed {
		return nil, ErrCaptchaFailed
	}

	photoURL, err := normalizePhotoURL(input.PhotoURL)
	if err != nil {
		return nil, err
	}

	// IP在前，设备标识在后，每个键各自消耗短窗口和长窗口配额
	if input.ClientIP != "" {
		allowed, err := s.RateLimit.AllowReport("ip:" + utils.HashKey(input.ClientIP))
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrReportRateLimited
		}
	}
	if input.DeviceUID != "" {
		allowed, err := s.RateLimit.AllowReport("uid:" + utils.HashKey(input.DeviceUID))
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrDeviceRateLimited
		}
	}

	now := time.Now()
	report := &models.Report{
		TicketID:    GenerateTicketID(),
		Lat:         lat,
		Lng:         lng,
		Urgency:     models.NormalizeUrgency(input.Urgency),
		Description: description,
		PhotoURL:    photoURL,
		Status:      models.ReportStatusPending,
		Source:      models.ReportSourceResident,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.DB.Create(report).Error; err != nil {
		logger.Error("Failed to create report: %v", err)
		return nil, err
	}

	if s.Notify != nil {
		if err := s.Notify.PublishReportCreated(report); err != nil {
			logger.Warning("Failed to publish report event: %v", err)
		}
	}

	logger.Info("Report created: %s urgency=%s", report.TicketID, report.Urgency)
	return report, nil
}

// GetReportByTicket 按工单号查询报告
func (s *ReportService) GetReportByTicket(ticketID string) (*models.Report, error) {
	var report models.Report
	err := s.DB.Where("ticket_id = ?", strings.TrimSpace(ticketID)).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// GenerateTicketID 生成形如 PC-12345 的工单号，随机部分固定为五位数
func GenerateTicketID() string {
	return fmt.Sprintf("PC-%d", utils.RandomIntRange(10000, 99999))
}

// asCoordinate 从JSON解码结果中取出数值坐标，非数值类型一律视为非法
func asCoordinate(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// normalizePhotoURL 校验可选的图片地址：
// 缺失或空串视为未提供，提供时只要求是字符串，内容原样存储
func normalizePhotoURL(value interface{}) (*string, error) {
	if value == nil {
		return nil, nil
	}

	raw, ok := value.(string)
	if !ok {
		return nil, ErrInvalidPhotoURL
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	return &raw, nil
}
