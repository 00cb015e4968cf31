package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"pawsconnect-http-service/internal/domain/models"
	"pawsconnect-http-service/internal/infrastructure/config"
	"pawsconnect-http-service/pkg/logger"
)

// 申请相关的哨兵错误
var (
	ErrApplicationNotFound     = errors.New("application not found")
	ErrApplicationAlreadyExist = errors.New("application already exists")
	ErrInvalidStatus           = errors.New("invalid application status")
)

// 面板状态，前端据此决定展示哪个页面
const (
	DashboardStateAdminPanel           = "admin_panel"
	DashboardStateVerificationRequired = "verification_required"
	DashboardStateNoApplication        = "no_application"
)

// InterfaceApplicationService 定义合作申请服务接口
type InterfaceApplicationService interface {
	CreateApplication(application *models.PartnerApplication) error
	GetOwnApplication(userID uint) (*models.PartnerApplication, error)
	ListApplications(filter string) ([]models.PartnerApplication, error)
	SetStatus(applicationID uint, status string, adminID uint) (*models.PartnerApplication, error)
}

// ApplicationService 处理合作申请的创建、查询与审核
type ApplicationService struct {
	DB     *gorm.DB
	Config *config.Config
	Notify InterfaceNotifyService
}

// NewApplicationService 创建一个新的申请服务
func NewApplicationService(db *gorm.DB, cfg *config.Config, notify InterfaceNotifyService) InterfaceApplicationService {
	return &ApplicationService{
		DB:     db,
		Config: cfg,
		Notify: notify,
	}
}

// CreateApplication 创建合作申请，每个账户只允许一份
func (s *ApplicationService) CreateApplication(application *models.PartnerApplication) error {
	var count int64
	if err := s.DB.Model(&models.PartnerApplication{}).
		Where("user_id = ?", application.UserID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrApplicationAlreadyExist
	}

	application.Status = models.ApplicationStatusPending
	application.ApprovedAt = nil
	application.ApprovedBy = nil

	if err := s.DB.Create(application).Error; err != nil {
		logger.Error("Failed to create application: %v", err)
		return err
	}

	logger.Info("Partner application created: user=%d org=%s", application.UserID, application.Organization)
	return nil
}

// GetOwnApplication 查询账户自己的申请，没有时返回ErrApplicationNotFound
// 读取侧统一归一化状态，历史数据里的大小写和空白不外泄
func (s *ApplicationService) GetOwnApplication(userID uint) (*models.PartnerApplication, error) {
	var application models.PartnerApplication
	err := s.DB.Where("user_id = ?", userID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	application.Status = models.NormalizeApplicationStatus(application.Status)
	return &application, nil
}

// ListApplications 按状态过滤并按创建时间倒序返回申请列表
// filter为空或"all"时返回全部；过滤在归一化后的状态上进行
func (s *ApplicationService) ListApplications(filter string) ([]models.PartnerApplication, error) {
	var applications []models.PartnerApplication
	if err := s.DB.Find(&applications).Error; err != nil {
		return nil, err
	}

	for i := range applications {
		applications[i].Status = models.NormalizeApplicationStatus(applications[i].Status)
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter != "" && filter != "all" {
		filtered := applications[:0]
		for _, app := range applications {
			if app.Status == filter {
				filtered = append(filtered, app)
			}
		}
		applications = filtered
	}

	SortApplicationsByNewest(applications)
	return applications, nil
}

// SetStatus 审核申请：设置状态并维护审批元数据
// 只有approved状态携带审批时间和审批人，其余状态清空这两个字段
func (s *ApplicationService) SetStatus(applicationID uint, status string, adminID uint) (*models.PartnerApplication, error) {
	if !models.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	status = models.NormalizeApplicationStatus(status)

	var application models.PartnerApplication
	if err := s.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	application.Status = status
	if status == models.ApplicationStatusApproved {
		now := time.Now()
		application.ApprovedAt = &now
		application.ApprovedBy = &adminID
	} else {
		application.ApprovedAt = nil
		application.ApprovedBy = nil
	}
	application.UpdatedAt = time.Now()

	if err := s.DB.Save(&application).Error; err != nil {
		logger.Error("Failed to update application %d: %v", applicationID, err)
		return nil, err
	}

	if s.Notify != nil {
		if err := s.Notify.PublishApplicationStatus(application.ID, application.Status); err != nil {
			logger.Warning("Failed to publish application event: %v", err)
		}
	}

	logger.Info("Application %d set to %s by admin %d", application.ID, status, adminID)
	return &application, nil
}

// SortApplicationsByNewest 按创建时间从新到旧排序，零值时间排在最后
func SortApplicationsByNewest(applications []models.PartnerApplication) {
	sort.SliceStable(applications, func(i, j int) bool {
		a, b := applications[i].CreatedAt, applications[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}

// DeriveDashboardState 根据账户与申请推导面板状态
// 优先级：管理员 > 邮箱未验证 > 无申请 > 申请状态
func DeriveDashboardState(user *models.User, application *models.PartnerApplication) string {
	if user.IsAdmin() {
		return DashboardStateAdminPanel
	}
	if !user.EmailVerified {
		return DashboardStateVerificationRequired
	}
	if application == nil {
		return DashboardStateNoApplication
	}
	return models.NormalizeApplicationStatus(application.Status)
}
