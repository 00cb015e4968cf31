package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawsconnect-http-service/internal/domain/models"
	"pawsconnect-http-service/internal/infrastructure/config"
	"pawsconnect-http-service/pkg/logger"
	"pawsconnect-http-service/pkg/utils"
)

// 账户相关的哨兵错误
var (
	ErrUserAlreadyExist           = errors.New("user already exists")
	ErrUserNotFound               = errors.New("user not found")
	ErrVerificationTokenMismatch  = errors.New("verification token invalid")
	ErrInvalidRegistrationPayload = errors.New("email and password are required")
)

// InterfaceUserService 定义账户服务接口
type InterfaceUserService interface {
	RegisterPartner(email, password string) (*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	VerifyEmail(userID uint, token string) error
	EnsureAdminExists() error
}

// UserService 处理账户注册、邮箱验证和管理员初始化
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的账户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// RegisterPartner 注册合作方账户并签发邮箱验证令牌
// 邮箱统一小写后查重；令牌目前写入日志，由运营渠道转交申请人
func (s *UserService) RegisterPartner(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidRegistrationPayload
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExist
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             email,
		Password:          hashed,
		Role:              models.RolePartner,
		EmailVerified:     false,
		VerificationToken: uuid.NewString(),
	}

	if err := s.DB.Create(user).Error; err != nil {
		logger.Error("Failed to create user: %v", err)
		return nil, err
	}

	// TODO: 接入邮件发送后改为投递验证邮件
	logger.Info("Verification token for %s: %s", user.Email, user.VerificationToken)
	return user, nil
}

// GetUserByID 按ID查询账户
func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyEmail 校验验证令牌并将账户标记为已验证，令牌一次性使用
func (s *UserService) VerifyEmail(userID uint, token string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return nil
	}
	if user.VerificationToken == "" || user.VerificationToken != strings.TrimSpace(token) {
		return ErrVerificationTokenMismatch
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	if err := s.DB.Save(user).Error; err != nil {
		logger.Error("Failed to verify email for user %d: %v", userID, err)
		return err
	}

	logger.Info("Email verified for user %d", userID)
	return nil
}

// EnsureAdminExists 确保默认管理员账户存在，服务启动时调用
func (s *UserService) EnsureAdminExists() error {
	email := strings.ToLower(strings.TrimSpace(s.Config.DefaultAdminEmail))

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(s.Config.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:         email,
		Password:      hashed,
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Default admin account created: %s", email)
	return nil
}
