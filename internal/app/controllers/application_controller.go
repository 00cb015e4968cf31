package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/app/middleware"
	"pawsconnect-http-service/internal/domain/models"
	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/error/code"
	"pawsconnect-http-service/internal/error/response"
	"pawsconnect-http-service/pkg/logger"
)

// InterfaceApplicationController 定义合作申请控制器接口
type InterfaceApplicationController interface {
	Signup()
	Dashboard()
}

// ApplicationController 处理合作方注册与面板请求
type ApplicationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewApplicationController 创建一个新的申请控制器
func NewApplicationController(ctx *gin.Context, container *container.ServiceContainer) *ApplicationController {
	return &ApplicationController{
		Ctx:       ctx,
		Container: container,
	}
}

// SignupRequest 表示合作方注册请求，账户与申请一并创建
type SignupRequest struct {
	Email        string `json:"email" binding:"required,email" example:"rescue@example.org"`
	Password     string `json:"password" binding:"required,min=6" example:"secret123"`
	FullName     string `json:"fullName" binding:"required" example:"Jane Doe"`
	Organization string `json:"organization" binding:"required" example:"Happy Paws Rescue"`
	Phone        string `json:"phone" binding:"required" example:"+1-555-0123"`
	PermitLink   string `json:"permitLink" example:"https://registry.example.org/permits/123"`
	PermitURL    string `json:"permitUrl" example:"/uploads/permit_3f2a.pdf"`
}

// DashboardData 表示面板响应数据
type DashboardData struct {
	State       string                     `json:"state" example:"pending"`
	Application *models.PartnerApplication `json:"application,omitempty"`
}

// HandleApplicationFunc 返回一个处理合作申请请求的Gin处理函数
func HandleApplicationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewApplicationController(ctx, container)

		switch method {
		case "signup":
			controller.Signup()
		case "dashboard":
			controller.Dashboard()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Signup 注册合作方账户并提交合作申请
// @Summary      Partner signup
// @Description  Creates a partner account and its application in one step; the application starts as pending
// @Tags         Partner
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse  "Duplicate account or application"
// @Router       /partner/signup [post]
func (c *ApplicationController) Signup() {
	var req SignupRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid signup payload.", nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	applicationService := c.Container.GetService("application").(services.InterfaceApplicationService)

	user, err := userService.RegisterPartner(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExist):
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
		case errors.Is(err, services.ErrInvalidRegistrationPayload):
			response.Fail(c.Ctx, code.ErrValidation, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	application := &models.PartnerApplication{
		UserID:       user.ID,
		FullName:     strings.TrimSpace(req.FullName),
		Organization: strings.TrimSpace(req.Organization),
		Email:        user.Email,
		Phone:        strings.TrimSpace(req.Phone),
		PermitLink:   strings.TrimSpace(req.PermitLink),
		PermitURL:    strings.TrimSpace(req.PermitURL),
	}

	if err := applicationService.CreateApplication(application); err != nil {
		if errors.Is(err, services.ErrApplicationAlreadyExist) {
			response.Fail(c.Ctx, code.ErrApplicationAlreadyExist, nil)
			return
		}
		logger.Error("Signup failed for %s: %v", user.Email, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user_id":     user.ID,
		"application": application,
	})
}

// Dashboard 返回合作方面板状态
// @Summary      Partner dashboard
// @Description  Derives which dashboard view the account should see from its role, email verification and application status
// @Tags         Partner
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200  {object}  response.Response{data=DashboardData}
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden"
// @Router       /partner/dashboard [get]
func (c *ApplicationController) Dashboard() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	applicationService := c.Container.GetService("application").(services.InterfaceApplicationService)

	user, err := userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 管理员和邮箱未验证的账户不查申请，直接返回对应状态
	state := services.DeriveDashboardState(user, nil)
	if state == services.DashboardStateAdminPanel || state == services.DashboardStateVerificationRequired {
		response.Success(c.Ctx, DashboardData{State: state})
		return
	}

	// 没有申请不是错误，面板用no_application状态表达
	application, err := applicationService.GetOwnApplication(userID)
	if err != nil && !errors.Is(err, services.ErrApplicationNotFound) {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, DashboardData{
		State:       services.DeriveDashboardState(user, application),
		Application: application,
	})
}
