package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/app/middleware"
	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/error/code"
	"pawsconnect-http-service/internal/error/response"
	"pawsconnect-http-service/pkg/logger"
)

// InterfaceAdminController 定义管理员审核控制器接口
type InterfaceAdminController interface {
	ListApplications()
	SetApplicationStatus()
}

// AdminController 处理管理员对合作申请的审核请求
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// SetStatusRequest 表示审核状态变更请求
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "listApplications":
			controller.ListApplications()
		case "setApplicationStatus":
			controller.SetApplicationStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// ListApplications 按状态过滤返回申请列表
// @Summary      List partner applications
// @Description  Returns applications filtered by status and sorted by creation time, newest first
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        filter query string false "Status filter" Enums(pending, approved, rejected, all) default(all)
// @Success      200  {object}  response.Response{data=[]models.PartnerApplication}
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden"
// @Router       /applications [get]
func (c *AdminController) ListApplications() {
	filter := c.Ctx.Query("filter")

	applicationService := c.Container.GetService("application").(services.InterfaceApplicationService)

	applications, err := applicationService.ListApplications(filter)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, applications)
}

// SetApplicationStatus 审核申请状态
// @Summary      Moderate a partner application
// @Description  Sets the application status; approving records the approval time and the acting admin
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path int true "Application ID"
// @Param        request body SetStatusRequest true "New status"
// @Success      200  {object}  response.Response{data=models.PartnerApplication}
// @Failure      400  {object}  ErrorResponse  "Invalid status value"
// @Failure      403  {object}  ErrorResponse  "Forbidden"
// @Failure      404  {object}  ErrorResponse  "Application not found"
// @Router       /applications/{id}/status [put]
func (c *AdminController) SetApplicationStatus() {
	applicationID, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid application ID.", nil)
		return
	}

	var req SetStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Status is required.", nil)
		return
	}

	adminID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	applicationService := c.Container.GetService("application").(services.InterfaceApplicationService)

	application, err := applicationService.SetStatus(uint(applicationID), req.Status, adminID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			response.Fail(c.Ctx, code.ErrApplicationInvalidStatus, nil)
		case errors.Is(err, services.ErrApplicationNotFound):
			response.Fail(c.Ctx, code.ErrApplicationNotFound, nil)
		default:
			logger.Error("Failed to set application %d status: %v", applicationID, err)
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, application)
}
