package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/error/code"
	"pawsconnect-http-service/internal/error/response"
	"pawsconnect-http-service/pkg/logger"
)

// InterfaceReportController 定义报告控制器接口
type InterfaceReportController interface {
	Submit()
	GetByTicket()
}

// ReportController 处理居民报告相关请求
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController 创建一个新的报告控制器
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitReportResponse 表示提交成功响应
type SubmitReportResponse struct {
	OK       bool   `json:"ok" example:"true"`
	TicketID string `json:"ticketId" example:"PC-48213"`
}

// PublicErrorResponse 表示公共接口的错误响应
type PublicErrorResponse struct {
	Error string `json:"error" example:"Invalid location."`
}

// HandleReportFunc 返回一个处理报告请求的Gin处理函数
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "submit":
			controller.Submit()
		case "getByTicket":
			controller.GetByTicket()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Submit 处理报告提交
// @Summary      Submit a stray animal report
// @Description  Validates and stores a resident-submitted report, returns a ticket ID for follow-up
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request body services.SubmitReportInput true "Report payload"
// @Success      201  {object}  SubmitReportResponse  "Report accepted"
// @Failure      400  {object}  PublicErrorResponse   "Validation failure"
// @Failure      429  {object}  PublicErrorResponse   "Rate limit exceeded"
// @Failure      500  {object}  PublicErrorResponse   "Storage failure"
// @Router       /reports [post]
func (c *ReportController) Submit() {
	var input services.SubmitReportInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.PublicErrorWithMessage(c.Ctx, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	input.ClientIP = c.Ctx.ClientIP()

	reportService := c.Container.GetService("report").(services.InterfaceReportService)

	report, err := reportService.SubmitReport(&input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLocation):
			response.PublicError(c.Ctx, code.ErrReportInvalidLocation)
		case errors.Is(err, services.ErrMissingDescription):
			response.PublicError(c.Ctx, code.ErrReportMissingDescription)
		case errors.Is(err, services.ErrMissingCaptcha):
			response.PublicError(c.Ctx, code.ErrReportMissingCaptcha)
		case errors.Is(err, services.ErrCaptchaFailed):
			response.PublicError(c.Ctx, code.ErrCaptchaFailed)
		case errors.Is(err, services.ErrInvalidPhotoURL):
			response.PublicError(c.Ctx, code.ErrReportInvalidPhotoURL)
		case errors.Is(err, services.ErrReportRateLimited):
			response.PublicError(c.Ctx, code.ErrReportRateLimited)
		case errors.Is(err, services.ErrDeviceRateLimited):
			response.PublicError(c.Ctx, code.ErrReportRateLimitedDevice)
		default:
			logger.Error("Report submit failed: %v", err)
			response.PublicErrorWithMessage(c.Ctx, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.Ctx.JSON(http.StatusCreated, SubmitReportResponse{
		OK:       true,
		TicketID: report.TicketID,
	})
}

// GetByTicket 按工单号查询报告状态
// @Summary      Look up a report by ticket ID
// @Description  Returns the current status of a submitted report, for the resident status page
// @Tags         Reports
// @Produce      json
// @Param        ticketId path string true "Ticket ID" example(PC-48213)
// @Success      200  {object}  models.Report
// @Failure      404  {object}  PublicErrorResponse  "Unknown ticket"
// @Router       /reports/{ticketId} [get]
func (c *ReportController) GetByTicket() {
	ticketID := c.Ctx.Param("ticketId")

	// 命中Redis缓存时跳过数据库查询
	var redisService services.InterfaceRedisService
	if svc := c.Container.GetService("redis"); svc != nil {
		redisService = svc.(services.InterfaceRedisService)
		if cached, err := redisService.GetReportByTicket(ticketID); err == nil {
			c.Ctx.JSON(http.StatusOK, cached)
			return
		}
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	report, err := reportService.GetReportByTicket(ticketID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			response.PublicError(c.Ctx, code.ErrReportNotFound)
			return
		}
		response.PublicErrorWithMessage(c.Ctx, http.StatusInternalServerError, err.Error())
		return
	}

	if redisService != nil {
		if err := redisService.CacheReportByTicket(report, time.Minute); err != nil {
			logger.Warning("Failed to cache report %s: %v", report.TicketID, err)
		}
	}

	c.Ctx.JSON(http.StatusOK, report)
}
