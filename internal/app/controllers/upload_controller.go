package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/error/code"
	"pawsconnect-http-service/internal/error/response"
	"pawsconnect-http-service/pkg/logger"
)

// InterfaceUploadController 定义上传控制器接口
type InterfaceUploadController interface {
	ReportPhoto()
}

// UploadController 处理报告图片上传
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController 创建一个新的上传控制器
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// UploadPhotoResponse 表示上传成功响应
type UploadPhotoResponse struct {
	OK  bool   `json:"ok" example:"true"`
	URL string `json:"url" example:"/uploads/report_3f2a9c.jpg"`
}

// HandleUploadFunc 返回一个处理上传请求的Gin处理函数
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "reportPhoto":
			controller.ReportPhoto()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// ReportPhoto 保存报告图片并返回公开访问地址
// @Summary      Upload a report photo
// @Description  Stores the image under the upload directory and returns the URL to reference in a report
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo formData file true "Image file"
// @Success      201  {object}  UploadPhotoResponse
// @Failure      400  {object}  PublicErrorResponse  "Missing or non-image file"
// @Failure      500  {object}  PublicErrorResponse  "Storage failure"
// @Router       /uploads/report-photo [post]
func (c *UploadController) ReportPhoto() {
	file, err := c.Ctx.FormFile("photo")
	if err != nil {
		response.PublicError(c.Ctx, code.ErrUploadMissingFile)
		return
	}

	storageService := c.Container.GetService("storage").(services.InterfaceStorageService)

	url, err := storageService.SaveReportPhoto(file)
	if err != nil {
		if errors.Is(err, services.ErrNotImage) {
			response.PublicError(c.Ctx, code.ErrUploadNotImage)
			return
		}
		logger.Error("Failed to store uploaded photo: %v", err)
		response.PublicError(c.Ctx, code.ErrUploadFailed)
		return
	}

	c.Ctx.JSON(http.StatusCreated, UploadPhotoResponse{
		OK:  true,
		URL: url,
	})
}
