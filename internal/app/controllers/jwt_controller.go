package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pawsconnect-http-service/internal/app/middleware"
	"pawsconnect-http-service/internal/domain/services"
	"pawsconnect-http-service/internal/domain/services/container"
	"pawsconnect-http-service/internal/error/code"
	"pawsconnect-http-service/internal/error/response"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
	VerifyEmail()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rescue@example.org"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// VerifyEmailRequest 表示邮箱验证请求
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required" example:"7e9d7c2a-1f34-4b0e-9a3c-2d1f0a8b6c5e"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"101002"`
	Message string      `json:"message" example:"Incorrect email or password."`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "verifyEmail":
			controller.VerifyEmail()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Validates email and password, returns a JWT with the account role claim
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=services.LoginResult}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Email and password are required.", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrLoginFailed) {
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, result)
}

// VerifyEmail 确认邮箱验证令牌
// @Summary      Verify email address
// @Description  Confirms the verification token issued at signup and marks the account verified
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body VerifyEmailRequest true "Verification token"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse  "Invalid token"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /auth/verify-email [post]
func (c *JWTController) VerifyEmail() {
	var req VerifyEmailRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Verification token is required.", nil)
		return
	}

	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	if err := userService.VerifyEmail(userID, req.Token); err != nil {
		switch {
		case errors.Is(err, services.ErrVerificationTokenMismatch):
			response.Fail(c.Ctx, code.ErrVerificationTokenInvalid, nil)
		case errors.Is(err, services.ErrUserNotFound):
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"email_verified": true})
}
