package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pawsconnect-http-service/internal/infrastructure/config"
)

// InterfaceCaptchaService 定义人机验证服务接口
type InterfaceCaptchaService interface {
	Verify(token, remoteIP string) (bool, error)
}

// CaptchaService 调用验证服务校验前端提交的人机验证令牌
// 未配置验证地址时只做非空校验，便于本地开发
type CaptchaService struct {
	Config *config.Config
	client *http.Client
}

// captchaVerifyResponse represents the response from the captcha verify API
type captchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// NewCaptchaService 创建一个新的人机验证服务
func NewCaptchaService(cfg *config.Config) InterfaceCaptchaService {
	return &CaptchaService{
		Config: cfg,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify 校验令牌，返回验证是否通过
func (s *CaptchaService) Verify(token, remoteIP string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, nil
	}

	// 未配置验证服务时接受非空令牌
	if s.Config.CaptchaVerifyURL == "" || s.Config.CaptchaSecret == "" {
		return true, nil
	}

	form := url.Values{}
	form.Set("secret", s.Config.CaptchaSecret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := s.client.PostForm(s.Config.CaptchaVerifyURL, form)
	if err != nil {
		return false, fmt.Errorf("error calling captcha verify API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha verify API returned status code %d", resp.StatusCode)
	}

	var apiResp captchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return false, fmt.Errorf("error decoding captcha verify response: %w", err)
	}

	return apiResp.Success, nil
}
