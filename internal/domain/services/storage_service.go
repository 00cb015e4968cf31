package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pawsconnect-http-service/internal/infrastructure/config"
)

// InterfaceStorageService 定义上传文件存储服务接口
type InterfaceStorageService interface {
	SaveReportPhoto(file *multipart.FileHeader) (string, error)
}

// ErrNotImage 上传的文件不是图片
var ErrNotImage = errors.New("uploaded file is not an image")

// StorageService 将上传的报告图片保存到本地目录并返回可访问的URL
type StorageService struct {
	Config *config.Config
}

// NewStorageService 创建一个新的存储服务
func NewStorageService(cfg *config.Config) InterfaceStorageService {
	return &StorageService{
		Config: cfg,
	}
}

// SaveReportPhoto 保存报告图片，文件名使用随机键避免冲突和路径注入
func (s *StorageService) SaveReportPhoto(file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || len(ext) > 8 {
		ext = ".jpg"
	}
	name := fmt.Sprintf("report_%s%s", uuid.NewString(), ext)
	dst := filepath.Join(s.Config.UploadDir, name)

	if err := copyUploadedFile(file, dst); err != nil {
		return "", err
	}

	return s.Config.UploadBaseURL + "/" + name, nil
}

func copyUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
