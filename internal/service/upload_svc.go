package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/pkg/utils"
)

// ==================== 常量 ====================

const (
	// MaxUploadSize 服务端硬上限（前端限 10MB，这里放宽到 20MB 兜底）
	MaxUploadSize = 20 << 20

	// 转换后图片的边界框，小图不放大
	maxImageBound = 1920

	// 统一转成 JPEG 的质量
	jpegQuality = 82
)

// ==================== 服务定义 ====================

// UploadService 图片上传与处理管线
// 上传 -> 类型校验 -> EXIF 转正 -> 缩放 -> 统一转 JPEG -> 删除原图
// 转换失败时保留原图降级返回，不让上传整体失败
type UploadService struct {
	uploadDir  string // 绝对路径
	publicPath string // 对外路径前缀，如 /uploads
	client     *resty.Client
	log        *zap.Logger
}

// NewUploadService 创建上传服务，uploadDir 不存在时自动创建
func NewUploadService(uploadDir, publicPath string, logger *zap.Logger) (*UploadService, error) {
	abs, err := filepath.Abs(uploadDir)
	if err != nil {
		return nil, fmt.Errorf("解析上传目录失败: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	client := resty.New().
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", "ershou-market/1.0")

	return &UploadService{
		uploadDir:  abs,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		client:     client,
		log:        logger,
	}, nil
}

// UploadDir 上传目录绝对路径（路由静态挂载用）
func (s *UploadService) UploadDir() string { return s.uploadDir }

// ==================== 上传 ====================

// SaveUpload 保存单个上传文件并走转换管线
func (s *UploadService) SaveUpload(ctx context.Context, fh *multipart.FileHeader) (*dto.UploadResp, error) {
	if fh.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	// MIME 或扩展名任一命中即放行
	if !utils.AllowedImage(fh.Header.Get("Content-Type"), fh.Filename) {
		return nil, ErrUnsupportedFormat
	}

	name := utils.UniqueImageName(fh.Filename)
	dst := filepath.Join(s.uploadDir, name)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("写入文件失败: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return nil, fmt.Errorf("写入文件失败: %w", err)
	}
	out.Close()

	final := s.convert(dst)
	return &dto.UploadResp{
		URL:      s.publicPath + "/" + final,
		Filename: final,
	}, nil
}

// SaveFromURL 下载远程图片并走同一条转换管线
func (s *UploadService) SaveFromURL(ctx context.Context, rawURL string) (*dto.UploadResp, error) {
	// 扩展名从 URL 的 path 部分取，避免把查询串带进文件名
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("解析图片地址失败: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("下载图片失败: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("下载图片失败: HTTP %d", resp.StatusCode())
	}

	data := resp.Body()
	if int64(len(data)) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	if !utils.AllowedImage(resp.Header().Get("Content-Type"), parsed.Path) {
		return nil, ErrUnsupportedFormat
	}

	name := utils.UniqueImageName(parsed.Path)
	dst := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, fmt.Errorf("写入文件失败: %w", err)
	}

	final := s.convert(dst)
	return &dto.UploadResp{
		URL:      s.publicPath + "/" + final,
		Filename: final,
	}, nil
}

// convert 转换管线：EXIF 转正 -> 限制在边界框内 -> 转 JPEG -> 删原图
// 任一步失败则保留原图并返回原文件名（降级，不报错）
func (s *UploadService) convert(path string) string {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		s.log.Warn("图片解码失败，保留原图",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return filepath.Base(path)
	}

	// Fit 只缩不放，小图原样保留
	img = imaging.Fit(img, maxImageBound, maxImageBound, imaging.Lanczos)

	jpgPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"

	// 原图本身是 .jpg 时 jpgPath == path，必须先写临时文件再替换，
	// 编码中途失败不能把原图截坏
	tmp := jpgPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		s.log.Warn("图片转码失败，保留原图",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return filepath.Base(path)
	}
	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		f.Close()
		os.Remove(tmp)
		s.log.Warn("图片转码失败，保留原图",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return filepath.Base(path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		s.log.Warn("图片转码失败，保留原图",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return filepath.Base(path)
	}
	if err := os.Rename(tmp, jpgPath); err != nil {
		os.Remove(tmp)
		s.log.Warn("图片转码失败，保留原图",
			zap.String("file", filepath.Base(path)), zap.Error(err))
		return filepath.Base(path)
	}

	if jpgPath != path {
		os.Remove(path)
	}
	return filepath.Base(jpgPath)
}

// ==================== 原地旋转 ====================

// Rotate 将已上传图片原地旋转 90 度
// direction: left 逆时针 / right 顺时针
// 返回带缓存失效参数的新 URL
func (s *UploadService) Rotate(imageURL, direction string) (string, error) {
	name, err := s.resolveName(imageURL)
	if err != nil {
		return "", err
	}

	abs := filepath.Join(s.uploadDir, name)
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", ErrImageNotFound
		}
		return "", err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("读取图片失败: %w", err)
	}

	// 按原始字节解码，不做 EXIF 转正，保证多次旋转是纯粹的 90 度叠加
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("解码图片失败: %w", err)
	}

	var rotated = img
	if direction == "left" {
		rotated = imaging.Rotate90(img)
	} else {
		rotated = imaging.Rotate270(img)
	}

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		format = imaging.JPEG
	}

	// 先写临时文件再原子替换，编码失败时原图不受影响
	tmp := abs + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}
	if err := imaging.Encode(f, rotated, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("编码图片失败: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := os.Rename(tmp, abs); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("替换图片失败: %w", err)
	}

	// 纳秒级时间戳，保证连续两次旋转的缓存参数必然不同
	return fmt.Sprintf("%s/%s?v=%d", s.publicPath, name, time.Now().UnixNano()), nil
}

// resolveName 从公开 URL 解析出上传目录内的文件名
// 所有校验在任何文件系统访问之前完成
func (s *UploadService) resolveName(imageURL string) (string, error) {
	if !strings.HasPrefix(imageURL, s.publicPath+"/") {
		return "", ErrInvalidImagePath
	}
	if strings.Contains(imageURL, "..") {
		return "", ErrInvalidImagePath
	}

	name := strings.TrimPrefix(imageURL, s.publicPath+"/")
	if idx := strings.Index(name, "?"); idx != -1 {
		name = name[:idx]
	}
	// 上传目录是平铺的，不允许子路径
	if name == "" || filepath.Base(name) != name {
		return "", ErrInvalidImagePath
	}

	// 解析后的绝对路径必须仍落在上传目录内
	abs, err := filepath.Abs(filepath.Join(s.uploadDir, name))
	if err != nil || !strings.HasPrefix(abs, s.uploadDir+string(os.PathSeparator)) {
		return "", ErrInvalidImagePath
	}
	return name, nil
}
