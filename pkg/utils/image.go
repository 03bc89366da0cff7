package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ==================== 图片类型白名单 ====================

// 常见位图格式，MIME 与扩展名二者任一命中即放行
// 手机相机上传时 MIME 经常不可靠（尤其 heic），所以刻意宽松
var allowedMIME = map[string]bool{
	"image/jpeg":  true,
	"image/pjpeg": true,
	"image/png":   true,
	"image/gif":   true,
	"image/webp":  true,
	"image/bmp":   true,
	"image/tiff":  true,
	"image/heic":  true,
	"image/heif":  true,
}

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".heic": true,
	".heif": true,
}

// AllowedImage 判断上传文件是否在白名单内
// contentType 为客户端上报的 MIME，filename 为原始文件名
func AllowedImage(contentType, filename string) bool {
	mime := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(mime, ";"); idx != -1 {
		mime = strings.TrimSpace(mime[:idx])
	}
	if allowedMIME[mime] {
		return true
	}
	return allowedExt[strings.ToLower(filepath.Ext(filename))]
}

// ==================== 文件名生成 ====================

// UniqueImageName 生成防碰撞的服务端文件名
// 只保留原文件名的扩展名，不泄露用户的原始文件名
func UniqueImageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}

	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(buf), ext)
}
