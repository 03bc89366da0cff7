package dto

// ==================== 请求 DTO ====================

// RotateImageReq 原地旋转请求
// 字段名与前端保持 camelCase
type RotateImageReq struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=left right"`
}

// UploadFromURLReq 远程图片导入请求
type UploadFromURLReq struct {
	URL string `json:"url" binding:"required,url"`
}

// ==================== 响应 DTO ====================

// UploadResp 上传结果
type UploadResp struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// RotateImageResp 旋转结果，URL 带缓存失效参数
type RotateImageResp struct {
	URL string `json:"url"`
}
