package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/service"
)

// UploadController 图片上传接口
type UploadController struct {
	uploadService *service.UploadService
}

// NewUploadController 创建上传控制器
func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload 单文件上传
// 多图上传由前端逐张调用本接口
// @Summary 上传商品图片
// @Tags Upload
// @Accept multipart/form-data
// @Param file formData file true "图片文件"
// @Success 200 {object} dto.UploadResp
// @Router /api/upload [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "缺少上传文件")
		return
	}

	result, err := ctrl.uploadService.SaveUpload(c.Request.Context(), fh)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, result)
}

// UploadFromURL 远程图片导入
// @Summary 从 URL 导入图片
// @Tags Upload
// @Param body body dto.UploadFromURLReq true "图片地址"
// @Router /api/upload/from-url [post]
func (ctrl *UploadController) UploadFromURL(c *gin.Context) {
	var req dto.UploadFromURLReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := ctrl.uploadService.SaveFromURL(c.Request.Context(), req.URL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, result)
}

// RotateImage 原地旋转已上传图片
// @Summary 旋转图片 90 度
// @Tags Upload
// @Param body body dto.RotateImageReq true "图片 URL 与方向"
// @Success 200 {object} dto.RotateImageResp
// @Router /api/rotate-image [post]
func (ctrl *UploadController) RotateImage(c *gin.Context) {
	var req dto.RotateImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	url, err := ctrl.uploadService.Rotate(req.ImageURL, req.Direction)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.RotateImageResp{URL: url})
}
