package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ershou_market_v1/internal/service"
	"ershou_market_v1/pkg/logger"
)

// ==================== 响应辅助 ====================

// ok 成功响应统一包装
func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

// badRequest 参数错误
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": msg})
}

// fail 按业务错误映射状态码
// 参数/冲突 -> 400，未找到 -> 404，其余记日志后返回通用 500
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": err.Error()})
	case errors.Is(err, service.ErrCategoryExists),
		errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrInvalidCondition),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidPopupType),
		errors.Is(err, service.ErrInvalidFrequency),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrInvalidImagePath):
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
	default:
		logger.L().Error("请求处理失败",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "服务器内部错误"})
	}
}
