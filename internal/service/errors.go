package service

import "errors"

// ==================== 业务错误定义 ====================

// 控制器按 errors.Is 映射为 HTTP 状态码：
// 参数/冲突类 -> 400，未找到类 -> 404，其余 -> 500
var (
	ErrNotFound          = errors.New("记录不存在")
	ErrCategoryExists    = errors.New("分类 ID 已存在")
	ErrCategoryInUse     = errors.New("分类下仍有商品，禁止删除")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrProductNotFound   = errors.New("商品不存在")
	ErrInvalidCondition  = errors.New("无效的商品成色")
	ErrInvalidDiscount   = errors.New("折扣价必须低于原价")
	ErrInvalidStatus     = errors.New("无效的报价状态")
	ErrInvalidTransition = errors.New("终态报价不能回退为 pending")
	ErrDuplicateEmail    = errors.New("该邮箱已订阅")
	ErrInvalidPopupType  = errors.New("无效的弹窗类型")
	ErrInvalidFrequency  = errors.New("无效的展示频率")

	ErrFileTooLarge      = errors.New("文件超过大小限制")
	ErrUnsupportedFormat = errors.New("不支持的图片格式")
	ErrInvalidImagePath  = errors.New("非法的图片路径")
	ErrImageNotFound     = errors.New("图片不存在")
)
