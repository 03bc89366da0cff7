package dto

// ==================== 请求 DTO ====================

// CreateCategoryReq 创建分类请求
type CreateCategoryReq struct {
	ID   string `json:"id" binding:"required,max=50"` // 管理员指定的 slug
	Name string `json:"name" binding:"required,max=100"`
	Icon string `json:"icon" binding:"max=50"`
}

// UpdateCategoryReq 更新分类请求（PATCH 语义，零值字段不更新）
type UpdateCategoryReq struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Icon *string `json:"icon" binding:"omitempty,max=50"`
}
