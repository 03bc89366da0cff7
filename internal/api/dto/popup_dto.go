package dto

// ==================== 请求 DTO ====================

// CreatePopupReq 创建营销弹窗请求
type CreatePopupReq struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"max=500"`
	ButtonText  string `json:"button_text" binding:"max=100"`
	ButtonLink  string `json:"button_link" binding:"max=500"`

	ProductID string `json:"product_id"`
	Type      string `json:"type"` // 为空默认 announcement

	Enabled         bool `json:"enabled"`
	DelaySeconds    int  `json:"delay_seconds" binding:"gte=0"`
	DurationSeconds int  `json:"duration_seconds" binding:"gte=0"`

	Frequency string `json:"frequency"` // 为空默认 always
	Priority  int    `json:"priority"`
}

// UpdatePopupReq 更新营销弹窗请求（PATCH 语义）
type UpdatePopupReq struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
	ButtonText  *string `json:"button_text" binding:"omitempty,max=100"`
	ButtonLink  *string `json:"button_link" binding:"omitempty,max=500"`

	ProductID *string `json:"product_id"`
	Type      *string `json:"type"`

	Enabled         *bool `json:"enabled"`
	DelaySeconds    *int  `json:"delay_seconds" binding:"omitempty,gte=0"`
	DurationSeconds *int  `json:"duration_seconds" binding:"omitempty,gte=0"`

	Frequency *string `json:"frequency"`
	Priority  *int    `json:"priority"`
}
