package dto

// ==================== 请求 DTO ====================

// CreateProductReq 创建商品请求
type CreateProductReq struct {
	Title      string `json:"title" binding:"required,max=255"`
	CategoryID string `json:"category_id" binding:"required"`
	Condition  string `json:"condition"` // 为空默认 new

	Image  string   `json:"image"`
	Images []string `json:"images"`

	// 价格字符串，空串表示"面议"
	Price         string `json:"price" binding:"max=50"`
	DiscountPrice string `json:"discount_price" binding:"max=50"`

	Featured bool  `json:"featured"`
	IsNew    bool  `json:"is_new"`
	IsActive *bool `json:"is_active"` // 缺省为上架

	Description   string   `json:"description"`
	Dimensions    string   `json:"dimensions" binding:"max=100"`
	Weight        string   `json:"weight" binding:"max=100"`
	IncludedItems []string `json:"included_items"`
}

// UpdateProductReq 更新商品请求（PATCH 语义）
type UpdateProductReq struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	CategoryID *string `json:"category_id"`
	Condition  *string `json:"condition"`

	Image  *string   `json:"image"`
	Images *[]string `json:"images"`

	Price         *string `json:"price" binding:"omitempty,max=50"`
	DiscountPrice *string `json:"discount_price" binding:"omitempty,max=50"`

	Featured *bool `json:"featured"`
	IsNew    *bool `json:"is_new"`
	IsActive *bool `json:"is_active"`

	Description   *string   `json:"description"`
	Dimensions    *string   `json:"dimensions" binding:"omitempty,max=100"`
	Weight        *string   `json:"weight" binding:"omitempty,max=100"`
	IncludedItems *[]string `json:"included_items"`
}
