package dto

// ==================== 请求 DTO ====================

// SubscribeReq 公开订阅请求
type SubscribeReq struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateSubscriberReq 管理员启停订阅者请求
type UpdateSubscriberReq struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
