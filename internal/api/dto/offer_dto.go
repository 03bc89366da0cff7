package dto

// ==================== 请求 DTO ====================

// CreateOfferReq 买家提交报价请求
type CreateOfferReq struct {
	ProductID    string `json:"product_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=50"`
	Amount       string `json:"amount" binding:"required,max=100"`
	Message      string `json:"message"`
}

// UpdateOfferStatusReq 管理员变更报价状态请求
type UpdateOfferStatusReq struct {
	Status string `json:"status" binding:"required"`
}
