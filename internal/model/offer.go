package model

// ==================== 报价状态 ====================

// OfferStatus 买家报价状态
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// ValidOfferStatus 校验状态取值
func ValidOfferStatus(s string) bool {
	switch OfferStatus(s) {
	case OfferPending, OfferAccepted, OfferRejected:
		return true
	}
	return false
}

// ==================== 报价模型 ====================

// Offer 买家报价（对某件商品的出价，非成交订单）
// 状态机：pending -> accepted | rejected，终态后不可回退
type Offer struct {
	BaseModel
	ProductID string   `gorm:"size:36;index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Email        string `gorm:"size:255" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`

	// 出价为自由文本（如 "1200" 或 "1200 含运费"）
	Amount  string `gorm:"size:100;not null" json:"amount"`
	Message string `gorm:"type:text" json:"message"`

	Status OfferStatus `gorm:"size:20;default:pending;index" json:"status"`
}

func (Offer) TableName() string { return "offers" }
