package model

// ==================== 弹窗枚举 ====================

// PopupType 弹窗类型
type PopupType string

const (
	PopupAnnouncement PopupType = "announcement"
	PopupProductPromo PopupType = "product_promo"
	PopupNewsletter   PopupType = "newsletter"
	PopupCustomLink   PopupType = "custom_link"
)

// ValidPopupType 校验弹窗类型
func ValidPopupType(t string) bool {
	switch PopupType(t) {
	case PopupAnnouncement, PopupProductPromo, PopupNewsletter, PopupCustomLink:
		return true
	}
	return false
}

// PopupFrequency 展示频率
// 已读状态只存在浏览器端（session/local storage），服务端不记录
type PopupFrequency string

const (
	FrequencyAlways      PopupFrequency = "always"
	FrequencyOncePerSess PopupFrequency = "once_per_session"
	FrequencyOncePerDay  PopupFrequency = "once_per_day"
)

// ValidPopupFrequency 校验展示频率
func ValidPopupFrequency(f string) bool {
	switch PopupFrequency(f) {
	case FrequencyAlways, FrequencyOncePerSess, FrequencyOncePerDay:
		return true
	}
	return false
}

// ==================== 弹窗模型 ====================

// CampaignPopup 营销弹窗
type CampaignPopup struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
	ButtonText  string `gorm:"size:100" json:"button_text"`
	ButtonLink  string `gorm:"size:500" json:"button_link"`

	ProductID string   `gorm:"size:36;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Type    PopupType `gorm:"size:30;default:announcement" json:"type"`
	Enabled bool      `gorm:"default:false;index" json:"enabled"`

	DelaySeconds    int `gorm:"default:0" json:"delay_seconds"`
	DurationSeconds int `gorm:"default:0" json:"duration_seconds"` // 0 表示不自动关闭

	Frequency PopupFrequency `gorm:"size:30;default:always" json:"frequency"`
	Priority  int            `gorm:"default:0;index" json:"priority"` // 数值越大越优先
}

func (CampaignPopup) TableName() string { return "campaign_popups" }
