package model

// ==================== 成色枚举 ====================

// ProductCondition 商品成色
type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsedLikeNew ProductCondition = "used_like_new"
	ConditionUsedGood    ProductCondition = "used_good"
	ConditionUsedFair    ProductCondition = "used_fair"
)

// NormalizeCondition 归一化成色值
// 旧版数据只有 new/used 两档，used 统一落到 used_good
func NormalizeCondition(c string) (ProductCondition, bool) {
	switch ProductCondition(c) {
	case ConditionNew, ConditionUsedLikeNew, ConditionUsedGood, ConditionUsedFair:
		return ProductCondition(c), true
	}
	if c == "used" {
		return ConditionUsedGood, true
	}
	return "", false
}

// ==================== 商品模型 ====================

// Product 商品
type Product struct {
	BaseModel
	Title      string    `gorm:"size:255;not null" json:"title"`
	Slug       string    `gorm:"size:255;uniqueIndex" json:"slug"` // 由标题生成，冲突时加数字后缀
	CategoryID string    `gorm:"size:50;index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Condition ProductCondition `gorm:"size:20;default:new" json:"condition"`

	// 首图与图片列表，约定 images[0] == image
	Image  string   `gorm:"size:500" json:"image"`
	Images []string `gorm:"serializer:json" json:"images"`

	// 价格为字符串，空串表示"面议"
	Price         string `gorm:"size:50" json:"price"`
	DiscountPrice string `gorm:"size:50" json:"discount_price"` // 必须小于 Price

	Featured bool `gorm:"default:false;index" json:"featured"`
	IsNew    bool `gorm:"default:false" json:"is_new"`
	IsActive bool `gorm:"default:true;index" json:"is_active"` // 软下架标记

	Description   string   `gorm:"type:text" json:"description"` // 富文本 HTML
	Dimensions    string   `gorm:"size:100" json:"dimensions"`
	Weight        string   `gorm:"size:100" json:"weight"`
	IncludedItems []string `gorm:"serializer:json" json:"included_items"`

	Offers []Offer `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }
