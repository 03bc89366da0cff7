package model

import "time"

// Category 商品分类
// ID 由管理员指定（slug 形式），作为主键直接引用
type Category struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Icon      string    `gorm:"size:50" json:"icon"` // 图标键，见 iconKeys
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

// DefaultIcon 未知图标键的兜底值
const DefaultIcon = "package"

// iconKeys 静态图标表（替代前端的动态图标解析）
var iconKeys = map[string]bool{
	"package":  true,
	"sofa":     true,
	"armchair": true,
	"lamp":     true,
	"bed":      true,
	"table":    true,
	"shirt":    true,
	"book":     true,
	"bike":     true,
	"tv":       true,
	"laptop":   true,
	"camera":   true,
	"baby":     true,
	"gem":      true,
}

// ResolveIcon 归一化图标键，未收录的键返回默认图标
// 在数据写入时解析，而不是每次渲染时解析
func ResolveIcon(key string) string {
	if iconKeys[key] {
		return key
	}
	return DefaultIcon
}
