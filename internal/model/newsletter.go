package model

// NewsletterSubscriber 邮件订阅者
type NewsletterSubscriber struct {
	BaseModel
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive bool   `gorm:"default:true;index" json:"is_active"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscribers" }
