package repository

import (
	"context"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
)

// ==================== 接口定义 ====================

// NewsletterRepository 订阅者仓储接口
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.NewsletterSubscriber) error
	GetByID(ctx context.Context, id string) (*model.NewsletterSubscriber, error)
	GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	List(ctx context.Context) ([]model.NewsletterSubscriber, error)
	ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error)
	Update(ctx context.Context, sub *model.NewsletterSubscriber) error
	Delete(ctx context.Context, id string) error
}

// ==================== 仓储实现 ====================

type newsletterRepo struct {
	db *gorm.DB
}

// NewNewsletterRepository 创建订阅者仓储
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepo{db: db}
}

func (r *newsletterRepo) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *newsletterRepo) GetByID(ctx context.Context, id string) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepo) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	var sub model.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepo) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	var subs []model.NewsletterSubscriber
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *newsletterRepo) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	var subs []model.NewsletterSubscriber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *newsletterRepo) Update(ctx context.Context, sub *model.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *newsletterRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.NewsletterSubscriber{}, "id = ?", id).Error
}
