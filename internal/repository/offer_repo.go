package repository

import (
	"context"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
)

// ==================== 接口定义 ====================

// OfferRepository 报价仓储接口
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	GetByID(ctx context.Context, id string) (*model.Offer, error)
	List(ctx context.Context, productID string) ([]model.Offer, error)
	UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error
	Delete(ctx context.Context, id string) error
}

// ==================== 仓储实现 ====================

type offerRepo struct {
	db *gorm.DB
}

// NewOfferRepository 创建报价仓储
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepo) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&offer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// List 查询报价，productID 为空时返回全部
func (r *offerRepo) List(ctx context.Context, productID string) ([]model.Offer, error) {
	query := r.db.WithContext(ctx).Preload("Product")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var offers []model.Offer
	err := query.Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *offerRepo) UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *offerRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Offer{}, "id = ?", id).Error
}
