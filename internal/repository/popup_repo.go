package repository

import (
	"context"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
)

// ==================== 接口定义 ====================

// PopupRepository 营销弹窗仓储接口
type PopupRepository interface {
	Create(ctx context.Context, popup *model.CampaignPopup) error
	GetByID(ctx context.Context, id string) (*model.CampaignPopup, error)
	List(ctx context.Context) ([]model.CampaignPopup, error)
	Update(ctx context.Context, popup *model.CampaignPopup) error
	Delete(ctx context.Context, id string) error

	// GetActive 取当前应展示的弹窗：启用中优先级最高者，同优先级取最新
	GetActive(ctx context.Context) (*model.CampaignPopup, error)
}

// ==================== 仓储实现 ====================

type popupRepo struct {
	db *gorm.DB
}

// NewPopupRepository 创建弹窗仓储
func NewPopupRepository(db *gorm.DB) PopupRepository {
	return &popupRepo{db: db}
}

func (r *popupRepo) Create(ctx context.Context, popup *model.CampaignPopup) error {
	return r.db.WithContext(ctx).Create(popup).Error
}

func (r *popupRepo) GetByID(ctx context.Context, id string) (*model.CampaignPopup, error) {
	var popup model.CampaignPopup
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&popup, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *popupRepo) List(ctx context.Context) ([]model.CampaignPopup, error) {
	var popups []model.CampaignPopup
	err := r.db.WithContext(ctx).
		Order("priority DESC, created_at DESC").
		Find(&popups).Error
	return popups, err
}

func (r *popupRepo) Update(ctx context.Context, popup *model.CampaignPopup) error {
	return r.db.WithContext(ctx).Save(popup).Error
}

func (r *popupRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.CampaignPopup{}, "id = ?", id).Error
}

func (r *popupRepo) GetActive(ctx context.Context) (*model.CampaignPopup, error) {
	var popup model.CampaignPopup
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("enabled = ?", true).
		Order("priority DESC, created_at DESC").
		First(&popup).Error
	if err != nil {
		return nil, err
	}
	return &popup, nil
}
