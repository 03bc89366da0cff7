package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// PopupService 营销弹窗业务
type PopupService struct {
	popupRepo   repository.PopupRepository
	productRepo repository.ProductRepository
}

// NewPopupService 创建弹窗业务
func NewPopupService(popupRepo repository.PopupRepository, productRepo repository.ProductRepository) *PopupService {
	return &PopupService{
		popupRepo:   popupRepo,
		productRepo: productRepo,
	}
}

// Create 创建弹窗
func (s *PopupService) Create(ctx context.Context, req *dto.CreatePopupReq) (*model.CampaignPopup, error) {
	popupType := model.PopupAnnouncement
	if req.Type != "" {
		if !model.ValidPopupType(req.Type) {
			return nil, ErrInvalidPopupType
		}
		popupType = model.PopupType(req.Type)
	}

	frequency := model.FrequencyAlways
	if req.Frequency != "" {
		if !model.ValidPopupFrequency(req.Frequency) {
			return nil, ErrInvalidFrequency
		}
		frequency = model.PopupFrequency(req.Frequency)
	}

	if req.ProductID != "" {
		if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
	}

	popup := &model.CampaignPopup{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		ButtonText:      req.ButtonText,
		ButtonLink:      req.ButtonLink,
		ProductID:       req.ProductID,
		Type:            popupType,
		Enabled:         req.Enabled,
		DelaySeconds:    req.DelaySeconds,
		DurationSeconds: req.DurationSeconds,
		Frequency:       frequency,
		Priority:        req.Priority,
	}
	if err := s.popupRepo.Create(ctx, popup); err != nil {
		return nil, err
	}
	return popup, nil
}

// Get 按 ID 查询弹窗
func (s *PopupService) Get(ctx context.Context, id string) (*model.CampaignPopup, error) {
	popup, err := s.popupRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return popup, err
}

// List 弹窗列表（管理端）
func (s *PopupService) List(ctx context.Context) ([]model.CampaignPopup, error) {
	return s.popupRepo.List(ctx)
}

// Update 更新弹窗（PATCH 语义）
func (s *PopupService) Update(ctx context.Context, id string, req *dto.UpdatePopupReq) (*model.CampaignPopup, error) {
	popup, err := s.popupRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !model.ValidPopupType(*req.Type) {
			return nil, ErrInvalidPopupType
		}
		popup.Type = model.PopupType(*req.Type)
	}
	if req.Frequency != nil {
		if !model.ValidPopupFrequency(*req.Frequency) {
			return nil, ErrInvalidFrequency
		}
		popup.Frequency = model.PopupFrequency(*req.Frequency)
	}
	if req.ProductID != nil {
		if *req.ProductID != "" {
			if _, err := s.productRepo.GetByID(ctx, *req.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrProductNotFound
				}
				return nil, err
			}
		}
		popup.ProductID = *req.ProductID
	}

	if req.Title != nil {
		popup.Title = *req.Title
	}
	if req.Description != nil {
		popup.Description = *req.Description
	}
	if req.ImageURL != nil {
		popup.ImageURL = *req.ImageURL
	}
	if req.ButtonText != nil {
		popup.ButtonText = *req.ButtonText
	}
	if req.ButtonLink != nil {
		popup.ButtonLink = *req.ButtonLink
	}
	if req.Enabled != nil {
		popup.Enabled = *req.Enabled
	}
	if req.DelaySeconds != nil {
		popup.DelaySeconds = *req.DelaySeconds
	}
	if req.DurationSeconds != nil {
		popup.DurationSeconds = *req.DurationSeconds
	}
	if req.Priority != nil {
		popup.Priority = *req.Priority
	}

	if err := s.popupRepo.Update(ctx, popup); err != nil {
		return nil, err
	}
	return popup, nil
}

// Delete 删除弹窗
func (s *PopupService) Delete(ctx context.Context, id string) error {
	if _, err := s.popupRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.popupRepo.Delete(ctx, id)
}

// GetActive 公开接口：当前应展示的弹窗
// 多个启用弹窗时取优先级最高者，同优先级取最新创建
func (s *PopupService) GetActive(ctx context.Context) (*model.CampaignPopup, error) {
	popup, err := s.popupRepo.GetActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return popup, err
}
