package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// OfferService 报价业务
type OfferService struct {
	offerRepo   repository.OfferRepository
	productRepo repository.ProductRepository
}

// NewOfferService 创建报价业务
func NewOfferService(offerRepo repository.OfferRepository, productRepo repository.ProductRepository) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		productRepo: productRepo,
	}
}

// Create 买家提交报价，商品必须存在
func (s *OfferService) Create(ctx context.Context, req *dto.CreateOfferReq) (*model.Offer, error) {
	if _, err := s.productRepo.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	offer := &model.Offer{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Amount:       req.Amount,
		Message:      req.Message,
		Status:       model.OfferPending,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Get 按 ID 查询报价
func (s *OfferService) Get(ctx context.Context, id string) (*model.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return offer, err
}

// List 报价列表，productID 可选
func (s *OfferService) List(ctx context.Context, productID string) ([]model.Offer, error) {
	return s.offerRepo.List(ctx, productID)
}

// UpdateStatus 管理员变更报价状态
// pending -> accepted|rejected；终态之间允许改判，但不允许回退为 pending
func (s *OfferService) UpdateStatus(ctx context.Context, id string, status string) (*model.Offer, error) {
	if !model.ValidOfferStatus(status) {
		return nil, ErrInvalidStatus
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	next := model.OfferStatus(status)
	if offer.Status != model.OfferPending && next == model.OfferPending {
		return nil, ErrInvalidTransition
	}

	if err := s.offerRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	offer.Status = next
	return offer, nil
}

// Delete 删除报价
func (s *OfferService) Delete(ctx context.Context, id string) error {
	if _, err := s.offerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.offerRepo.Delete(ctx, id)
}
