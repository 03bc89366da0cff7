package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// NewsletterService 订阅业务
type NewsletterService struct {
	newsletterRepo repository.NewsletterRepository
}

// NewNewsletterService 创建订阅业务
func NewNewsletterService(newsletterRepo repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{newsletterRepo: newsletterRepo}
}

// Subscribe 公开订阅，重复邮箱返回冲突错误
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.newsletterRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &model.NewsletterSubscriber{
		Email:    email,
		IsActive: true,
	}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List 全部订阅者（管理端）
func (s *NewsletterService) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.newsletterRepo.List(ctx)
}

// SetActive 启用/停用订阅者
func (s *NewsletterService) SetActive(ctx context.Context, id string, active bool) (*model.NewsletterSubscriber, error) {
	sub, err := s.newsletterRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sub.IsActive = active
	if err := s.newsletterRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete 删除订阅者
func (s *NewsletterService) Delete(ctx context.Context, id string) error {
	if _, err := s.newsletterRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.newsletterRepo.Delete(ctx, id)
}
