package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// CategoryService 分类业务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类业务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create 创建分类，图标键在写入时归一化
func (s *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryReq) (*model.Category, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.ID); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{
		ID:   req.ID,
		Name: req.Name,
		Icon: model.ResolveIcon(req.Icon),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get 按 ID 查询分类
func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return category, err
}

// List 分类列表
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryReq) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = model.ResolveIcon(*req.Icon)
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类
// 仍被商品引用时拒绝删除，避免悬空的分类引用
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(ctx, id)
}
