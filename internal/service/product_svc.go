package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// ProductService 商品业务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品业务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ==================== 查询 ====================

// List 商品列表
func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// GetByIDOrSlug 按 ID 或 slug 查询
// UUID 格式按 ID 查，否则按 slug 查
func (s *ProductService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Product, error) {
	var (
		product *model.Product
		err     error
	)
	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		product, err = s.productRepo.GetByID(ctx, idOrSlug)
	} else {
		product, err = s.productRepo.GetBySlug(ctx, idOrSlug)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// ==================== 写入 ====================

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductReq) (*model.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	condition := model.ConditionNew
	if req.Condition != "" {
		c, ok := model.NormalizeCondition(req.Condition)
		if !ok {
			return nil, ErrInvalidCondition
		}
		condition = c
	}

	if err := checkDiscount(req.Price, req.DiscountPrice); err != nil {
		return nil, err
	}

	image, images := normalizeImages(req.Image, req.Images)

	productSlug, err := s.uniqueSlug(ctx, req.Title, "")
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &model.Product{
		Title:         req.Title,
		Slug:          productSlug,
		CategoryID:    req.CategoryID,
		Condition:     condition,
		Image:         image,
		Images:        images,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Featured:      req.Featured,
		IsNew:         req.IsNew,
		IsActive:      isActive,
		Description:   req.Description,
		Dimensions:    req.Dimensions,
		Weight:        req.Weight,
		IncludedItems: req.IncludedItems,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品（PATCH 语义，只改传入的字段）
func (s *ProductService) Update(ctx context.Context, id string, req *dto.UpdateProductReq) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}

	if req.Title != nil && *req.Title != product.Title {
		product.Title = *req.Title
		// 标题变更时重新派生 slug
		newSlug, err := s.uniqueSlug(ctx, *req.Title, product.ID)
		if err != nil {
			return nil, err
		}
		product.Slug = newSlug
	}

	if req.Condition != nil {
		c, ok := model.NormalizeCondition(*req.Condition)
		if !ok {
			return nil, ErrInvalidCondition
		}
		product.Condition = c
	}

	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.DiscountPrice != nil {
		product.DiscountPrice = *req.DiscountPrice
	}
	if err := checkDiscount(product.Price, product.DiscountPrice); err != nil {
		return nil, err
	}

	if req.Image != nil || req.Images != nil {
		image := product.Image
		images := product.Images
		if req.Image != nil {
			image = *req.Image
		}
		if req.Images != nil {
			images = *req.Images
		}
		product.Image, product.Images = normalizeImages(image, images)
	}

	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.IncludedItems != nil {
		product.IncludedItems = *req.IncludedItems
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品，报价随之级联删除
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ==================== 内部辅助 ====================

// uniqueSlug 由标题派生 slug，冲突时追加数字后缀
func (s *ProductService) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "product"
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.productRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// normalizeImages 保证 images[0] == image
// 图片列表非空时以列表首图为准，列表为空时由首图补全列表
func normalizeImages(image string, images []string) (string, []string) {
	if len(images) > 0 {
		return images[0], images
	}
	if image != "" {
		return image, []string{image}
	}
	return "", nil
}

// checkDiscount 折扣价必须为数字且低于原价
func checkDiscount(price, discount string) error {
	if discount == "" {
		return nil
	}
	p, err := strconv.ParseFloat(price, 64)
	if err != nil {
		// 原价为空或非数字时不允许设置折扣价
		return ErrInvalidDiscount
	}
	d, err := strconv.ParseFloat(discount, 64)
	if err != nil {
		return ErrInvalidDiscount
	}
	if d >= p {
		return ErrInvalidDiscount
	}
	return nil
}
