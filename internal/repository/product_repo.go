package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	// Delete 删除商品并级联删除其全部报价
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)

	// SlugExists slug 查重，excludeID 用于更新时排除自身
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)

	// ListCreatedSince 查询某时间点之后上架的在售商品（邮件任务用）
	ListCreatedSince(ctx context.Context, since time.Time) ([]model.Product, error)
}

// ==================== 过滤条件 ====================

// ProductFilter 商品列表过滤条件
type ProductFilter struct {
	CategoryID string
	Featured   *bool
	ActiveOnly bool // 公开接口 true，管理接口 false
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	// 外键级联在 sqlite 测试环境不可靠，显式在事务里删报价
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Offer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{}).Preload("Category")

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var products []model.Product
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepo) ListCreatedSince(ctx context.Context, since time.Time) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND is_active = ?", since, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}
