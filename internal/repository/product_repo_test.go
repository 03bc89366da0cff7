package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"ershou_market_v1/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestProductRepoListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "furniture", "家具")
	seedCategory(t, db, "books", "图书")

	seedProduct(t, db, &model.Product{Title: "沙发", Slug: "sha-fa", CategoryID: "furniture", Featured: true, IsActive: true})
	seedProduct(t, db, &model.Product{Title: "台灯", Slug: "tai-deng", CategoryID: "furniture", IsActive: true})
	seedProduct(t, db, &model.Product{Title: "旧书", Slug: "jiu-shu", CategoryID: "books", IsActive: false})

	// 公开列表只包含在售商品
	products, err := repo.List(ctx, ProductFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("在售商品期望 2 个，实际 %d", len(products))
	}

	// 管理列表包含下架商品
	products, _ = repo.List(ctx, ProductFilter{})
	if len(products) != 3 {
		t.Errorf("全部商品期望 3 个，实际 %d", len(products))
	}

	// 分类过滤
	products, _ = repo.List(ctx, ProductFilter{CategoryID: "books"})
	if len(products) != 1 || products[0].Slug != "jiu-shu" {
		t.Errorf("分类过滤结果不符: %+v", products)
	}

	// 精选过滤
	products, _ = repo.List(ctx, ProductFilter{Featured: boolPtr(true), ActiveOnly: true})
	if len(products) != 1 || products[0].Slug != "sha-fa" {
		t.Errorf("精选过滤结果不符: %+v", products)
	}
	products, _ = repo.List(ctx, ProductFilter{Featured: boolPtr(false), ActiveOnly: true})
	if len(products) != 1 || products[0].Slug != "tai-deng" {
		t.Errorf("非精选过滤结果不符: %+v", products)
	}
}

func TestProductRepoSlugExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "furniture", "家具")
	p := seedProduct(t, db, &model.Product{Title: "沙发", Slug: "sha-fa", CategoryID: "furniture", IsActive: true})

	exists, err := repo.SlugExists(ctx, "sha-fa", "")
	if err != nil {
		t.Fatalf("查重失败: %v", err)
	}
	if !exists {
		t.Error("已存在的 slug 应返回 true")
	}

	// 更新时排除自身
	exists, _ = repo.SlugExists(ctx, "sha-fa", p.ID)
	if exists {
		t.Error("排除自身后应返回 false")
	}

	exists, _ = repo.SlugExists(ctx, "bu-cun-zai", "")
	if exists {
		t.Error("不存在的 slug 应返回 false")
	}
}

func TestProductRepoListCreatedSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "furniture", "家具")
	old := seedProduct(t, db, &model.Product{Title: "旧货", Slug: "jiu-huo", CategoryID: "furniture", IsActive: true})
	seedProduct(t, db, &model.Product{Title: "新货", Slug: "xin-huo", CategoryID: "furniture", IsActive: true})
	seedProduct(t, db, &model.Product{Title: "下架新货", Slug: "xia-jia", CategoryID: "furniture", IsActive: false})

	// 把旧货的创建时间拨回三天
	threeDaysAgo := time.Now().Add(-72 * time.Hour)
	db.Model(&model.Product{}).Where("id = ?", old.ID).Update("created_at", threeDaysAgo)

	products, err := repo.ListCreatedSince(ctx, time.Now().Add(-48*time.Hour))
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("期望 1 个新品，实际 %d", len(products))
	}
	if products[0].Slug != "xin-huo" {
		t.Errorf("期望 xin-huo，实际 %s", products[0].Slug)
	}
}

func TestProductRepoDeleteCascadesOffers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "furniture", "家具")
	p := seedProduct(t, db, &model.Product{Title: "沙发", Slug: "sha-fa", CategoryID: "furniture", IsActive: true})

	offer := &model.Offer{ProductID: p.ID, CustomerName: "买家", Email: "buyer@example.com", Amount: "100", Status: model.OfferPending}
	if err := db.Create(offer).Error; err != nil {
		t.Fatalf("写入报价失败: %v", err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("商品应已删除，实际错误: %v", err)
	}
	var count int64
	db.Model(&model.Offer{}).Where("product_id = ?", p.ID).Count(&count)
	if count != 0 {
		t.Errorf("报价应随商品删除，剩余 %d 条", count)
	}
}
