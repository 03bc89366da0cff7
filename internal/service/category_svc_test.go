package service

import (
	"context"
	"errors"
	"testing"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
)

func TestCategoryCreate(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCategoryService(repos.category)
	ctx := context.Background()

	cat, err := svc.Create(ctx, &dto.CreateCategoryReq{ID: "furniture", Name: "家具", Icon: "sofa"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if cat.Icon != "sofa" {
		t.Errorf("已收录图标键应保留，实际 %s", cat.Icon)
	}

	// 重复 ID
	_, err = svc.Create(ctx, &dto.CreateCategoryReq{ID: "furniture", Name: "重复"})
	if !errors.Is(err, ErrCategoryExists) {
		t.Errorf("重复分类应返回 ErrCategoryExists，实际: %v", err)
	}

	// 未收录图标键落到默认值
	cat, err = svc.Create(ctx, &dto.CreateCategoryReq{ID: "misc", Name: "杂项", Icon: "rocket"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if cat.Icon != model.DefaultIcon {
		t.Errorf("未知图标键应落到 %s，实际 %s", model.DefaultIcon, cat.Icon)
	}
}

func TestCategoryDeleteInUse(t *testing.T) {
	repos := setupRepos(t)
	svc := NewCategoryService(repos.category)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateCategoryReq{ID: "furniture", Name: "家具"}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	p := &model.Product{Title: "沙发", Slug: "sha-fa", CategoryID: "furniture", IsActive: true}
	if err := repos.db.Create(p).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}

	err := svc.Delete(ctx, "furniture")
	if !errors.Is(err, ErrCategoryInUse) {
		t.Errorf("被引用的分类应返回 ErrCategoryInUse，实际: %v", err)
	}

	// 商品删除后可以删分类
	if err := repos.db.Delete(&model.Product{}, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("删除商品失败: %v", err)
	}
	if err := svc.Delete(ctx, "furniture"); err != nil {
		t.Fatalf("空分类删除失败: %v", err)
	}
}
