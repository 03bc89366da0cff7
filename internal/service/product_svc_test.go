package service

import (
	"context"
	"errors"
	"testing"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/model"
)

func newProductService(t *testing.T) (*ProductService, *testRepos) {
	t.Helper()
	repos := setupRepos(t)
	svc := NewProductService(repos.product, repos.category)
	if err := repos.db.Create(&model.Category{ID: "furniture", Name: "家具", Icon: "sofa"}).Error; err != nil {
		t.Fatalf("写入分类失败: %v", err)
	}
	return svc, repos
}

func TestProductCreateSlugFromTitle(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProductReq{Title: "Vintage Oak Table", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if p.Slug != "vintage-oak-table" {
		t.Errorf("slug 期望 vintage-oak-table，实际 %s", p.Slug)
	}
	if p.Condition != model.ConditionNew {
		t.Errorf("缺省成色应为 new，实际 %s", p.Condition)
	}
	if !p.IsActive {
		t.Error("缺省应为上架状态")
	}
}

func TestProductCreateSlugConflictSuffix(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateProductReq{Title: "旧沙发", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	second, err := svc.Create(ctx, &dto.CreateProductReq{Title: "旧沙发", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	third, err := svc.Create(ctx, &dto.CreateProductReq{Title: "旧沙发", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	if second.Slug != first.Slug+"-2" {
		t.Errorf("第二个同名商品 slug 期望 %s-2，实际 %s", first.Slug, second.Slug)
	}
	if third.Slug != first.Slug+"-3" {
		t.Errorf("第三个同名商品 slug 期望 %s-3，实际 %s", first.Slug, third.Slug)
	}
}

func TestProductCreateConditionNormalization(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	// 旧版数据的 used 落到 used_good
	p, err := svc.Create(ctx, &dto.CreateProductReq{Title: "二手书架", CategoryID: "furniture", Condition: "used"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if p.Condition != model.ConditionUsedGood {
		t.Errorf("used 应归一化为 used_good，实际 %s", p.Condition)
	}

	_, err = svc.Create(ctx, &dto.CreateProductReq{Title: "坏成色", CategoryID: "furniture", Condition: "broken"})
	if !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("非法成色应返回 ErrInvalidCondition，实际: %v", err)
	}
}

func TestProductCreateUnknownCategory(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.Create(context.Background(), &dto.CreateProductReq{Title: "无主商品", CategoryID: "nonexistent"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("未知分类应返回 ErrCategoryNotFound，实际: %v", err)
	}
}

func TestProductDiscountValidation(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	// 折扣价低于原价，允许
	if _, err := svc.Create(ctx, &dto.CreateProductReq{
		Title: "打折沙发", CategoryID: "furniture", Price: "1000", DiscountPrice: "800",
	}); err != nil {
		t.Fatalf("合法折扣价被拒: %v", err)
	}

	cases := []struct {
		name     string
		price    string
		discount string
	}{
		{"折扣价等于原价", "1000", "1000"},
		{"折扣价高于原价", "1000", "1200"},
		{"原价为空", "", "100"},
		{"折扣价非数字", "1000", "面议"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, &dto.CreateProductReq{
			Title: tc.name, CategoryID: "furniture", Price: tc.price, DiscountPrice: tc.discount,
		})
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Errorf("%s: 应返回 ErrInvalidDiscount，实际: %v", tc.name, err)
		}
	}
}

func TestProductImageNormalization(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	// 列表非空时以列表首图为准
	p, err := svc.Create(ctx, &dto.CreateProductReq{
		Title: "多图商品", CategoryID: "furniture",
		Image:  "/uploads/old.jpg",
		Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if p.Image != "/uploads/a.jpg" {
		t.Errorf("首图应取列表首项，实际 %s", p.Image)
	}

	// 列表为空时由首图补全
	p, err = svc.Create(ctx, &dto.CreateProductReq{
		Title: "单图商品", CategoryID: "furniture", Image: "/uploads/only.jpg",
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if len(p.Images) != 1 || p.Images[0] != "/uploads/only.jpg" {
		t.Errorf("图片列表应由首图补全，实际 %v", p.Images)
	}
}

func TestProductUpdateTitleRegeneratesSlug(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProductReq{Title: "Old Chair", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, &dto.UpdateProductReq{Title: strPtr("New Chair")})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Slug != "new-chair" {
		t.Errorf("标题变更后 slug 应重新派生，实际 %s", updated.Slug)
	}

	// 标题不变时 slug 保持稳定
	updated, err = svc.Update(ctx, p.ID, &dto.UpdateProductReq{Price: strPtr("500")})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Slug != "new-chair" {
		t.Errorf("标题未变更 slug 不应变化，实际 %s", updated.Slug)
	}
}

func TestProductUpdateDiscountAgainstExistingPrice(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProductReq{Title: "柜子", CategoryID: "furniture", Price: "500"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 只传折扣价时按已有原价校验
	_, err = svc.Update(ctx, p.ID, &dto.UpdateProductReq{DiscountPrice: strPtr("600")})
	if !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("折扣价高于已有原价应被拒，实际: %v", err)
	}
	if _, err = svc.Update(ctx, p.ID, &dto.UpdateProductReq{DiscountPrice: strPtr("400")}); err != nil {
		t.Fatalf("合法折扣价被拒: %v", err)
	}
}

func TestProductGetByIDOrSlug(t *testing.T) {
	svc, _ := newProductService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, &dto.CreateProductReq{Title: "Brass Lamp", CategoryID: "furniture"})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// UUID 走 ID 查询
	got, err := svc.GetByIDOrSlug(ctx, p.ID)
	if err != nil {
		t.Fatalf("按 ID 查询失败: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("按 ID 查询结果不符")
	}

	// 非 UUID 走 slug 查询
	got, err = svc.GetByIDOrSlug(ctx, "brass-lamp")
	if err != nil {
		t.Fatalf("按 slug 查询失败: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("按 slug 查询结果不符")
	}

	if _, err = svc.GetByIDOrSlug(ctx, "no-such-product"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("未命中应返回 ErrProductNotFound，实际: %v", err)
	}
}

func TestProductDeleteNotFound(t *testing.T) {
	svc, _ := newProductService(t)

	err := svc.Delete(context.Background(), "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("删除不存在的商品应返回 ErrProductNotFound，实际: %v", err)
	}
}
