package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
)

// ==================== 测试辅助 ====================

type testRepos struct {
	db         *gorm.DB
	category   repository.CategoryRepository
	product    repository.ProductRepository
	offer      repository.OfferRepository
	newsletter repository.NewsletterRepository
	popup      repository.PopupRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	err = db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Offer{},
		&model.NewsletterSubscriber{},
		&model.CampaignPopup{},
	)
	if err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}

	return &testRepos{
		db:         db,
		category:   repository.NewCategoryRepository(db),
		product:    repository.NewProductRepository(db),
		offer:      repository.NewOfferRepository(db),
		newsletter: repository.NewNewsletterRepository(db),
		popup:      repository.NewPopupRepository(db),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
