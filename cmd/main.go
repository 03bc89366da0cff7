package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ershou_market_v1/internal/controller"
	"ershou_market_v1/internal/model"
	"ershou_market_v1/internal/repository"
	"ershou_market_v1/internal/router"
	"ershou_market_v1/internal/service"
	"ershou_market_v1/internal/task"
	"ershou_market_v1/pkg/config"
	"ershou_market_v1/pkg/database"
	"ershou_market_v1/pkg/logger"
	"ershou_market_v1/pkg/mailer"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("加载配置失败", zap.Error(err))
	}

	// 2. 初始化数据库
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(cfg, db)

	// 4. 启动定时任务
	initTasks(cfg, deps)

	// 5. 初始化路由
	r := router.SetupRouter(deps.Controllers, router.Options{
		UploadDir:   deps.Services.Upload.UploadDir(),
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// 6. 启动服务
	startServer(cfg, r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Category   repository.CategoryRepository
	Product    repository.ProductRepository
	Offer      repository.OfferRepository
	Newsletter repository.NewsletterRepository
	Popup      repository.PopupRepository
}

// Services 服务集合
type Services struct {
	Category   *service.CategoryService
	Product    *service.ProductService
	Offer      *service.OfferService
	Newsletter *service.NewsletterService
	Popup      *service.PopupService
	Upload     *service.UploadService
}

// ==================== 初始化 ====================

// initDatabase 初始化数据库并迁移表结构
func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(cfg.Database.DSN,
		&model.Category{},
		&model.Product{},
		&model.Offer{},
		&model.NewsletterSubscriber{},
		&model.CampaignPopup{},
	)
}

// initDependencies 组装仓库、服务、控制器
func initDependencies(cfg *config.Config, db *gorm.DB) *Dependencies {
	repos := &Repositories{
		Category:   repository.NewCategoryRepository(db),
		Product:    repository.NewProductRepository(db),
		Offer:      repository.NewOfferRepository(db),
		Newsletter: repository.NewNewsletterRepository(db),
		Popup:      repository.NewPopupRepository(db),
	}

	uploadSvc, err := service.NewUploadService(cfg.Upload.Dir, cfg.Upload.PublicPath, logger.L())
	if err != nil {
		logger.L().Fatal("初始化上传服务失败", zap.Error(err))
	}

	services := &Services{
		Category:   service.NewCategoryService(repos.Category),
		Product:    service.NewProductService(repos.Product, repos.Category),
		Offer:      service.NewOfferService(repos.Offer, repos.Product),
		Newsletter: service.NewNewsletterService(repos.Newsletter),
		Popup:      service.NewPopupService(repos.Popup, repos.Product),
		Upload:     uploadSvc,
	}

	controllers := &router.Controllers{
		Category:   controller.NewCategoryController(services.Category),
		Product:    controller.NewProductController(services.Product),
		Offer:      controller.NewOfferController(services.Offer),
		Newsletter: controller.NewNewsletterController(services.Newsletter),
		Popup:      controller.NewPopupController(services.Popup),
		Upload:     controller.NewUploadController(services.Upload),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 启动新品邮件任务
func initTasks(cfg *config.Config, deps *Dependencies) {
	if !cfg.Newsletter.Enabled {
		logger.L().Info("邮件任务未启用")
		return
	}

	sender := mailer.NewSMTPSender(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	newsletterTask := task.NewNewsletterTask(
		deps.Repos.Product,
		deps.Repos.Newsletter,
		sender,
		cfg.Newsletter.CronSpec,
		cfg.Server.BaseURL,
		logger.L(),
	)
	if err := newsletterTask.Start(); err != nil {
		logger.L().Fatal("启动邮件任务失败", zap.Error(err))
	}
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并等待退出信号
func startServer(cfg *config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		logger.L().Info("服务启动", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Fatal("服务强制关闭", zap.Error(err))
	}

	logger.L().Info("服务已退出")
}
