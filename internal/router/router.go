package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ershou_market_v1/internal/controller"
	"ershou_market_v1/internal/middleware"
	"ershou_market_v1/pkg/logger"
)

// ==================== 控制器集合 ====================

// Controllers 路由需要的全部控制器
type Controllers struct {
	Category   *controller.CategoryController
	Product    *controller.ProductController
	Offer      *controller.OfferController
	Newsletter *controller.NewsletterController
	Popup      *controller.PopupController
	Upload     *controller.UploadController
}

// Options 路由选项
type Options struct {
	UploadDir   string   // 静态图片目录
	CORSOrigins []string // 为空放行全部
}

// ==================== 路由注册 ====================

// SetupRouter 组装 gin 引擎并注册所有路由
func SetupRouter(ctls *Controllers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.L()))

	corsCfg := cors.DefaultConfig()
	if len(opts.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = opts.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 上传图片静态托管，长缓存（7 天）
	uploads := r.Group("/uploads", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=604800")
	})
	uploads.StaticFS("/", http.Dir(opts.UploadDir))

	// API 路由组，GET 响应统一 60 秒公共缓存
	api := r.Group("/api")
	api.Use(middleware.CacheControl(60))
	{
		// 分类
		categories := api.Group("/categories")
		{
			categories.GET("", ctls.Category.GetCategories)
			categories.GET("/:id", ctls.Category.GetCategory)
			categories.POST("", ctls.Category.CreateCategory)
			categories.PATCH("/:id", ctls.Category.UpdateCategory)
			categories.DELETE("/:id", ctls.Category.DeleteCategory)
		}

		// 商品
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.GetProducts)
			products.GET("/:idOrSlug", ctls.Product.GetProduct)
			products.POST("", ctls.Product.CreateProduct)
			products.PATCH("/:id", ctls.Product.UpdateProduct)
			products.DELETE("/:id", ctls.Product.DeleteProduct)
		}

		// 报价
		offers := api.Group("/offers")
		{
			offers.GET("", ctls.Offer.GetOffers)
			offers.POST("", ctls.Offer.CreateOffer)
			offers.PATCH("/:id/status", ctls.Offer.UpdateOfferStatus)
			offers.DELETE("/:id", ctls.Offer.DeleteOffer)
		}

		// 邮件订阅
		newsletter := api.Group("/newsletter")
		{
			newsletter.GET("", ctls.Newsletter.GetSubscribers)
			newsletter.POST("/subscribe", ctls.Newsletter.Subscribe)
			newsletter.PATCH("/:id", ctls.Newsletter.UpdateSubscriber)
			newsletter.DELETE("/:id", ctls.Newsletter.DeleteSubscriber)
		}

		// 图片上传与旋转
		api.POST("/upload", ctls.Upload.Upload)
		api.POST("/upload/from-url", ctls.Upload.UploadFromURL)
		api.POST("/rotate-image", ctls.Upload.RotateImage)

		// 营销弹窗
		api.GET("/campaign-popup/active", ctls.Popup.GetActivePopup)

		admin := api.Group("/admin")
		{
			admin.GET("/products", ctls.Product.GetAdminProducts)

			popups := admin.Group("/campaign-popups")
			{
				popups.GET("", ctls.Popup.GetPopups)
				popups.GET("/:id", ctls.Popup.GetPopup)
				popups.POST("", ctls.Popup.CreatePopup)
				popups.PATCH("/:id", ctls.Popup.UpdatePopup)
				popups.DELETE("/:id", ctls.Popup.DeletePopup)
			}
		}
	}

	return r
}
