package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/repository"
	"ershou_market_v1/internal/service"
)

// ProductController 商品接口
type ProductController struct {
	productService *service.ProductService
}

// NewProductController 创建商品控制器
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 查询接口 ====================

// GetProducts 公开商品列表（只含在售）
// @Summary 获取商品列表
// @Tags Product
// @Param category query string false "分类筛选"
// @Param featured query bool false "只看精选"
// @Success 200 {object} map[string]interface{}
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		CategoryID: c.Query("category"),
		ActiveOnly: true,
	}
	// featured= 空值视为不过滤
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}

	products, err := ctrl.productService.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, products)
}

// GetAdminProducts 管理端商品列表（含已下架）
// @Summary 获取全部商品
// @Tags Product
// @Router /api/admin/products [get]
func (ctrl *ProductController) GetAdminProducts(c *gin.Context) {
	products, err := ctrl.productService.List(c.Request.Context(), repository.ProductFilter{})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, products)
}

// GetProduct 商品详情
// @Summary 按 ID 或 slug 获取商品
// @Tags Product
// @Param idOrSlug path string true "商品ID或slug"
// @Router /api/products/{idOrSlug} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	product, err := ctrl.productService.GetByIDOrSlug(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, product)
}

// ==================== 写入接口 ====================

// CreateProduct 创建商品
// @Summary 创建商品
// @Tags Product
// @Param body body dto.CreateProductReq true "商品信息"
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, product)
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Tags Product
// @Param id path string true "商品ID"
// @Param body body dto.UpdateProductReq true "更新字段"
// @Router /api/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, product)
}

// DeleteProduct 删除商品（级联删除报价）
// @Summary 删除商品
// @Tags Product
// @Param id path string true "商品ID"
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
