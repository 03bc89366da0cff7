package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/service"
)

// CategoryController 分类接口
type CategoryController struct {
	categoryService *service.CategoryService
}

// NewCategoryController 创建分类控制器
func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetCategories 分类列表
// @Summary 获取全部分类
// @Tags Category
// @Success 200 {object} map[string]interface{}
// @Router /api/categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, categories)
}

// GetCategory 分类详情
// @Summary 按 ID 获取分类
// @Tags Category
// @Param id path string true "分类ID"
// @Router /api/categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	category, err := ctrl.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, category)
}

// CreateCategory 创建分类
// @Summary 创建分类
// @Tags Category
// @Param body body dto.CreateCategoryReq true "分类信息"
// @Router /api/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := ctrl.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, category)
}

// UpdateCategory 更新分类
// @Summary 更新分类
// @Tags Category
// @Param id path string true "分类ID"
// @Param body body dto.UpdateCategoryReq true "更新字段"
// @Router /api/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := ctrl.categoryService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, category)
}

// DeleteCategory 删除分类
// @Summary 删除分类（分类下有商品时拒绝）
// @Tags Category
// @Param id path string true "分类ID"
// @Router /api/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctrl.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
