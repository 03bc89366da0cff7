package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/service"
)

// NewsletterController 订阅接口
type NewsletterController struct {
	newsletterService *service.NewsletterService
}

// NewNewsletterController 创建订阅控制器
func NewNewsletterController(newsletterService *service.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletterService: newsletterService}
}

// GetSubscribers 订阅者列表（管理端）
// @Summary 获取全部订阅者
// @Tags Newsletter
// @Router /api/newsletter [get]
func (ctrl *NewsletterController) GetSubscribers(c *gin.Context) {
	subs, err := ctrl.newsletterService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, subs)
}

// Subscribe 公开订阅
// @Summary 订阅新品邮件
// @Tags Newsletter
// @Param body body dto.SubscribeReq true "邮箱"
// @Router /api/newsletter/subscribe [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req dto.SubscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	sub, err := ctrl.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, sub)
}

// UpdateSubscriber 启停订阅者
// @Summary 启用/停用订阅者
// @Tags Newsletter
// @Param id path string true "订阅者ID"
// @Param body body dto.UpdateSubscriberReq true "启停标记"
// @Router /api/newsletter/{id} [patch]
func (ctrl *NewsletterController) UpdateSubscriber(c *gin.Context) {
	var req dto.UpdateSubscriberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	sub, err := ctrl.newsletterService.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, sub)
}

// DeleteSubscriber 删除订阅者
// @Summary 删除订阅者
// @Tags Newsletter
// @Param id path string true "订阅者ID"
// @Router /api/newsletter/{id} [delete]
func (ctrl *NewsletterController) DeleteSubscriber(c *gin.Context) {
	if err := ctrl.newsletterService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
