package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/service"
)

// OfferController 报价接口
type OfferController struct {
	offerService *service.OfferService
}

// NewOfferController 创建报价控制器
func NewOfferController(offerService *service.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

// GetOffers 报价列表
// @Summary 获取报价列表，可按商品过滤
// @Tags Offer
// @Param productId query string false "商品ID"
// @Router /api/offers [get]
func (ctrl *OfferController) GetOffers(c *gin.Context) {
	offers, err := ctrl.offerService.List(c.Request.Context(), c.Query("productId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, offers)
}

// CreateOffer 买家提交报价
// @Summary 对商品提交报价
// @Tags Offer
// @Param body body dto.CreateOfferReq true "报价信息"
// @Router /api/offers [post]
func (ctrl *OfferController) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	offer, err := ctrl.offerService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, offer)
}

// UpdateOfferStatus 变更报价状态
// @Summary 接受/拒绝报价
// @Tags Offer
// @Param id path string true "报价ID"
// @Param body body dto.UpdateOfferStatusReq true "目标状态"
// @Router /api/offers/{id}/status [patch]
func (ctrl *OfferController) UpdateOfferStatus(c *gin.Context) {
	var req dto.UpdateOfferStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	offer, err := ctrl.offerService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, offer)
}

// DeleteOffer 删除报价
// @Summary 删除报价
// @Tags Offer
// @Param id path string true "报价ID"
// @Router /api/offers/{id} [delete]
func (ctrl *OfferController) DeleteOffer(c *gin.Context) {
	if err := ctrl.offerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
