package controller

import (
	"github.com/gin-gonic/gin"

	"ershou_market_v1/internal/api/dto"
	"ershou_market_v1/internal/service"
)

// PopupController 营销弹窗接口
type PopupController struct {
	popupService *service.PopupService
}

// NewPopupController 创建弹窗控制器
func NewPopupController(popupService *service.PopupService) *PopupController {
	return &PopupController{popupService: popupService}
}

// ==================== 管理接口 ====================

// GetPopups 弹窗列表
// @Summary 获取全部弹窗
// @Tags CampaignPopup
// @Router /api/admin/campaign-popups [get]
func (ctrl *PopupController) GetPopups(c *gin.Context) {
	popups, err := ctrl.popupService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, popups)
}

// GetPopup 弹窗详情
// @Summary 按 ID 获取弹窗
// @Tags CampaignPopup
// @Param id path string true "弹窗ID"
// @Router /api/admin/campaign-popups/{id} [get]
func (ctrl *PopupController) GetPopup(c *gin.Context) {
	popup, err := ctrl.popupService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, popup)
}

// CreatePopup 创建弹窗
// @Summary 创建弹窗
// @Tags CampaignPopup
// @Param body body dto.CreatePopupReq true "弹窗信息"
// @Router /api/admin/campaign-popups [post]
func (ctrl *PopupController) CreatePopup(c *gin.Context) {
	var req dto.CreatePopupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	popup, err := ctrl.popupService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, popup)
}

// UpdatePopup 更新弹窗
// @Summary 更新弹窗
// @Tags CampaignPopup
// @Param id path string true "弹窗ID"
// @Param body body dto.UpdatePopupReq true "更新字段"
// @Router /api/admin/campaign-popups/{id} [patch]
func (ctrl *PopupController) UpdatePopup(c *gin.Context) {
	var req dto.UpdatePopupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	popup, err := ctrl.popupService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, popup)
}

// DeletePopup 删除弹窗
// @Summary 删除弹窗
// @Tags CampaignPopup
// @Param id path string true "弹窗ID"
// @Router /api/admin/campaign-popups/{id} [delete]
func (ctrl *PopupController) DeletePopup(c *gin.Context) {
	if err := ctrl.popupService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

// ==================== 公开接口 ====================

// GetActivePopup 当前应展示的弹窗
// 展示频率的"已读"判断在浏览器端完成，服务端只做弹窗选择
// @Summary 获取当前生效的弹窗
// @Tags CampaignPopup
// @Router /api/campaign-popup/active [get]
func (ctrl *PopupController) GetActivePopup(c *gin.Context) {
	popup, err := ctrl.popupService.GetActive(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, popup)
}
