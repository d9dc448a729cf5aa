package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

// AuditHandler 审核处理器，仅管理员可访问
type AuditHandler struct {
	queryService     service.HotelQueryService
	lifecycleService service.LifecycleService
	auditService     service.AuditService
}

// NewAuditHandler 创建审核处理器
func NewAuditHandler(querySvc service.HotelQueryService, lifecycleSvc service.LifecycleService, auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{
		queryService:     querySvc,
		lifecycleService: lifecycleSvc,
		auditService:     auditSvc,
	}
}

// ListPending 待审核酒店列表
// GET /audits/hotels/pending
func (h *AuditHandler) ListPending(c *gin.Context) {
	page := service.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	hotels, pagination, err := h.queryService.ListByStatus(c.Request.Context(), model.HotelStatusPending, page)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"hotels":     hotels,
		"pagination": pagination,
	})
}

// List 按状态筛选酒店列表，status 为空时返回全部状态（已删除记录除外）
// GET /audits/hotels
func (h *AuditHandler) List(c *gin.Context) {
	page := service.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	status := model.HotelStatus(c.Query("status"))

	hotels, pagination, err := h.queryService.ListByStatus(c.Request.Context(), status, page)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"hotels":     hotels,
		"pagination": pagination,
	})
}

// ListOffline 已下线酒店列表
// GET /audits/hotels/offline
func (h *AuditHandler) ListOffline(c *gin.Context) {
	page := service.ParsePagination(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	hotels, pagination, err := h.queryService.ListOffline(c.Request.Context(), page)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"hotels":     hotels,
		"pagination": pagination,
	})
}

// Approve 审核通过
// POST /audits/hotels/:hotelId/approve
func (h *AuditHandler) Approve(c *gin.Context) {
	hotel, err := h.lifecycleService.Approve(c.Request.Context(), c.Param("hotelId"), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "审核通过", hotel)
}

// ReasonRequest 审核原因请求
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// Reject 审核驳回，原因必填
// POST /audits/hotels/:hotelId/reject
func (h *AuditHandler) Reject(c *gin.Context) {
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	hotel, err := h.lifecycleService.Reject(c.Request.Context(), c.Param("hotelId"), currentUserID(c), req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已驳回", hotel)
}

// Offline 强制下线，原因为空时使用默认原因
// POST /audits/hotels/:hotelId/offline
func (h *AuditHandler) Offline(c *gin.Context) {
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, "参数错误: "+err.Error())
		return
	}

	hotel, err := h.lifecycleService.Offline(c.Request.Context(), c.Param("hotelId"), currentUserID(c), req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已下线", hotel)
}

// Restore 恢复上线
// POST /audits/hotels/:hotelId/restore
func (h *AuditHandler) Restore(c *gin.Context) {
	hotel, err := h.lifecycleService.Restore(c.Request.Context(), c.Param("hotelId"), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已恢复上线", hotel)
}

// Logs 酒店审核日志，按时间倒序
// GET /audits/hotels/:hotelId/logs
func (h *AuditHandler) Logs(c *gin.Context) {
	records, err := h.auditService.ListByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}
	response.Success(c, gin.H{"logs": records})
}
