// Package handler HTTP 处理器
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/zcyneiya/hotel-backend/internal/model"
	"github.com/zcyneiya/hotel-backend/internal/repository"
	"github.com/zcyneiya/hotel-backend/internal/service"
	"github.com/zcyneiya/hotel-backend/pkg/response"
)

// handleServiceError 将服务层错误映射为统一响应
func handleServiceError(c *gin.Context, err error) {
	var transitionErr *service.TransitionError
	switch {
	case errors.Is(err, repository.ErrHotelNotFound):
		response.Error(c, response.CodeHotelNotFound)
	case errors.Is(err, repository.ErrRoomNotFound):
		response.Error(c, response.CodeRoomNotFound)
	case errors.Is(err, repository.ErrPromotionNotFound):
		response.Error(c, response.CodePromotionNotFound)
	case errors.Is(err, service.ErrReasonRequired):
		response.Error(c, response.CodeMissingReason)
	case errors.Is(err, service.ErrHotelNotEditable):
		response.Error(c, response.CodeNotEditable)
	case errors.Is(err, service.ErrPriceInvalid):
		response.Error(c, response.CodeInvalidPrice)
	case errors.As(err, &transitionErr):
		// 恢复上线只对下线状态有意义，单独给出业务码
		code := response.CodeInvalidTransition
		if transitionErr.Action == model.ActionRestore {
			code = response.CodeNotOffline
		}
		response.ErrorWithMsg(c, code, transitionErr.Error())
	case errors.Is(err, model.ErrRoomPriceNegative):
		response.ErrorWithMsg(c, response.CodeInvalidPrice, err.Error())
	case errors.Is(err, service.ErrHotelNameRequired),
		errors.Is(err, service.ErrStarLevelInvalid),
		errors.Is(err, service.ErrPromotionTitle),
		errors.Is(err, model.ErrRoomTypeRequired),
		errors.Is(err, model.ErrRoomTotalInvalid),
		errors.Is(err, model.ErrRoomAvailableInvalid),
		errors.Is(err, model.ErrRoomCapacityInvalid):
		response.ErrorWithMsg(c, response.CodeInvalidRequest, err.Error())
	default:
		response.Error(c, response.CodeServerError)
	}
}

// currentUserID 获取当前登录用户 ID
func currentUserID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
