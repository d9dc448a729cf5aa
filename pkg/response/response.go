package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 标准响应结构
// 字段顺序：success -> code -> msg -> data
type Response struct {
	Success bool        `json:"success"`        // 是否成功
	Code    int         `json:"code"`           // 业务状态码，0 表示成功
	Msg     string      `json:"msg"`            // 响应消息（中文）
	Data    interface{} `json:"data,omitempty"` // 响应数据
}

// 业务错误码
const (
	CodeSuccess = 0 // 操作成功

	// 参数错误 10xxx
	CodeInvalidRequest = 10001 // 请求参数无效
	CodeMissingReason  = 10002 // 缺少必填的原因说明
	CodeInvalidPrice   = 10003 // 价格无效

	// 认证错误 20xxx
	CodeInvalidCredentials = 20001 // 用户名或密码错误
	CodeInvalidToken       = 20002 // 令牌无效或已过期
	CodeAccountLocked      = 20003 // 账户已被锁定
	CodeForbidden          = 20004 // 无权访问该资源

	// 状态流转错误 30xxx
	CodeInvalidTransition = 30001 // 当前状态不允许该操作
	CodeNotEditable       = 30002 // 酒店当前状态不可编辑
	CodeNotOffline        = 30003 // 酒店未处于下线状态

	// 资源不存在 40xxx
	CodeHotelNotFound     = 40001 // 酒店不存在
	CodeUserNotFound      = 40002 // 用户不存在
	CodeRoomNotFound      = 40003 // 房型不存在
	CodePromotionNotFound = 40004 // 促销活动不存在

	// 冲突错误 50xxx
	CodeUserExists  = 50001 // 该用户名已被注册
	CodeEmailExists = 50002 // 该邮箱已被注册

	// 服务器错误 90xxx
	CodeServerError = 90001 // 服务器内部错误
	CodeUnavailable = 90002 // 服务暂时不可用
)

// 错误码对应的消息
var codeMessages = map[int]string{
	CodeSuccess:            "操作成功",
	CodeInvalidRequest:     "请求参数无效",
	CodeMissingReason:      "必须填写原因说明",
	CodeInvalidPrice:       "价格无效",
	CodeInvalidCredentials: "用户名或密码错误",
	CodeInvalidToken:       "令牌无效或已过期",
	CodeAccountLocked:      "账户已被锁定，请稍后重试",
	CodeForbidden:          "无权访问该资源",
	CodeInvalidTransition:  "当前状态不允许该操作",
	CodeNotEditable:        "酒店当前状态不可编辑",
	CodeNotOffline:         "酒店未处于下线状态",
	CodeHotelNotFound:      "酒店不存在",
	CodeUserNotFound:       "用户不存在",
	CodeRoomNotFound:       "房型不存在",
	CodePromotionNotFound:  "促销活动不存在",
	CodeUserExists:         "该用户名已被注册",
	CodeEmailExists:        "该邮箱已被注册",
	CodeServerError:        "服务器内部错误，请稍后重试",
	CodeUnavailable:        "服务暂时不可用",
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    CodeSuccess,
		Msg:     codeMessages[CodeSuccess],
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Code:    CodeSuccess,
		Msg:     "创建成功",
		Data:    data,
	})
}

// SuccessWithMsg 成功响应（自定义消息）
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    CodeSuccess,
		Msg:     msg,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int) {
	msg, ok := codeMessages[code]
	if !ok {
		msg = "未知错误"
	}
	c.JSON(codeToHTTPStatus(code), Response{
		Success: false,
		Code:    code,
		Msg:     msg,
	})
}

// ErrorWithMsg 错误响应（自定义消息）
func ErrorWithMsg(c *gin.Context, code int, msg string) {
	c.JSON(codeToHTTPStatus(code), Response{
		Success: false,
		Code:    code,
		Msg:     msg,
	})
}

// codeToHTTPStatus 业务错误码转 HTTP 状态码
func codeToHTTPStatus(code int) int {
	switch {
	case code == CodeSuccess:
		return http.StatusOK
	case code >= 10000 && code < 20000:
		return http.StatusBadRequest
	case code >= 20000 && code < 30000:
		if code == CodeInvalidToken || code == CodeInvalidCredentials || code == CodeAccountLocked {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case code >= 30000 && code < 40000:
		return http.StatusBadRequest
	case code >= 40000 && code < 50000:
		return http.StatusNotFound
	case code >= 50000 && code < 60000:
		return http.StatusConflict
	case code == CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
